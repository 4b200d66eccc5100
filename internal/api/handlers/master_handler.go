// server/internal/api/handlers/master_handler.go
package handlers

import (
	"context"
	"net/http"

	"alphaline-portal-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MasterHandler serves the lookup lists behind the console dropdowns:
// countries, cities, designations and standard proposal terms. All of them
// support add-on-the-fly creation from the forms.
type MasterHandler struct {
	DB *mongo.Database
}

type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

type CityRequest struct {
	Name        string `json:"name" binding:"required"`
	CountryName string `json:"country_name" binding:"required"`
}

var listByName = options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

func (h *MasterHandler) GetCountries(c *gin.Context) {
	ctx := context.Background()

	cursor, err := h.DB.Collection("master_countries").Find(ctx, bson.M{}, listByName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query countries"})
		return
	}
	defer cursor.Close(ctx)

	var countries []models.Country
	if err := cursor.All(ctx, &countries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode countries"})
		return
	}
	if countries == nil {
		countries = []models.Country{}
	}

	c.JSON(http.StatusOK, countries)
}

func (h *MasterHandler) CreateCountry(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("master_countries")

	count, err := collection.CountDocuments(context.Background(), bson.M{"name": req.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for country"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Country already exists"})
		return
	}

	country := models.Country{Name: req.Name}
	result, err := collection.InsertOne(context.Background(), country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create country"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		country.ID = oid
	}

	c.JSON(http.StatusCreated, country)
}

// GetCities lists cities, optionally for one country.
func (h *MasterHandler) GetCities(c *gin.Context) {
	ctx := context.Background()

	filter := bson.M{}
	if country := c.Query("country"); country != "" {
		filter["country_name"] = country
	}

	cursor, err := h.DB.Collection("master_cities").Find(ctx, filter, listByName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query cities"})
		return
	}
	defer cursor.Close(ctx)

	var cities []models.City
	if err := cursor.All(ctx, &cities); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode cities"})
		return
	}
	if cities == nil {
		cities = []models.City{}
	}

	c.JSON(http.StatusOK, cities)
}

func (h *MasterHandler) CreateCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	city := models.City{Name: req.Name, CountryName: req.CountryName}
	result, err := h.DB.Collection("master_cities").InsertOne(context.Background(), city)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create city"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		city.ID = oid
	}

	c.JSON(http.StatusCreated, city)
}

func (h *MasterHandler) GetDesignations(c *gin.Context) {
	ctx := context.Background()

	cursor, err := h.DB.Collection("master_designations").Find(ctx, bson.M{}, listByName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query designations"})
		return
	}
	defer cursor.Close(ctx)

	var designations []models.Designation
	if err := cursor.All(ctx, &designations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode designations"})
		return
	}
	if designations == nil {
		designations = []models.Designation{}
	}

	c.JSON(http.StatusOK, designations)
}

func (h *MasterHandler) CreateDesignation(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	designation := models.Designation{Name: req.Name}
	result, err := h.DB.Collection("master_designations").InsertOne(context.Background(), designation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create designation"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		designation.ID = oid
	}

	c.JSON(http.StatusCreated, designation)
}

// GetDefaultTerms returns the standard terms the proposal builder imports.
func (h *MasterHandler) GetDefaultTerms(c *gin.Context) {
	ctx := context.Background()

	cursor, err := h.DB.Collection("master_special_terms").Find(ctx,
		bson.M{"is_default": true},
		options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query terms"})
		return
	}
	defer cursor.Close(ctx)

	var terms []models.SpecialTerm
	if err := cursor.All(ctx, &terms); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode terms"})
		return
	}
	if terms == nil {
		terms = []models.SpecialTerm{}
	}

	c.JSON(http.StatusOK, terms)
}
