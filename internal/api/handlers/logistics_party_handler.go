// server/internal/api/handlers/logistics_party_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"alphaline-portal-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LogisticsPartyHandler struct {
	DB *mongo.Database
}

type LogisticsPartyRequest struct {
	Name        string `json:"name" binding:"required"`
	PartyType   string `json:"party_type"`
	MainAddress string `json:"main_address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
}

type PartyLocationRequest struct {
	LocationName string `json:"location_name" binding:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

type PartyContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
}

func (h *LogisticsPartyHandler) CreateParty(c *gin.Context) {
	var req LogisticsPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partyType := req.PartyType
	if partyType == "" {
		partyType = "Shipper"
	}

	newParty := models.LogisticsParty{
		Name:        req.Name,
		PartyType:   partyType,
		MainAddress: req.MainAddress,
		City:        req.City,
		Country:     req.Country,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Locations:   []models.PartyLocation{},
		Contacts:    []models.PartyContact{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	result, err := h.DB.Collection("logistics_parties").InsertOne(context.Background(), newParty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create logistics party"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newParty.ID = oid
	}

	c.JSON(http.StatusCreated, newParty)
}

// GetAllParties supports the type filter tabs and name search used by the
// console list screen.
func (h *LogisticsPartyHandler) GetAllParties(c *gin.Context) {
	ctx := context.Background()

	filter := searchFilter("name", c.Query("search"))
	if partyType := c.Query("type"); partyType != "" && partyType != "All" {
		filter["party_type"] = partyType
	}

	cursor, err := h.DB.Collection("logistics_parties").Find(ctx, filter, listNewestFirst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query logistics parties"})
		return
	}
	defer cursor.Close(ctx)

	var parties []models.LogisticsParty
	if err := cursor.All(ctx, &parties); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode logistics parties"})
		return
	}

	if parties == nil {
		parties = []models.LogisticsParty{}
	}

	c.JSON(http.StatusOK, parties)
}

func (h *LogisticsPartyHandler) GetPartyByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party id"})
		return
	}

	var party models.LogisticsParty
	err = h.DB.Collection("logistics_parties").FindOne(context.Background(), bson.M{"_id": id, "is_deleted": false}).Decode(&party)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Logistics party not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve logistics party"})
		}
		return
	}

	c.JSON(http.StatusOK, party)
}

func (h *LogisticsPartyHandler) UpdateParty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party id"})
		return
	}

	var req LogisticsPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{
		"name":         req.Name,
		"party_type":   req.PartyType,
		"main_address": req.MainAddress,
		"city":         req.City,
		"country":      req.Country,
		"phone":        req.Phone,
		"email":        req.Email,
		"website":      req.Website,
		"updated_at":   time.Now(),
	}}

	result, err := h.DB.Collection("logistics_parties").UpdateOne(context.Background(), bson.M{"_id": id, "is_deleted": false}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update logistics party"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Logistics party not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logistics party updated successfully"})
}

func (h *LogisticsPartyHandler) DeleteParty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party id"})
		return
	}

	_, err = h.DB.Collection("logistics_parties").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete logistics party"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logistics party deleted successfully"})
}

func (h *LogisticsPartyHandler) AddLocation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party id"})
		return
	}

	var req PartyLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := models.PartyLocation{
		ID:           primitive.NewObjectID(),
		LocationName: req.LocationName,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
	}

	result, err := h.DB.Collection("logistics_parties").UpdateOne(context.Background(),
		bson.M{"_id": id, "is_deleted": false},
		bson.M{
			"$push": bson.M{"locations": location},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add location"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Logistics party not found"})
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (h *LogisticsPartyHandler) AddContact(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party id"})
		return
	}

	var req PartyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := models.PartyContact{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Designation: req.Designation,
		Mobile:      req.Mobile,
		Email:       req.Email,
	}

	result, err := h.DB.Collection("logistics_parties").UpdateOne(context.Background(),
		bson.M{"_id": id, "is_deleted": false},
		bson.M{
			"$push": bson.M{"contacts": contact},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add contact"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Logistics party not found"})
		return
	}

	c.JSON(http.StatusCreated, contact)
}
