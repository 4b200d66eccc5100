// server/internal/api/handlers/commodity_handler.go
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

type CommodityHandler struct {
	DB *mongo.Database
}

type CommodityRequest struct {
	Category    string `json:"category"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PackingType string `json:"packing_type"`
}

func (h *CommodityHandler) CreateCommodity(c *gin.Context) {
	var req CommodityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := req.Category
	if category == "" {
		category = "General Cargo"
	}
	packing := req.PackingType
	if packing == "" {
		packing = "Palletized"
	}

	newCommodity := models.Commodity{
		Category:    category,
		Name:        req.Name,
		Description: req.Description,
		PackingType: packing,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	result, err := h.DB.Collection("master_commodities").InsertOne(context.Background(), newCommodity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create commodity"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newCommodity.ID = oid
	}

	c.JSON(http.StatusCreated, newCommodity)
}

func (h *CommodityHandler) GetAllCommodities(c *gin.Context) {
	ctx := context.Background()

	cursor, err := h.DB.Collection("master_commodities").Find(ctx, searchFilter("name", c.Query("search")), listNewestFirst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query commodities"})
		return
	}
	defer cursor.Close(ctx)

	var commodities []models.Commodity
	if err := cursor.All(ctx, &commodities); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode commodities"})
		return
	}

	if commodities == nil {
		commodities = []models.Commodity{}
	}

	c.JSON(http.StatusOK, commodities)
}

func (h *CommodityHandler) UpdateCommodity(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid commodity id"})
		return
	}

	var req CommodityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{
		"category":     req.Category,
		"name":         req.Name,
		"description":  req.Description,
		"packing_type": req.PackingType,
		"updated_at":   time.Now(),
	}}

	result, err := h.DB.Collection("master_commodities").UpdateOne(context.Background(), bson.M{"_id": id, "is_deleted": false}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update commodity"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commodity not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Commodity updated successfully"})
}

func (h *CommodityHandler) DeleteCommodity(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid commodity id"})
		return
	}

	_, err = h.DB.Collection("master_commodities").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete commodity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Commodity deleted successfully"})
}
