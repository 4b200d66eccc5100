// server/internal/api/handlers/equipment_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"alphaline-portal-api-server/internal/compliance"
	"alphaline-portal-api-server/internal/metrics"
	"alphaline-portal-api-server/internal/models"
	"alphaline-portal-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EquipmentHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

type EquipmentRequest struct {
	EquipmentType   string `json:"equipment_type"`
	Category        string `json:"category" binding:"required"`
	RegNo           string `json:"reg_no"`
	RegExpiryDate   string `json:"reg_expiry_date"`
	InsExpiryDate   string `json:"insurance_expiry_date"`
	NoAxles         string `json:"no_axles"`
	PayloadCapacity string `json:"payload_capacity"`
	Length          string `json:"length"`
	Width           string `json:"width"`
	Status          string `json:"status"`
}

type EquipmentWithCompliance struct {
	models.Equipment
	Issues     []string         `json:"issues"`
	Warnings   []string         `json:"warnings"`
	Compliance compliance.State `json:"compliance"`
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "Active"
	}

	newEquipment := models.Equipment{
		EquipmentType:   req.EquipmentType,
		Category:        req.Category,
		RegNo:           req.RegNo,
		RegExpiryDate:   parseDate(req.RegExpiryDate),
		InsExpiryDate:   parseDate(req.InsExpiryDate),
		NoAxles:         req.NoAxles,
		PayloadCapacity: req.PayloadCapacity,
		Length:          req.Length,
		Width:           req.Width,
		Status:          status,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	result, err := h.DB.Collection("fleet_equipment").InsertOne(context.Background(), newEquipment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create equipment"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newEquipment.ID = oid
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "created", Entity: "equipment"})
	c.JSON(http.StatusCreated, newEquipment)
}

// GetAllEquipment returns active equipment newest first with compliance
// attached. Items without a registration number skip the registration
// checks entirely; an equipment photo is always required.
func (h *EquipmentHandler) GetAllEquipment(c *gin.Context) {
	ctx := context.Background()

	cursor, err := h.DB.Collection("fleet_equipment").Find(ctx, searchFilter("reg_no", c.Query("search")), listNewestFirst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query equipment"})
		return
	}
	defer cursor.Close(ctx)

	var items []models.Equipment
	if err := cursor.All(ctx, &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode equipment"})
		return
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID.Hex())
	}

	index, err := fetchComplianceIndex(ctx, h.DB, compliance.RelatedEquipment, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query fleet documents"})
		return
	}

	now := time.Now()
	rows := make([]EquipmentWithCompliance, 0, len(items))
	for _, item := range items {
		result := compliance.Evaluate(compliance.Subject{
			ID:    item.ID.Hex(),
			Type:  compliance.RelatedEquipment,
			RegNo: item.RegNo,
			Dates: map[compliance.DateField]*time.Time{
				compliance.DateRegistrationExpiry: item.RegExpiryDate,
				compliance.DateInsuranceExpiry:    item.InsExpiryDate,
			},
		}, index, now)
		metrics.ObserveEvaluation(string(compliance.RelatedEquipment), string(result.State()))

		rows = append(rows, EquipmentWithCompliance{
			Equipment:  item,
			Issues:     result.Issues,
			Warnings:   result.Warnings,
			Compliance: result.State(),
		})
	}

	c.JSON(http.StatusOK, rows)
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment id"})
		return
	}

	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{
		"equipment_type":        req.EquipmentType,
		"category":              req.Category,
		"reg_no":                req.RegNo,
		"reg_expiry_date":       parseDate(req.RegExpiryDate),
		"insurance_expiry_date": parseDate(req.InsExpiryDate),
		"no_axles":              req.NoAxles,
		"payload_capacity":      req.PayloadCapacity,
		"length":                req.Length,
		"width":                 req.Width,
		"status":                req.Status,
		"updated_at":            time.Now(),
	}}

	result, err := h.DB.Collection("fleet_equipment").UpdateOne(context.Background(), bson.M{"_id": id, "is_deleted": false}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipment"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "updated", Entity: "equipment"})
	c.JSON(http.StatusOK, gin.H{"message": "Equipment updated successfully"})
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment id"})
		return
	}

	_, err = h.DB.Collection("fleet_equipment").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete equipment"})
		return
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "deleted", Entity: "equipment"})
	c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted successfully"})
}
