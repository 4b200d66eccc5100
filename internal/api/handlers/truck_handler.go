// server/internal/api/handlers/truck_handler.go
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

type TruckHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

type TruckRequest struct {
	TruckType         string `json:"truck_type"`
	Make              string `json:"make"`
	Model             string `json:"model"`
	RegNo             string `json:"reg_no" binding:"required"`
	RegisteredCountry string `json:"registered_country"`
	RegIssueDate      string `json:"reg_issue_date"`
	RegExpiryDate     string `json:"reg_expiry_date"`
	InsurancePolicyNo string `json:"insurance_policy_no"`
	InsIssueDate      string `json:"insurance_issue_date"`
	InsExpiryDate     string `json:"insurance_expiry_date"`
	NoAxles           string `json:"no_axles"`
	PayloadCapacity   string `json:"payload_capacity"`
	OwnerName         string `json:"owner_name"`
	OwnerMobile       string `json:"owner_mobile"`
}

// TruckWithCompliance is the list-screen row: the stored truck plus the
// compliance result recomputed for this fetch.
type TruckWithCompliance struct {
	models.Truck
	Issues     []string         `json:"issues"`
	Warnings   []string         `json:"warnings"`
	Compliance compliance.State `json:"compliance"`
}

func (h *TruckHandler) CreateTruck(c *gin.Context) {
	var req TruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newTruck := models.Truck{
		TruckType:         req.TruckType,
		Make:              req.Make,
		Model:             req.Model,
		RegNo:             req.RegNo,
		RegisteredCountry: req.RegisteredCountry,
		RegIssueDate:      parseDate(req.RegIssueDate),
		RegExpiryDate:     parseDate(req.RegExpiryDate),
		InsurancePolicyNo: req.InsurancePolicyNo,
		InsIssueDate:      parseDate(req.InsIssueDate),
		InsExpiryDate:     parseDate(req.InsExpiryDate),
		NoAxles:           req.NoAxles,
		PayloadCapacity:   req.PayloadCapacity,
		OwnerName:         req.OwnerName,
		OwnerMobile:       req.OwnerMobile,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	result, err := h.DB.Collection("fleet_trucks").InsertOne(context.Background(), newTruck)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create truck"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newTruck.ID = oid
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "created", Entity: "trucks"})
	c.JSON(http.StatusCreated, newTruck)
}

// GetAllTrucks returns the active trucks newest first, each with its
// compliance result evaluated against the documents on file.
func (h *TruckHandler) GetAllTrucks(c *gin.Context) {
	ctx := context.Background()

	cursor, err := h.DB.Collection("fleet_trucks").Find(ctx, searchFilter("reg_no", c.Query("search")), listNewestFirst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query trucks"})
		return
	}
	defer cursor.Close(ctx)

	var trucks []models.Truck
	if err := cursor.All(ctx, &trucks); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode trucks"})
		return
	}

	ids := make([]string, 0, len(trucks))
	for _, t := range trucks {
		ids = append(ids, t.ID.Hex())
	}

	index, err := fetchComplianceIndex(ctx, h.DB, compliance.RelatedTruck, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query fleet documents"})
		return
	}

	now := time.Now()
	rows := make([]TruckWithCompliance, 0, len(trucks))
	for _, truck := range trucks {
		result := compliance.Evaluate(compliance.Subject{
			ID:    truck.ID.Hex(),
			Type:  compliance.RelatedTruck,
			RegNo: truck.RegNo,
			Dates: map[compliance.DateField]*time.Time{
				compliance.DateRegistrationExpiry: truck.RegExpiryDate,
				compliance.DateInsuranceExpiry:    truck.InsExpiryDate,
			},
		}, index, now)
		metrics.ObserveEvaluation(string(compliance.RelatedTruck), string(result.State()))

		rows = append(rows, TruckWithCompliance{
			Truck:      truck,
			Issues:     result.Issues,
			Warnings:   result.Warnings,
			Compliance: result.State(),
		})
	}

	c.JSON(http.StatusOK, rows)
}

func (h *TruckHandler) UpdateTruck(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck id"})
		return
	}

	var req TruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{
		"truck_type":            req.TruckType,
		"make":                  req.Make,
		"model":                 req.Model,
		"reg_no":                req.RegNo,
		"registered_country":    req.RegisteredCountry,
		"reg_issue_date":        parseDate(req.RegIssueDate),
		"reg_expiry_date":       parseDate(req.RegExpiryDate),
		"insurance_policy_no":   req.InsurancePolicyNo,
		"insurance_issue_date":  parseDate(req.InsIssueDate),
		"insurance_expiry_date": parseDate(req.InsExpiryDate),
		"no_axles":              req.NoAxles,
		"payload_capacity":      req.PayloadCapacity,
		"owner_name":            req.OwnerName,
		"owner_mobile":          req.OwnerMobile,
		"updated_at":            time.Now(),
	}}

	result, err := h.DB.Collection("fleet_trucks").UpdateOne(context.Background(), bson.M{"_id": id, "is_deleted": false}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update truck"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "updated", Entity: "trucks"})
	c.JSON(http.StatusOK, gin.H{"message": "Truck updated successfully"})
}

// DeleteTruck flags the truck as deleted; the row stays for audit.
func (h *TruckHandler) DeleteTruck(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck id"})
		return
	}

	_, err = h.DB.Collection("fleet_trucks").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete truck"})
		return
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "deleted", Entity: "trucks"})
	c.JSON(http.StatusOK, gin.H{"message": "Truck deleted successfully"})
}
