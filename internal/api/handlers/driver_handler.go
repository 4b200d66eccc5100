// server/internal/api/handlers/driver_handler.go
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

type DriverHandler struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

type DriverRequest struct {
	FullName          string `json:"full_name" binding:"required"`
	FatherName        string `json:"father_name"`
	Nationality       string `json:"nationality"`
	PassportNo        string `json:"passport_no"`
	PassportExpiry    string `json:"passport_expiry"`
	LicenseNo         string `json:"license_no"`
	LicenseExpiry     string `json:"license_expiry"`
	VisaIssueDate     string `json:"visa_issue_date"`
	VisaExpiryDate    string `json:"visa_expiry_date"`
	MobileOrigin      string `json:"mobile_origin"`
	MobileTransit     string `json:"mobile_transit"`
	MobileDestination string `json:"mobile_destination"`
	WhatsappNumber    string `json:"whatsapp_number"`
	Status            string `json:"status"`
}

type DriverWithCompliance struct {
	models.Driver
	Issues     []string         `json:"issues"`
	Warnings   []string         `json:"warnings"`
	Compliance compliance.State `json:"compliance"`
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "Active"
	}

	newDriver := models.Driver{
		FullName:          req.FullName,
		FatherName:        req.FatherName,
		Nationality:       req.Nationality,
		PassportNo:        req.PassportNo,
		PassportExpiry:    parseDate(req.PassportExpiry),
		LicenseNo:         req.LicenseNo,
		LicenseExpiry:     parseDate(req.LicenseExpiry),
		VisaIssueDate:     parseDate(req.VisaIssueDate),
		VisaExpiryDate:    parseDate(req.VisaExpiryDate),
		MobileOrigin:      req.MobileOrigin,
		MobileTransit:     req.MobileTransit,
		MobileDestination: req.MobileDestination,
		WhatsappNumber:    req.WhatsappNumber,
		Status:            status,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	result, err := h.DB.Collection("fleet_drivers").InsertOne(context.Background(), newDriver)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newDriver.ID = oid
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "created", Entity: "drivers"})
	c.JSON(http.StatusCreated, newDriver)
}

// GetAllDrivers returns active drivers newest first with compliance
// attached. Unset driver dates are skipped by policy, only a present date
// can raise an expiry issue or warning.
func (h *DriverHandler) GetAllDrivers(c *gin.Context) {
	ctx := context.Background()

	cursor, err := h.DB.Collection("fleet_drivers").Find(ctx, searchFilter("full_name", c.Query("search")), listNewestFirst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query drivers"})
		return
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode drivers"})
		return
	}

	ids := make([]string, 0, len(drivers))
	for _, d := range drivers {
		ids = append(ids, d.ID.Hex())
	}

	index, err := fetchComplianceIndex(ctx, h.DB, compliance.RelatedDriver, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query fleet documents"})
		return
	}

	now := time.Now()
	rows := make([]DriverWithCompliance, 0, len(drivers))
	for _, driver := range drivers {
		result := compliance.Evaluate(compliance.Subject{
			ID:   driver.ID.Hex(),
			Type: compliance.RelatedDriver,
			Dates: map[compliance.DateField]*time.Time{
				compliance.DateVisaExpiry:     driver.VisaExpiryDate,
				compliance.DateLicenseExpiry:  driver.LicenseExpiry,
				compliance.DatePassportExpiry: driver.PassportExpiry,
			},
		}, index, now)
		metrics.ObserveEvaluation(string(compliance.RelatedDriver), string(result.State()))

		rows = append(rows, DriverWithCompliance{
			Driver:     driver,
			Issues:     result.Issues,
			Warnings:   result.Warnings,
			Compliance: result.State(),
		})
	}

	c.JSON(http.StatusOK, rows)
}

func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver id"})
		return
	}

	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{
		"full_name":          req.FullName,
		"father_name":        req.FatherName,
		"nationality":        req.Nationality,
		"passport_no":        req.PassportNo,
		"passport_expiry":    parseDate(req.PassportExpiry),
		"license_no":         req.LicenseNo,
		"license_expiry":     parseDate(req.LicenseExpiry),
		"visa_issue_date":    parseDate(req.VisaIssueDate),
		"visa_expiry_date":   parseDate(req.VisaExpiryDate),
		"mobile_origin":      req.MobileOrigin,
		"mobile_transit":     req.MobileTransit,
		"mobile_destination": req.MobileDestination,
		"whatsapp_number":    req.WhatsappNumber,
		"status":             req.Status,
		"updated_at":         time.Now(),
	}}

	result, err := h.DB.Collection("fleet_drivers").UpdateOne(context.Background(), bson.M{"_id": id, "is_deleted": false}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "updated", Entity: "drivers"})
	c.JSON(http.StatusOK, gin.H{"message": "Driver updated successfully"})
}

func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver id"})
		return
	}

	_, err = h.DB.Collection("fleet_drivers").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver"})
		return
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "deleted", Entity: "drivers"})
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully"})
}
