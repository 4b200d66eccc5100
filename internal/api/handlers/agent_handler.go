// server/internal/api/handlers/agent_handler.go
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

type AgentHandler struct {
	DB *mongo.Database
}

type AgentRequest struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type"`
	POBox         string `json:"po_box"`
	Street        string `json:"street"`
	City          string `json:"city"`
	Country       string `json:"country"`
	ContactPerson string `json:"contact_person"`
	Designation   string `json:"designation"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	Status        string `json:"status"`
}

func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agentType := req.Type
	if agentType == "" {
		agentType = "Transporter"
	}
	status := req.Status
	if status == "" {
		status = "Active"
	}

	newAgent := models.Agent{
		Name:          req.Name,
		Type:          agentType,
		POBox:         req.POBox,
		Street:        req.Street,
		City:          req.City,
		Country:       req.Country,
		ContactPerson: req.ContactPerson,
		Designation:   req.Designation,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		Status:        status,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	result, err := h.DB.Collection("master_agents").InsertOne(context.Background(), newAgent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agent"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newAgent.ID = oid
	}

	c.JSON(http.StatusCreated, newAgent)
}

func (h *AgentHandler) GetAllAgents(c *gin.Context) {
	ctx := context.Background()

	cursor, err := h.DB.Collection("master_agents").Find(ctx, searchFilter("name", c.Query("search")), listNewestFirst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query agents"})
		return
	}
	defer cursor.Close(ctx)

	var agents []models.Agent
	if err := cursor.All(ctx, &agents); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode agents"})
		return
	}

	if agents == nil {
		agents = []models.Agent{}
	}

	c.JSON(http.StatusOK, agents)
}

func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent id"})
		return
	}

	var req AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{
		"name":           req.Name,
		"type":           req.Type,
		"po_box":         req.POBox,
		"street":         req.Street,
		"city":           req.City,
		"country":        req.Country,
		"contact_person": req.ContactPerson,
		"designation":    req.Designation,
		"phone":          req.Phone,
		"email":          req.Email,
		"website":        req.Website,
		"status":         req.Status,
		"updated_at":     time.Now(),
	}}

	result, err := h.DB.Collection("master_agents").UpdateOne(context.Background(), bson.M{"_id": id, "is_deleted": false}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update agent"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agent updated successfully"})
}

func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent id"})
		return
	}

	_, err = h.DB.Collection("master_agents").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete agent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agent deleted successfully"})
}
