// server/internal/api/handlers/proposal_handler.go
package handlers

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"alphaline-portal-api-server/config"
	"alphaline-portal-api-server/internal/models"
	"alphaline-portal-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProposalHandler struct {
	DB  *mongo.Database
	Cfg config.Config
	Hub *socket.Hub
}

type ProposalRequest struct {
	ProposalRef   string                `json:"proposal_ref"`
	CustomerID    string                `json:"customer_id" binding:"required"`
	AttentionID   string                `json:"attention_id"`
	Section       string                `json:"section"`
	Category      string                `json:"category"`
	ProposalDate  string                `json:"proposal_date"`
	ValidUntil    string                `json:"valid_until"`
	Subject       string                `json:"subject"`
	ScopeOfWork   string                `json:"scope_of_work"`
	SignatoryName string                `json:"signatory_name"`
	Status        string                `json:"status"`
	Sourcing      []models.SourcingItem `json:"sourcing"`
	LineItems     []models.LineItem     `json:"line_items"`
	Terms         []models.ProposalTerm `json:"terms"`
}

// newProposalRef matches the console's reference format.
func newProposalRef() string {
	return fmt.Sprintf("ALPHAQ-%d-%d", time.Now().Year(), 1000+rand.Intn(9000))
}

// normalize fills defaults and recomputes derived fields. Line amounts are
// always quantity x rate regardless of what the client sent; sourcing rows
// with nothing filled in are dropped; terms are renumbered in order.
func (h *ProposalHandler) normalize(req *ProposalRequest) models.Proposal {
	now := time.Now()

	proposalDate := parseDate(req.ProposalDate)
	if proposalDate == nil {
		proposalDate = &now
	}
	validUntil := parseDate(req.ValidUntil)
	if validUntil == nil {
		v := now.AddDate(0, 0, 10)
		validUntil = &v
	}

	ref := req.ProposalRef
	if ref == "" {
		ref = newProposalRef()
	}
	signatory := req.SignatoryName
	if signatory == "" {
		signatory = h.Cfg.App.SignatoryName
	}
	status := req.Status
	if status == "" {
		status = "Proposed"
	}

	sourcing := make([]models.SourcingItem, 0, len(req.Sourcing))
	for _, item := range req.Sourcing {
		if item.AgentID == "" && item.QuotedRate == 0 && item.EquipmentType == "" {
			continue
		}
		sourcing = append(sourcing, item)
	}

	lineItems := make([]models.LineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		item.Amount = item.Quantity * item.Rate
		lineItems = append(lineItems, item)
	}

	terms := make([]models.ProposalTerm, 0, len(req.Terms))
	for i, term := range req.Terms {
		term.SortOrder = i + 1
		terms = append(terms, term)
	}

	return models.Proposal{
		ProposalRef:   ref,
		CustomerID:    req.CustomerID,
		AttentionID:   req.AttentionID,
		Section:       req.Section,
		Category:      req.Category,
		ProposalDate:  proposalDate,
		ValidUntil:    validUntil,
		Subject:       req.Subject,
		ScopeOfWork:   req.ScopeOfWork,
		SignatoryName: signatory,
		Currency:      h.Cfg.App.Currency,
		Status:        status,
		Sourcing:      sourcing,
		LineItems:     lineItems,
		Terms:         terms,
		UpdatedAt:     now,
	}
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var req ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposal := h.normalize(&req)
	proposal.CreatedAt = time.Now()
	if email, exists := c.Get("user_email"); exists {
		proposal.CreatedBy, _ = email.(string)
	}

	result, err := h.DB.Collection("proposals").InsertOne(context.Background(), proposal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create proposal"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		proposal.ID = oid
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "created", Entity: "proposals"})
	c.JSON(http.StatusCreated, proposal)
}

func (h *ProposalHandler) GetAllProposals(c *gin.Context) {
	ctx := context.Background()

	filter := bson.M{"is_deleted": false}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := h.DB.Collection("proposals").Find(ctx, filter, listNewestFirst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query proposals"})
		return
	}
	defer cursor.Close(ctx)

	var proposals []models.Proposal
	if err := cursor.All(ctx, &proposals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode proposals"})
		return
	}

	if proposals == nil {
		proposals = []models.Proposal{}
	}

	c.JSON(http.StatusOK, proposals)
}

func (h *ProposalHandler) GetProposalByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal id"})
		return
	}

	var proposal models.Proposal
	err = h.DB.Collection("proposals").FindOne(context.Background(), bson.M{"_id": id, "is_deleted": false}).Decode(&proposal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve proposal"})
		}
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// UpdateProposal replaces the header and all embedded grids in one write,
// mirroring the builder's save-all behavior.
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal id"})
		return
	}

	var req ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposal := h.normalize(&req)

	update := bson.M{"$set": bson.M{
		"proposal_ref":   proposal.ProposalRef,
		"customer_id":    proposal.CustomerID,
		"attention_id":   proposal.AttentionID,
		"section":        proposal.Section,
		"category":       proposal.Category,
		"proposal_date":  proposal.ProposalDate,
		"valid_until":    proposal.ValidUntil,
		"subject":        proposal.Subject,
		"scope_of_work":  proposal.ScopeOfWork,
		"signatory_name": proposal.SignatoryName,
		"currency":       proposal.Currency,
		"status":         proposal.Status,
		"sourcing":       proposal.Sourcing,
		"line_items":     proposal.LineItems,
		"terms":          proposal.Terms,
		"updated_at":     proposal.UpdatedAt,
	}}

	result, err := h.DB.Collection("proposals").UpdateOne(context.Background(), bson.M{"_id": id, "is_deleted": false}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update proposal"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
		return
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "updated", Entity: "proposals"})
	c.JSON(http.StatusOK, gin.H{"message": "Proposal updated successfully"})
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal id"})
		return
	}

	_, err = h.DB.Collection("proposals").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete proposal"})
		return
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "deleted", Entity: "proposals"})
	c.JSON(http.StatusOK, gin.H{"message": "Proposal deleted successfully"})
}
