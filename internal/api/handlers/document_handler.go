// server/internal/api/handlers/document_handler.go
package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"alphaline-portal-api-server/internal/compliance"
	"alphaline-portal-api-server/internal/models"
	"alphaline-portal-api-server/internal/s3"
	"alphaline-portal-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DocumentHandler struct {
	DB         *mongo.Database
	S3Uploader *s3.Uploader
	Hub        *socket.Hub
}

var validRelatedTypes = map[string]bool{
	string(compliance.RelatedTruck):     true,
	string(compliance.RelatedDriver):    true,
	string(compliance.RelatedEquipment): true,
}

// UploadDocument stores the file in S3 and records the document. The
// compliance category is taken from the form when given, otherwise derived
// from the doc_type label.
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	relatedType := c.PostForm("related_type")
	relatedID := c.PostForm("related_id")
	docType := c.PostForm("doc_type")

	if !validRelatedTypes[relatedType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "related_type must be Truck, Driver or Equipment"})
		return
	}
	if relatedID == "" || docType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "related_id and doc_type are required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	ext := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	objectKey := fmt.Sprintf("%s/%s/%s.%s", relatedType, relatedID, uuid.New().String(), ext)

	fileURL, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("Document upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	category := c.PostForm("category")
	if category == "" {
		category = string(compliance.CategoryFromLabel(docType))
	}

	doc := models.FleetDocument{
		RelatedType: relatedType,
		RelatedID:   relatedID,
		DocType:     docType,
		Category:    category,
		ExpiryDate:  parseDate(c.PostForm("expiry_date")),
		FileURL:     fileURL,
		FileName:    fileHeader.Filename,
		ObjectKey:   objectKey,
		CreatedAt:   time.Now(),
	}

	result, err := h.DB.Collection("fleet_documents").InsertOne(context.Background(), doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document record"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "uploaded", Entity: "fleet_documents"})
	c.JSON(http.StatusCreated, doc)
}

// GetDocuments lists the documents attached to one entity, newest first.
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	relatedType := c.Query("related_type")
	relatedID := c.Query("related_id")
	if !validRelatedTypes[relatedType] || relatedID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "related_type and related_id are required"})
		return
	}

	ctx := context.Background()
	cursor, err := h.DB.Collection("fleet_documents").Find(ctx,
		bson.M{"related_type": relatedType, "related_id": relatedID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query documents"})
		return
	}
	defer cursor.Close(ctx)

	var docs []models.FleetDocument
	if err := cursor.All(ctx, &docs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode documents"})
		return
	}

	if docs == nil {
		docs = []models.FleetDocument{}
	}

	c.JSON(http.StatusOK, docs)
}

// DeleteDocument removes the record and its stored file.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document id"})
		return
	}

	collection := h.DB.Collection("fleet_documents")

	var doc models.FleetDocument
	if err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve document"})
		}
		return
	}

	if _, err := collection.DeleteOne(context.Background(), bson.M{"_id": id}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	// The record is gone either way; losing the S3 object is only noise.
	if doc.ObjectKey != "" {
		if err := h.S3Uploader.DeleteFile(c.Request.Context(), doc.ObjectKey); err != nil {
			log.Printf("Failed to delete stored file %s: %v", doc.ObjectKey, err)
		}
	}

	h.Hub.Broadcast(socket.RefreshEvent{Event: "deleted", Entity: "fleet_documents"})
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
