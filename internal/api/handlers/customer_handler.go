// server/internal/api/handlers/customer_handler.go
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

type CustomerHandler struct {
	DB *mongo.Database
}

type CustomerRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	OfficePhone string `json:"office_phone"`
	Website     string `json:"website"`
	Status      string `json:"status"`
	CreditLimit string `json:"credit_limit"`
	// Primary contact captured on the same form
	ContactPerson string `json:"contact_person"`
	Designation   string `json:"designation"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
}

type ContactRequest struct {
	ContactPerson string `json:"contact_person" binding:"required"`
	Designation   string `json:"designation"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "Active"
	}
	creditLimit := req.CreditLimit
	if creditLimit == "" {
		creditLimit = "5000"
	}

	newCustomer := models.Customer{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		OfficePhone: req.OfficePhone,
		Website:     req.Website,
		Status:      status,
		CreditLimit: creditLimit,
		Contacts:    []models.CompanyContact{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if req.ContactPerson != "" {
		contact := models.CompanyContact{
			ID:            primitive.NewObjectID(),
			ContactPerson: req.ContactPerson,
			Designation:   req.Designation,
			Email:         req.Email,
			Mobile:        req.Mobile,
		}
		newCustomer.Contacts = append(newCustomer.Contacts, contact)
		newCustomer.PrimaryContactID = contact.ID.Hex()
	}

	result, err := h.DB.Collection("customers").InsertOne(context.Background(), newCustomer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newCustomer.ID = oid
	}

	c.JSON(http.StatusCreated, newCustomer)
}

func (h *CustomerHandler) GetAllCustomers(c *gin.Context) {
	ctx := context.Background()

	cursor, err := h.DB.Collection("customers").Find(ctx, searchFilter("company_name", c.Query("search")), listNewestFirst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query customers"})
		return
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode customers"})
		return
	}

	if customers == nil {
		customers = []models.Customer{}
	}

	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"$set": bson.M{
		"company_name": req.CompanyName,
		"address":      req.Address,
		"city":         req.City,
		"country":      req.Country,
		"office_phone": req.OfficePhone,
		"website":      req.Website,
		"status":       req.Status,
		"credit_limit": req.CreditLimit,
		"updated_at":   time.Now(),
	}}

	result, err := h.DB.Collection("customers").UpdateOne(context.Background(), bson.M{"_id": id, "is_deleted": false}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully"})
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	_, err = h.DB.Collection("customers").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// AddContact appends a contact to the customer's embedded contact list.
func (h *CustomerHandler) AddContact(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := models.CompanyContact{
		ID:            primitive.NewObjectID(),
		ContactPerson: req.ContactPerson,
		Designation:   req.Designation,
		Email:         req.Email,
		Mobile:        req.Mobile,
	}

	result, err := h.DB.Collection("customers").UpdateOne(context.Background(),
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// UpdateContact edits one embedded contact by its id.
func (h *CustomerHandler) UpdateContact(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}
	contactID, err := primitive.ObjectIDFromHex(c.Param("contactId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.DB.Collection("customers").UpdateOne(context.Background(),
		bson.M{"_id": id, "contacts._id": contactID},
		bson.M{"$set": bson.M{
			"contacts.$.contact_person": req.ContactPerson,
			"contacts.$.designation":    req.Designation,
			"contacts.$.email":          req.Email,
			"contacts.$.mobile":         req.Mobile,
			"updated_at":                time.Now(),
		}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact updated successfully"})
}
