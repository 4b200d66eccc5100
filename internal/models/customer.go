// server/internal/models/customer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CompanyContact struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ContactPerson string             `bson:"contact_person" json:"contact_person"`
	Designation   string             `bson:"designation" json:"designation"`
	Email         string             `bson:"email" json:"email"`
	Mobile        string             `bson:"mobile" json:"mobile"`
}

type Customer struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyName      string             `bson:"company_name" json:"company_name"`
	Address          string             `bson:"address" json:"address"`
	City             string             `bson:"city" json:"city"`
	Country          string             `bson:"country" json:"country"`
	OfficePhone      string             `bson:"office_phone" json:"office_phone"`
	Website          string             `bson:"website" json:"website"`
	Status           string             `bson:"status" json:"status"`
	CreditLimit      string             `bson:"credit_limit" json:"credit_limit"`
	Contacts         []CompanyContact   `bson:"contacts" json:"contacts"`
	PrimaryContactID string             `bson:"primary_contact_id" json:"primary_contact_id"`
	IsDeleted        bool               `bson:"is_deleted" json:"-"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}
