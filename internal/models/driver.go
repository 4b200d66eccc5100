// server/internal/models/driver.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Driver struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName          string             `bson:"full_name" json:"full_name"`
	FatherName        string             `bson:"father_name" json:"father_name"`
	Nationality       string             `bson:"nationality" json:"nationality"`
	PassportNo        string             `bson:"passport_no" json:"passport_no"`
	PassportExpiry    *time.Time         `bson:"passport_expiry,omitempty" json:"passport_expiry"`
	LicenseNo         string             `bson:"license_no" json:"license_no"`
	LicenseExpiry     *time.Time         `bson:"license_expiry,omitempty" json:"license_expiry"`
	VisaIssueDate     *time.Time         `bson:"visa_issue_date,omitempty" json:"visa_issue_date"`
	VisaExpiryDate    *time.Time         `bson:"visa_expiry_date,omitempty" json:"visa_expiry_date"`
	MobileOrigin      string             `bson:"mobile_origin" json:"mobile_origin"`
	MobileTransit     string             `bson:"mobile_transit" json:"mobile_transit"`
	MobileDestination string             `bson:"mobile_destination" json:"mobile_destination"`
	WhatsappNumber    string             `bson:"whatsapp_number" json:"whatsapp_number"`
	Status            string             `bson:"status" json:"status"` // Active, Inactive
	IsDeleted         bool               `bson:"is_deleted" json:"-"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}
