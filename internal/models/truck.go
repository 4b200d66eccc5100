// server/internal/models/truck.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Truck struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TruckType         string             `bson:"truck_type" json:"truck_type"` // Own Asset, Leased, Driver Owned
	Make              string             `bson:"make" json:"make"`
	Model             string             `bson:"model" json:"model"`
	RegNo             string             `bson:"reg_no" json:"reg_no"`
	RegisteredCountry string             `bson:"registered_country" json:"registered_country"`
	RegIssueDate      *time.Time         `bson:"reg_issue_date,omitempty" json:"reg_issue_date"`
	RegExpiryDate     *time.Time         `bson:"reg_expiry_date,omitempty" json:"reg_expiry_date"`
	InsurancePolicyNo string             `bson:"insurance_policy_no" json:"insurance_policy_no"`
	InsIssueDate      *time.Time         `bson:"insurance_issue_date,omitempty" json:"insurance_issue_date"`
	InsExpiryDate     *time.Time         `bson:"insurance_expiry_date,omitempty" json:"insurance_expiry_date"`
	NoAxles           string             `bson:"no_axles" json:"no_axles"`
	PayloadCapacity   string             `bson:"payload_capacity" json:"payload_capacity"`
	OwnerName         string             `bson:"owner_name" json:"owner_name"`
	OwnerMobile       string             `bson:"owner_mobile" json:"owner_mobile"`
	IsDeleted         bool               `bson:"is_deleted" json:"-"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}
