// server/internal/models/equipment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Equipment covers trailers and other towed assets. RegNo may legitimately
// be empty (yard trailers), which exempts the item from registration
// compliance checks.
type Equipment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EquipmentType   string             `bson:"equipment_type" json:"equipment_type"` // Own Asset, Leased, Driver Owned
	Category        string             `bson:"category" json:"category"`             // e.g. "40ft Flat Bed", "13.6m Reefer"
	RegNo           string             `bson:"reg_no" json:"reg_no"`
	RegExpiryDate   *time.Time         `bson:"reg_expiry_date,omitempty" json:"reg_expiry_date"`
	InsExpiryDate   *time.Time         `bson:"insurance_expiry_date,omitempty" json:"insurance_expiry_date"`
	NoAxles         string             `bson:"no_axles" json:"no_axles"`
	PayloadCapacity string             `bson:"payload_capacity" json:"payload_capacity"`
	Length          string             `bson:"length" json:"length"`
	Width           string             `bson:"width" json:"width"`
	Status          string             `bson:"status" json:"status"`
	IsDeleted       bool               `bson:"is_deleted" json:"-"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
