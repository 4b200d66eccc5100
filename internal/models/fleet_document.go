// server/internal/models/fleet_document.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FleetDocument is an uploaded file attached to a truck, driver or piece of
// equipment. Category is the enumerated compliance tag assigned at upload
// time; DocType keeps the human-readable label shown in the console.
type FleetDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RelatedType string             `bson:"related_type" json:"related_type"` // Truck, Driver, Equipment
	RelatedID   string             `bson:"related_id" json:"related_id"`
	DocType     string             `bson:"doc_type" json:"doc_type"` // e.g. "Registration (Mulkiya)"
	Category    string             `bson:"category" json:"category"`
	ExpiryDate  *time.Time         `bson:"expiry_date,omitempty" json:"expiry_date"`
	FileURL     string             `bson:"file_url" json:"file_url"`
	FileName    string             `bson:"file_name" json:"file_name"`
	ObjectKey   string             `bson:"object_key" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
