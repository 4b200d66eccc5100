// server/internal/models/agent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Agent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Type          string             `bson:"type" json:"type"` // Transporter, Clearing Agent, Freight Forwarder
	POBox         string             `bson:"po_box" json:"po_box"`
	Street        string             `bson:"street" json:"street"`
	City          string             `bson:"city" json:"city"`
	Country       string             `bson:"country" json:"country"`
	ContactPerson string             `bson:"contact_person" json:"contact_person"`
	Designation   string             `bson:"designation" json:"designation"`
	Phone         string             `bson:"phone" json:"phone"`
	Email         string             `bson:"email" json:"email"`
	Website       string             `bson:"website" json:"website"`
	Status        string             `bson:"status" json:"status"`
	IsDeleted     bool               `bson:"is_deleted" json:"-"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
