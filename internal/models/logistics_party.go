// server/internal/models/logistics_party.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PartyLocation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LocationName string             `bson:"location_name" json:"location_name"`
	Address      string             `bson:"address" json:"address"`
	City         string             `bson:"city" json:"city"`
	Country      string             `bson:"country" json:"country"`
}

type PartyContact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Designation string             `bson:"designation" json:"designation"`
	Mobile      string             `bson:"mobile" json:"mobile"`
	Email       string             `bson:"email" json:"email"`
}

// LogisticsParty is a shipper, consignee or notify party referenced from
// proposals and bookings. Locations and contacts are kept as embedded
// sub-lists edited from the party modal.
type LogisticsParty struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	PartyType   string             `bson:"party_type" json:"party_type"` // Shipper, Consignee, Notify Party
	MainAddress string             `bson:"main_address" json:"main_address"`
	City        string             `bson:"city" json:"city"`
	Country     string             `bson:"country" json:"country"`
	Phone       string             `bson:"phone" json:"phone"`
	Email       string             `bson:"email" json:"email"`
	Website     string             `bson:"website" json:"website"`
	Locations   []PartyLocation    `bson:"locations" json:"locations"`
	Contacts    []PartyContact     `bson:"contacts" json:"contacts"`
	IsDeleted   bool               `bson:"is_deleted" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
