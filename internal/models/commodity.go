// server/internal/models/commodity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Commodity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category    string             `bson:"category" json:"category"` // General Cargo, Reefer, Project Cargo...
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	PackingType string             `bson:"packing_type" json:"packing_type"` // Palletized, Loose, Bagged...
	IsDeleted   bool               `bson:"is_deleted" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
