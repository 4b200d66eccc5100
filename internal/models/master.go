// server/internal/models/master.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Master lookup rows backing the console dropdowns. All of them support
// add-on-the-fly creation from the forms that use them.

type Country struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type City struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	CountryName string             `bson:"country_name" json:"country_name"`
}

type Designation struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// SpecialTerm is a reusable proposal term; IsDefault terms are the set the
// "import standard terms" action pulls in.
type SpecialTerm struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TermText  string             `bson:"term_text" json:"term_text"`
	SortOrder int                `bson:"sort_order" json:"sort_order"`
	IsDefault bool               `bson:"is_default" json:"is_default"`
}
