// server/internal/api/handlers/helpers.go
package handlers

import (
	"context"
	"time"

	"alphaline-portal-api-server/internal/compliance"
	"alphaline-portal-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// parseDate turns a console date string (YYYY-MM-DD) into a nullable time.
// Empty or unparsable input comes back nil; the compliance policy for a
// missing date is decided downstream, not here.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// searchFilter builds the soft-delete list filter with an optional
// case-insensitive prefix-anywhere match on one field.
func searchFilter(field, search string) bson.M {
	filter := bson.M{"is_deleted": false}
	if search != "" {
		filter[field] = bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}
	}
	return filter
}

// fetchComplianceIndex loads every document attached to the given batch of
// entities in one query and builds the category index the evaluator reads.
func fetchComplianceIndex(ctx context.Context, db *mongo.Database, relatedType compliance.RelatedType, ids []string) (*compliance.Index, error) {
	if len(ids) == 0 {
		return compliance.NewIndex(nil), nil
	}

	cursor, err := db.Collection("fleet_documents").Find(ctx, bson.M{
		"related_type": string(relatedType),
		"related_id":   bson.M{"$in": ids},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.FleetDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]compliance.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, compliance.NewRecord(
			compliance.RelatedType(doc.RelatedType), doc.RelatedID, doc.Category, doc.DocType,
		))
	}
	return compliance.NewIndex(records), nil
}

var listNewestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
