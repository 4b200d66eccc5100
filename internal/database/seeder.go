// server/internal/database/seeder.go
package database

import (
	"context"
	"log"

	"alphaline-portal-api-server/internal/auth"
	"alphaline-portal-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedSuperAdmin creates the initial superadmin account if none exists.
func SeedSuperAdmin(db *mongo.Database) error {
	userCollection := db.Collection("users")
	superAdminEmail := "superadmin@example.com"

	count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": superAdminEmail})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Super admin already exists. Seeding skipped.")
		return nil
	}

	log.Println("Super admin not found. Seeding...")
	hashedPassword, err := auth.HashPassword("superadminpassword")
	if err != nil {
		return err
	}

	superAdmin := models.User{
		Email:    superAdminEmail,
		Name:     "Super Admin",
		Password: hashedPassword,
		Role:     "superadmin",
		Status:   "active",
	}

	_, err = userCollection.InsertOne(context.Background(), superAdmin)
	if err != nil {
		return err
	}

	log.Println("Super admin seeded successfully.")
	return nil
}

// SeedCountries loads the initial country list used by the console
// dropdowns. Skipped once any country exists, operators extend the list
// from the forms.
func SeedCountries(db *mongo.Database) error {
	collection := db.Collection("master_countries")

	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	names := []string{
		"United Arab Emirates", "Saudi Arabia", "Oman", "Qatar", "Kuwait",
		"Bahrain", "Jordan", "Iraq", "India", "Pakistan", "Turkey", "Egypt",
	}

	docs := make([]interface{}, 0, len(names))
	for _, name := range names {
		docs = append(docs, models.Country{Name: name})
	}

	if _, err := collection.InsertMany(context.Background(), docs); err != nil {
		return err
	}

	log.Printf("Seeded %d countries.", len(names))
	return nil
}
