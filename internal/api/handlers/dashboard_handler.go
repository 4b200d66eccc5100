// server/internal/api/handlers/dashboard_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"alphaline-portal-api-server/internal/compliance"
	"alphaline-portal-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DashboardHandler struct {
	DB *mongo.Database
}

type ProposalStats struct {
	Total    int64 `json:"total"`
	Draft    int64 `json:"draft"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type FleetComplianceStats struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

type DashboardStats struct {
	Proposals       ProposalStats        `json:"proposals"`
	Trucks          int64                `json:"trucks"`
	Drivers         int64                `json:"drivers"`
	Equipment       int64                `json:"equipment"`
	Customers       int64                `json:"customers"`
	FleetCompliance FleetComplianceStats `json:"fleet_compliance"`
}

// GetStats aggregates the console landing page counters. The compliance
// roll-up is recomputed from source data on every call, same as the list
// screens.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	ctx := context.Background()

	var stats DashboardStats
	var err error

	active := bson.M{"is_deleted": false}

	proposals := h.DB.Collection("proposals")
	if stats.Proposals.Total, err = proposals.CountDocuments(ctx, active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count proposals"})
		return
	}
	stats.Proposals.Draft, _ = proposals.CountDocuments(ctx, bson.M{"is_deleted": false, "status": "Draft"})
	stats.Proposals.Approved, _ = proposals.CountDocuments(ctx, bson.M{"is_deleted": false, "status": "Approved"})
	stats.Proposals.Rejected, _ = proposals.CountDocuments(ctx, bson.M{"is_deleted": false, "status": "Rejected"})

	stats.Trucks, _ = h.DB.Collection("fleet_trucks").CountDocuments(ctx, active)
	stats.Drivers, _ = h.DB.Collection("fleet_drivers").CountDocuments(ctx, active)
	stats.Equipment, _ = h.DB.Collection("fleet_equipment").CountDocuments(ctx, active)
	stats.Customers, _ = h.DB.Collection("customers").CountDocuments(ctx, active)

	rollup, err := h.fleetComplianceRollup(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute fleet compliance"})
		return
	}
	stats.FleetCompliance = rollup

	c.JSON(http.StatusOK, stats)
}

func tally(rollup *FleetComplianceStats, state compliance.State) {
	switch state {
	case compliance.StateRed:
		rollup.Red++
	case compliance.StateYellow:
		rollup.Yellow++
	default:
		rollup.Green++
	}
}

// fleetComplianceRollup evaluates every active truck, driver and equipment
// item and counts the resulting traffic-light states.
func (h *DashboardHandler) fleetComplianceRollup(ctx context.Context) (FleetComplianceStats, error) {
	var rollup FleetComplianceStats
	now := time.Now()
	active := bson.M{"is_deleted": false}

	var trucks []models.Truck
	cursor, err := h.DB.Collection("fleet_trucks").Find(ctx, active)
	if err != nil {
		return rollup, err
	}
	if err := cursor.All(ctx, &trucks); err != nil {
		return rollup, err
	}

	var drivers []models.Driver
	cursor, err = h.DB.Collection("fleet_drivers").Find(ctx, active)
	if err != nil {
		return rollup, err
	}
	if err := cursor.All(ctx, &drivers); err != nil {
		return rollup, err
	}

	var equipment []models.Equipment
	cursor, err = h.DB.Collection("fleet_equipment").Find(ctx, active)
	if err != nil {
		return rollup, err
	}
	if err := cursor.All(ctx, &equipment); err != nil {
		return rollup, err
	}

	truckIDs := make([]string, 0, len(trucks))
	for _, t := range trucks {
		truckIDs = append(truckIDs, t.ID.Hex())
	}
	driverIDs := make([]string, 0, len(drivers))
	for _, d := range drivers {
		driverIDs = append(driverIDs, d.ID.Hex())
	}
	equipmentIDs := make([]string, 0, len(equipment))
	for _, e := range equipment {
		equipmentIDs = append(equipmentIDs, e.ID.Hex())
	}

	truckIndex, err := fetchComplianceIndex(ctx, h.DB, compliance.RelatedTruck, truckIDs)
	if err != nil {
		return rollup, err
	}
	driverIndex, err := fetchComplianceIndex(ctx, h.DB, compliance.RelatedDriver, driverIDs)
	if err != nil {
		return rollup, err
	}
	equipmentIndex, err := fetchComplianceIndex(ctx, h.DB, compliance.RelatedEquipment, equipmentIDs)
	if err != nil {
		return rollup, err
	}

	for _, truck := range trucks {
		result := compliance.Evaluate(compliance.Subject{
			ID:    truck.ID.Hex(),
			Type:  compliance.RelatedTruck,
			RegNo: truck.RegNo,
			Dates: map[compliance.DateField]*time.Time{
				compliance.DateRegistrationExpiry: truck.RegExpiryDate,
				compliance.DateInsuranceExpiry:    truck.InsExpiryDate,
			},
		}, truckIndex, now)
		tally(&rollup, result.State())
	}

	for _, driver := range drivers {
		result := compliance.Evaluate(compliance.Subject{
			ID:   driver.ID.Hex(),
			Type: compliance.RelatedDriver,
			Dates: map[compliance.DateField]*time.Time{
				compliance.DateVisaExpiry:     driver.VisaExpiryDate,
				compliance.DateLicenseExpiry:  driver.LicenseExpiry,
				compliance.DatePassportExpiry: driver.PassportExpiry,
			},
		}, driverIndex, now)
		tally(&rollup, result.State())
	}

	for _, item := range equipment {
		result := compliance.Evaluate(compliance.Subject{
			ID:    item.ID.Hex(),
			Type:  compliance.RelatedEquipment,
			RegNo: item.RegNo,
			Dates: map[compliance.DateField]*time.Time{
				compliance.DateRegistrationExpiry: item.RegExpiryDate,
				compliance.DateInsuranceExpiry:    item.InsExpiryDate,
			},
		}, equipmentIndex, now)
		tally(&rollup, result.State())
	}

	return rollup, nil
}
