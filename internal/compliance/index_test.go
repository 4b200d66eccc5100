// server/internal/compliance/index_test.go
package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFromLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected Category
	}{
		{"Registration (Mulkiya)", CategoryRegistration},
		{"Mulkiya Copy", CategoryRegistration},
		{"Insurance Policy", CategoryInsurance},
		{"Truck Photo", CategoryTruckPhoto},
		{"Vehicle Photo", CategoryTruckPhoto},
		{"Equipment Photo", CategoryEquipmentPhoto},
		{"Passport", CategoryPassport},
		{"Visa", CategoryVisa},
		{"Driving License", CategoryLicense},
		{"Photo", CategoryDriverPhoto},
		{"Road Worthiness", CategoryRoadWorthiness},
		{"Permit", CategoryPermit},
		{"Others", CategoryOther},
		{"Residence ID", CategoryOther},
		{"", CategoryOther},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.expected, CategoryFromLabel(tc.label))
		})
	}
}

func TestNewRecordPrefersStoredCategory(t *testing.T) {
	// An explicit category wins over whatever the label says.
	record := NewRecord(RelatedDriver, "d1", string(CategoryVisa), "Some Scan")
	assert.Equal(t, CategoryVisa, record.Category)

	// Legacy rows without a stored category fall back to the label.
	record = NewRecord(RelatedDriver, "d1", "", "Passport")
	assert.Equal(t, CategoryPassport, record.Category)
}

func TestIndexHas(t *testing.T) {
	idx := NewIndex([]Record{
		{RelatedType: RelatedTruck, RelatedID: "t1", Category: CategoryRegistration},
		{RelatedType: RelatedTruck, RelatedID: "t1", Category: CategoryInsurance},
		{RelatedType: RelatedDriver, RelatedID: "d1", Category: CategoryLicense},
	})

	assert.True(t, idx.Has(RelatedTruck, "t1", CategoryRegistration))
	assert.True(t, idx.Has(RelatedTruck, "t1", CategoryInsurance))
	assert.False(t, idx.Has(RelatedTruck, "t1", CategoryTruckPhoto))

	// Ownership is scoped by type and id together.
	assert.False(t, idx.Has(RelatedDriver, "t1", CategoryRegistration))
	assert.False(t, idx.Has(RelatedTruck, "t2", CategoryRegistration))

	// Categories match exactly, a license never satisfies a photo check.
	assert.True(t, idx.Has(RelatedDriver, "d1", CategoryLicense))
	assert.False(t, idx.Has(RelatedDriver, "d1", CategoryDriverPhoto))
}

func TestIndexEmpty(t *testing.T) {
	idx := NewIndex(nil)
	assert.False(t, idx.Has(RelatedTruck, "t1", CategoryRegistration))
}

func TestIndexDuplicateDocuments(t *testing.T) {
	// Multiple documents of the same category still answer a single yes.
	idx := NewIndex([]Record{
		{RelatedType: RelatedTruck, RelatedID: "t1", Category: CategoryInsurance},
		{RelatedType: RelatedTruck, RelatedID: "t1", Category: CategoryInsurance},
	})
	assert.True(t, idx.Has(RelatedTruck, "t1", CategoryInsurance))
}
