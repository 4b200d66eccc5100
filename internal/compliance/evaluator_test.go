// server/internal/compliance/evaluator_test.go
package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docsFor(relatedType RelatedType, id string, categories ...Category) []Record {
	records := make([]Record, 0, len(categories))
	for _, cat := range categories {
		records = append(records, Record{RelatedType: relatedType, RelatedID: id, Category: cat})
	}
	return records
}

// Truck with nothing on file: every missing document and both unset dates
// escalate to critical issues.
func TestEvaluateTruckNothingOnFile(t *testing.T) {
	subject := Subject{
		ID:    "t1",
		Type:  RelatedTruck,
		RegNo: "DXB-12345",
		Dates: map[DateField]*time.Time{
			DateRegistrationExpiry: nil,
			DateInsuranceExpiry:    nil,
		},
	}

	result := Evaluate(subject, NewIndex(nil), testNow)

	assert.Equal(t, []string{
		"Missing Reg. Card Copy",
		"Missing Insurance Copy",
		"Missing Truck Photo",
		"Registration Date Not Set",
		"Insurance Date Not Set",
	}, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, StateRed, result.State())
}

func TestEvaluateTruckExpiredInsurance(t *testing.T) {
	subject := Subject{
		ID:    "t1",
		Type:  RelatedTruck,
		RegNo: "DXB-12345",
		Dates: map[DateField]*time.Time{
			DateRegistrationExpiry: daysFromNow(90),
			DateInsuranceExpiry:    daysFromNow(-5),
		},
	}
	idx := NewIndex(docsFor(RelatedTruck, "t1", CategoryRegistration, CategoryInsurance, CategoryTruckPhoto))

	result := Evaluate(subject, idx, testNow)

	assert.Contains(t, result.Issues, "Insurance EXPIRED (5 days ago)")
	assert.Equal(t, StateRed, result.State())
}

func TestEvaluateTruckAllValid(t *testing.T) {
	subject := Subject{
		ID:    "t1",
		Type:  RelatedTruck,
		RegNo: "DXB-12345",
		Dates: map[DateField]*time.Time{
			DateRegistrationExpiry: daysFromNow(120),
			DateInsuranceExpiry:    daysFromNow(90),
		},
	}
	idx := NewIndex(docsFor(RelatedTruck, "t1", CategoryRegistration, CategoryInsurance, CategoryTruckPhoto))

	result := Evaluate(subject, idx, testNow)

	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, StateGreen, result.State())
}

// Driver with all documents and a visa inside the warning window: yellow,
// never red.
func TestEvaluateDriverExpiringVisa(t *testing.T) {
	subject := Subject{
		ID:   "d1",
		Type: RelatedDriver,
		Dates: map[DateField]*time.Time{
			DateVisaExpiry:     daysFromNow(10),
			DateLicenseExpiry:  daysFromNow(200),
			DatePassportExpiry: daysFromNow(400),
		},
	}
	idx := NewIndex(docsFor(RelatedDriver, "d1", CategoryPassport, CategoryVisa, CategoryLicense, CategoryDriverPhoto))

	result := Evaluate(subject, idx, testNow)

	assert.Empty(t, result.Issues)
	assert.Equal(t, []string{"Visa Expiring in 10 days"}, result.Warnings)
	assert.Equal(t, StateYellow, result.State())
}

// Driver policy: unset dates are skipped, not escalated.
func TestEvaluateDriverUnsetDatesSkipped(t *testing.T) {
	subject := Subject{
		ID:    "d1",
		Type:  RelatedDriver,
		Dates: map[DateField]*time.Time{},
	}
	idx := NewIndex(docsFor(RelatedDriver, "d1", CategoryPassport, CategoryVisa, CategoryLicense, CategoryDriverPhoto))

	result := Evaluate(subject, idx, testNow)

	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, StateGreen, result.State())
}

func TestEvaluateDriverMissingDocuments(t *testing.T) {
	subject := Subject{ID: "d1", Type: RelatedDriver}

	result := Evaluate(subject, NewIndex(nil), testNow)

	assert.Equal(t, []string{
		"Missing Passport Copy",
		"Missing Visa Copy",
		"Missing License Copy",
		"Missing Driver Photo",
	}, result.Issues)
	assert.Equal(t, StateRed, result.State())
}

// Equipment without a registration number is exempt from registration
// checks entirely; the photo is still required.
func TestEvaluateEquipmentNoRegNo(t *testing.T) {
	subject := Subject{
		ID:    "e1",
		Type:  RelatedEquipment,
		RegNo: "",
		Dates: map[DateField]*time.Time{
			DateInsuranceExpiry: daysFromNow(90),
		},
	}
	idx := NewIndex(docsFor(RelatedEquipment, "e1", CategoryEquipmentPhoto))

	result := Evaluate(subject, idx, testNow)

	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, StateGreen, result.State())
}

func TestEvaluateEquipmentWithRegNo(t *testing.T) {
	subject := Subject{
		ID:    "e1",
		Type:  RelatedEquipment,
		RegNo: "TRL-9",
		Dates: map[DateField]*time.Time{
			DateRegistrationExpiry: daysFromNow(15),
			DateInsuranceExpiry:    daysFromNow(90),
		},
	}
	idx := NewIndex(docsFor(RelatedEquipment, "e1", CategoryEquipmentPhoto, CategoryRegistration))

	result := Evaluate(subject, idx, testNow)

	assert.Empty(t, result.Issues)
	assert.Equal(t, []string{"Registration Expiring in 15 days"}, result.Warnings)
	assert.Equal(t, StateYellow, result.State())
}

// Equipment never escalates an unset date, even with a reg number.
func TestEvaluateEquipmentUnsetDatesSkipped(t *testing.T) {
	subject := Subject{
		ID:    "e1",
		Type:  RelatedEquipment,
		RegNo: "TRL-9",
		Dates: map[DateField]*time.Time{},
	}
	idx := NewIndex(docsFor(RelatedEquipment, "e1", CategoryEquipmentPhoto, CategoryRegistration))

	result := Evaluate(subject, idx, testNow)

	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
}

func TestEvaluateUnknownTypeIsGreen(t *testing.T) {
	result := Evaluate(Subject{ID: "x", Type: RelatedType("Trailer")}, NewIndex(nil), testNow)

	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, StateGreen, result.State())
}

func TestEvaluateNilDatesMapDoesNotPanic(t *testing.T) {
	subject := Subject{ID: "t1", Type: RelatedTruck, RegNo: "DXB-1"}

	require.NotPanics(t, func() {
		result := Evaluate(subject, NewIndex(nil), testNow)
		assert.Contains(t, result.Issues, "Registration Date Not Set")
	})
}

func TestEvaluateIdempotent(t *testing.T) {
	subject := Subject{
		ID:    "t1",
		Type:  RelatedTruck,
		RegNo: "DXB-12345",
		Dates: map[DateField]*time.Time{
			DateRegistrationExpiry: daysFromNow(10),
			DateInsuranceExpiry:    daysFromNow(-3),
		},
	}
	idx := NewIndex(docsFor(RelatedTruck, "t1", CategoryRegistration))

	first := Evaluate(subject, idx, testNow)
	second := Evaluate(subject, idx, testNow)

	assert.Equal(t, first, second)
}

func TestStateDerivation(t *testing.T) {
	assert.Equal(t, StateGreen, Result{Issues: []string{}, Warnings: []string{}}.State())
	assert.Equal(t, StateYellow, Result{Warnings: []string{"w"}}.State())
	assert.Equal(t, StateRed, Result{Issues: []string{"i"}}.State())

	// Issues win over warnings; adding an issue only ever moves toward red.
	mixed := Result{Issues: []string{"i"}, Warnings: []string{"w"}}
	assert.Equal(t, StateRed, mixed.State())

	warning := Result{Warnings: []string{"w"}}
	escalated := Result{Issues: append([]string{}, "i"), Warnings: warning.Warnings}
	assert.Equal(t, StateRed, escalated.State())
}

// The badge count on a red row is the number of critical issues, warnings
// stay behind it until the detail view.
func TestRedStateBadgeCount(t *testing.T) {
	subject := Subject{
		ID:    "t1",
		Type:  RelatedTruck,
		RegNo: "DXB-12345",
		Dates: map[DateField]*time.Time{
			DateRegistrationExpiry: daysFromNow(-2),
			DateInsuranceExpiry:    daysFromNow(20),
		},
	}
	idx := NewIndex(docsFor(RelatedTruck, "t1", CategoryRegistration, CategoryInsurance, CategoryTruckPhoto))

	result := Evaluate(subject, idx, testNow)

	assert.Equal(t, StateRed, result.State())
	assert.Len(t, result.Issues, 1)
	assert.Len(t, result.Warnings, 1)
}
