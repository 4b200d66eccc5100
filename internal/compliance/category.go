// server/internal/compliance/category.go
package compliance

import "strings"

// Category is the enumerated document category stored on every fleet
// document at upload time. Checks compare categories exactly; the free-text
// doc_type label is display-only.
type Category string

const (
	CategoryRegistration   Category = "registration"
	CategoryInsurance      Category = "insurance"
	CategoryTruckPhoto     Category = "truck_photo"
	CategoryEquipmentPhoto Category = "equipment_photo"
	CategoryPassport       Category = "passport"
	CategoryVisa           Category = "visa"
	CategoryLicense        Category = "license"
	CategoryDriverPhoto    Category = "driver_photo"
	CategoryPermit         Category = "permit"
	CategoryRoadWorthiness Category = "road_worthiness"
	CategoryOther          Category = "other"
)

// RelatedType identifies which fleet entity a document belongs to. The
// values match the related_type column written by the console.
type RelatedType string

const (
	RelatedTruck     RelatedType = "Truck"
	RelatedDriver    RelatedType = "Driver"
	RelatedEquipment RelatedType = "Equipment"
)

// labelKeywords maps doc_type label keywords to categories, most specific
// first. Mirrors the labels offered by the console's upload dropdowns
// ("Registration (Mulkiya)", "Insurance Policy", "Driving License", ...).
var labelKeywords = []struct {
	keyword  string
	category Category
}{
	{"Mulkiya", CategoryRegistration},
	{"Registration", CategoryRegistration},
	{"Insurance", CategoryInsurance},
	{"Truck Photo", CategoryTruckPhoto},
	{"Vehicle Photo", CategoryTruckPhoto},
	{"Equipment Photo", CategoryEquipmentPhoto},
	{"Trailer Photo", CategoryEquipmentPhoto},
	{"Passport", CategoryPassport},
	{"Visa", CategoryVisa},
	{"License", CategoryLicense},
	{"Road Worthiness", CategoryRoadWorthiness},
	{"Permit", CategoryPermit},
	{"Photo", CategoryDriverPhoto},
}

// CategoryFromLabel derives a category from a free-text doc_type label.
// Used for documents uploaded before categories were stored, and as the
// fallback when an upload does not name a category explicitly. Labels that
// match nothing classify as CategoryOther.
func CategoryFromLabel(docType string) Category {
	for _, kw := range labelKeywords {
		if strings.Contains(docType, kw.keyword) {
			return kw.category
		}
	}
	return CategoryOther
}
