// server/internal/compliance/evaluator.go
package compliance

import "time"

// DateField names an expiry date carried by a fleet entity.
type DateField string

const (
	DateRegistrationExpiry DateField = "reg_expiry_date"
	DateInsuranceExpiry    DateField = "insurance_expiry_date"
	DateVisaExpiry         DateField = "visa_expiry_date"
	DateLicenseExpiry      DateField = "license_expiry"
	DatePassportExpiry     DateField = "passport_expiry"
)

// Subject is the evaluator's view of one fleet entity.
type Subject struct {
	ID    string
	Type  RelatedType
	RegNo string
	Dates map[DateField]*time.Time
}

// DocumentCheck requires a document of Category to exist.
type DocumentCheck struct {
	Category       Category
	MissingMessage string
	// RequiresRegNo skips the check for entities without a registration
	// number (unregistered trailers are exempt from registration checks).
	RequiresRegNo bool
}

// DateCheck runs the expiry classifier on one date field.
type DateCheck struct {
	Field DateField
	Label string
	// EscalateUnset records a missing date as a critical issue instead of
	// skipping it. Trucks escalate; drivers and equipment do not. The
	// asymmetry is deliberate operator policy, kept visible here rather
	// than buried in per-type code paths.
	EscalateUnset bool
	RequiresRegNo bool
}

// Checklist is the ordered set of checks for one entity type. Order fixes
// the display order of issues and warnings.
type Checklist struct {
	Documents []DocumentCheck
	Dates     []DateCheck
}

// Checklists maps entity type to its checklist.
var Checklists = map[RelatedType]Checklist{
	RelatedTruck: {
		Documents: []DocumentCheck{
			{Category: CategoryRegistration, MissingMessage: "Missing Reg. Card Copy"},
			{Category: CategoryInsurance, MissingMessage: "Missing Insurance Copy"},
			{Category: CategoryTruckPhoto, MissingMessage: "Missing Truck Photo"},
		},
		Dates: []DateCheck{
			{Field: DateRegistrationExpiry, Label: "Registration", EscalateUnset: true},
			{Field: DateInsuranceExpiry, Label: "Insurance", EscalateUnset: true},
		},
	},
	RelatedDriver: {
		Documents: []DocumentCheck{
			{Category: CategoryPassport, MissingMessage: "Missing Passport Copy"},
			{Category: CategoryVisa, MissingMessage: "Missing Visa Copy"},
			{Category: CategoryLicense, MissingMessage: "Missing License Copy"},
			{Category: CategoryDriverPhoto, MissingMessage: "Missing Driver Photo"},
		},
		Dates: []DateCheck{
			{Field: DateVisaExpiry, Label: "Visa"},
			{Field: DateLicenseExpiry, Label: "License"},
			{Field: DatePassportExpiry, Label: "Passport"},
		},
	},
	RelatedEquipment: {
		Documents: []DocumentCheck{
			{Category: CategoryEquipmentPhoto, MissingMessage: "Missing Equipment Photo"},
			{Category: CategoryRegistration, MissingMessage: "Missing Reg. Card Copy", RequiresRegNo: true},
		},
		Dates: []DateCheck{
			{Field: DateRegistrationExpiry, Label: "Registration", RequiresRegNo: true},
			{Field: DateInsuranceExpiry, Label: "Insurance"},
		},
	},
}

// State is the traffic-light summary shown on the list screens.
type State string

const (
	StateRed    State = "red"
	StateYellow State = "yellow"
	StateGreen  State = "green"
)

// Result is recomputed from source data on every fetch, never persisted.
type Result struct {
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

// State derives the summary badge. Issues always win over warnings.
func (r Result) State() State {
	switch {
	case len(r.Issues) > 0:
		return StateRed
	case len(r.Warnings) > 0:
		return StateYellow
	default:
		return StateGreen
	}
}

// Evaluate runs the subject's checklist against the document index. Total
// over its inputs: unknown entity types, missing dates and empty document
// sets all degrade to the appropriate missing/skip outcome, never a panic.
func Evaluate(subject Subject, idx *Index, now time.Time) Result {
	result := Result{Issues: []string{}, Warnings: []string{}}

	checklist, ok := Checklists[subject.Type]
	if !ok {
		return result
	}

	for _, check := range checklist.Documents {
		if check.RequiresRegNo && subject.RegNo == "" {
			continue
		}
		if !idx.Has(subject.Type, subject.ID, check.Category) {
			result.Issues = append(result.Issues, check.MissingMessage)
		}
	}

	for _, check := range checklist.Dates {
		if check.RequiresRegNo && subject.RegNo == "" {
			continue
		}
		effect := Classify(subject.Dates[check.Field], check.Label, now)
		switch effect.Kind {
		case EffectIssue:
			result.Issues = append(result.Issues, effect.Message)
		case EffectWarning:
			result.Warnings = append(result.Warnings, effect.Message)
		case EffectUnset:
			if check.EscalateUnset {
				result.Issues = append(result.Issues, effect.Message)
			}
		}
	}

	return result
}
