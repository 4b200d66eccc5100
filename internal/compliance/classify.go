// server/internal/compliance/classify.go
package compliance

import (
	"fmt"
	"math"
	"time"
)

// ExpiryWarningDays is the window, in whole days, inside which a valid date
// is reported as expiring soon. Day 30 warns, day 31 does not.
const ExpiryWarningDays = 30

type EffectKind int

const (
	// EffectNone: date is more than ExpiryWarningDays away.
	EffectNone EffectKind = iota
	// EffectUnset: no date was ever set. Whether this escalates to an
	// issue is a per-entity-type policy decision, see the checklists.
	EffectUnset
	// EffectWarning: date falls within the warning window.
	EffectWarning
	// EffectIssue: date is in the past.
	EffectIssue
)

// Effect is the outcome of classifying one expiry date.
type Effect struct {
	Kind    EffectKind
	Message string
}

// Classify buckets a nullable expiry date against now. The day difference
// is the ceiling of the exact duration in days: a moment within the past
// 24 hours rounds to 0 ("Expiring in 0 days"), anything older is expired.
// The rounding rule decides exactly which day an item flips from valid to
// warning, so it must not change. Pure function, no side effects.
func Classify(date *time.Time, label string, now time.Time) Effect {
	if date == nil {
		return Effect{Kind: EffectUnset, Message: label + " Date Not Set"}
	}

	diffDays := int(math.Ceil(date.Sub(now).Hours() / 24))

	switch {
	case diffDays < 0:
		return Effect{
			Kind:    EffectIssue,
			Message: fmt.Sprintf("%s EXPIRED (%d days ago)", label, -diffDays),
		}
	case diffDays <= ExpiryWarningDays:
		return Effect{
			Kind:    EffectWarning,
			Message: fmt.Sprintf("%s Expiring in %d days", label, diffDays),
		}
	default:
		return Effect{Kind: EffectNone}
	}
}
