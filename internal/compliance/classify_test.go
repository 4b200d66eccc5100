// server/internal/compliance/classify_test.go
package compliance

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func daysFromNow(days int) *time.Time {
	t := testNow.Add(time.Duration(days) * 24 * time.Hour)
	return &t
}

func TestClassifyUnsetDate(t *testing.T) {
	effect := Classify(nil, "Visa", testNow)

	assert.Equal(t, EffectUnset, effect.Kind)
	assert.Equal(t, "Visa Date Not Set", effect.Message)
}

func TestClassifyExpired(t *testing.T) {
	tests := []struct {
		daysAgo int
		message string
	}{
		{1, "Insurance EXPIRED (1 days ago)"},
		{5, "Insurance EXPIRED (5 days ago)"},
		{365, "Insurance EXPIRED (365 days ago)"},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			effect := Classify(daysFromNow(-tc.daysAgo), "Insurance", testNow)

			assert.Equal(t, EffectIssue, effect.Kind)
			assert.Equal(t, tc.message, effect.Message)
		})
	}
}

func TestClassifyWarningWindow(t *testing.T) {
	for days := 0; days <= 30; days++ {
		effect := Classify(daysFromNow(days), "Registration", testNow)

		assert.Equal(t, EffectWarning, effect.Kind, "day %d should warn", days)
		assert.Equal(t, fmt.Sprintf("Registration Expiring in %d days", days), effect.Message)
	}
}

func TestClassifyWarningBoundary(t *testing.T) {
	// Day 30 warns, day 31 does not.
	assert.Equal(t, EffectWarning, Classify(daysFromNow(30), "Visa", testNow).Kind)
	assert.Equal(t, EffectNone, Classify(daysFromNow(31), "Visa", testNow).Kind)
}

func TestClassifyCeilingRounding(t *testing.T) {
	// A fractional day rounds up: 30 days and one hour out is day 31.
	justPast := testNow.Add(30*24*time.Hour + time.Hour)
	assert.Equal(t, EffectNone, Classify(&justPast, "Visa", testNow).Kind)

	// Earlier the same day rounds to 0, still a warning rather than expired.
	earlierToday := testNow.Add(-2 * time.Hour)
	effect := Classify(&earlierToday, "Visa", testNow)
	assert.Equal(t, EffectWarning, effect.Kind)
	assert.Equal(t, "Visa Expiring in 0 days", effect.Message)

	// One hour past the 24h mark is a full day expired.
	yesterday := testNow.Add(-25 * time.Hour)
	effect = Classify(&yesterday, "Visa", testNow)
	assert.Equal(t, EffectIssue, effect.Kind)
	assert.Equal(t, "Visa EXPIRED (1 days ago)", effect.Message)
}

func TestClassifyFarFuture(t *testing.T) {
	effect := Classify(daysFromNow(90), "Insurance", testNow)

	assert.Equal(t, EffectNone, effect.Kind)
	assert.Empty(t, effect.Message)
}
