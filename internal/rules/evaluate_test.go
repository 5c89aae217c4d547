package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var evalNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := evalNow.AddDate(0, 0, -n)
	return &t
}

func TestEvaluateText(t *testing.T) {
	tests := []struct {
		name string
		text string
		cond Condition
		want bool
	}{
		{"contains-case-insensitive", "Hello World", Condition{Predicate: Contains, Value: "hello"}, true},
		{"contains-miss", "Hello World", Condition{Predicate: Contains, Value: "goodbye"}, false},
		{"not-contains", "Hello World", Condition{Predicate: NotContains, Value: "goodbye"}, true},
		{"equals-case-insensitive", "ALERTS@example.com", Condition{Predicate: Equals, Value: "alerts@example.com"}, true},
		{"equals-substring-is-not-equal", "alerts@example.com", Condition{Predicate: Equals, Value: "alerts"}, false},
		{"not-equals", "alerts@example.com", Condition{Predicate: NotEquals, Value: "other@example.com"}, true},
		{"spaced-spelling", "Hello", Condition{Predicate: "does not contain", Value: "bye"}, true},
		{"unknown-predicate", "Hello", Condition{Predicate: "matches", Value: "Hello"}, false},
		{"date-predicate-on-text", "Hello", Condition{Predicate: LessThan, Value: "7"}, false},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(TextValue(tc.text), tc.cond, evalNow)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvaluateTime(t *testing.T) {
	tests := []struct {
		name string
		at   *time.Time
		cond Condition
		want bool
	}{
		{"less-than-days", daysAgo(5), Condition{Predicate: LessThan, Value: "7", Unit: UnitDays}, true},
		{"less-than-days-miss", daysAgo(9), Condition{Predicate: LessThan, Value: "7", Unit: UnitDays}, false},
		{"greater-than-days", daysAgo(9), Condition{Predicate: GreaterThan, Value: "7", Unit: UnitDays}, true},
		{"months-are-thirty-days", daysAgo(5), Condition{Predicate: LessThan, Value: "7", Unit: UnitMonths}, true},
		{"months-threshold-boundary", daysAgo(211), Condition{Predicate: GreaterThan, Value: "7", Unit: UnitMonths}, true},
		{"missing-unit-defaults-to-days", daysAgo(5), Condition{Predicate: LessThan, Value: "7"}, true},
		{"nil-time", nil, Condition{Predicate: LessThan, Value: "7", Unit: UnitDays}, false},
		{"non-integer-value", daysAgo(5), Condition{Predicate: LessThan, Value: "seven", Unit: UnitDays}, false},
		{"text-predicate-on-time", daysAgo(5), Condition{Predicate: Contains, Value: "2024"}, false},
		{"spaced-spelling", daysAgo(5), Condition{Predicate: "less than", Value: "7", Unit: UnitDays}, true},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(TimeValue(tc.at), tc.cond, evalNow)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestElapsedDaysFloors(t *testing.T) {
	received := evalNow.Add(-36 * time.Hour)
	assert.Equal(t, 1, elapsedDays(received, evalNow))

	// offset-bearing zones compare by instant, not wall clock
	inParis := received.In(time.FixedZone("CET", 3600))
	assert.Equal(t, 1, elapsedDays(inParis, evalNow))
}
