package rules

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// daysPerMonth is the historical month approximation. Calendar-accurate
// months would change matching results for existing rulesets.
const daysPerMonth = 30

const hoursPerDay = 24

// FieldValue is the resolved operand for a condition: either text or a
// timestamp, depending on the field kind.
type FieldValue struct {
	Text   string
	Time   *time.Time
	IsTime bool
}

// TextValue wraps a text field operand.
func TextValue(s string) FieldValue {
	return FieldValue{Text: s}
}

// TimeValue wraps a timestamp operand. A nil time is a valid operand that
// no date predicate matches.
func TimeValue(t *time.Time) FieldValue {
	return FieldValue{Time: t, IsTime: true}
}

// Evaluate applies a single condition to a resolved field value. A
// condition that cannot be evaluated — unknown predicate, missing
// timestamp, non-integer threshold, predicate applied to the wrong field
// kind — is non-matching, never an error.
func Evaluate(v FieldValue, c Condition, now time.Time) bool {
	pred := canonPredicate(c.Predicate)
	if v.IsTime {
		return evalTime(v.Time, pred, c, now)
	}
	return evalText(v.Text, pred, c.Value)
}

// canonPredicate lower-cases and hyphenates so documents written with
// spaced spellings ("less than") keep working.
func canonPredicate(p Predicate) Predicate {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	return Predicate(strings.ReplaceAll(s, " ", "-"))
}

func evalText(s string, pred Predicate, operand string) bool {
	s = strings.ToLower(s)
	operand = strings.ToLower(operand)
	switch pred {
	case Contains:
		return strings.Contains(s, operand)
	case NotContains:
		return !strings.Contains(s, operand)
	case Equals:
		return s == operand
	case NotEquals:
		return s != operand
	default:
		return false
	}
}

func evalTime(t *time.Time, pred Predicate, c Condition, now time.Time) bool {
	if t == nil {
		return false
	}
	threshold, err := strconv.Atoi(strings.TrimSpace(c.Value))
	if err != nil {
		return false
	}
	if Unit(strings.ToLower(string(c.Unit))) == UnitMonths {
		threshold *= daysPerMonth
	}
	elapsed := elapsedDays(*t, now)
	switch pred {
	case LessThan:
		return elapsed < threshold
	case GreaterThan:
		return elapsed > threshold
	default:
		return false
	}
}

// elapsedDays counts floored whole days between receipt and now. Both
// instants carry their own offsets, so no explicit zone conversion is
// needed.
func elapsedDays(received, now time.Time) int {
	return int(math.Floor(now.Sub(received).Hours() / hoursPerDay))
}
