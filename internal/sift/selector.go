package sift

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mailsift/mailsift/internal/rules"
)

// Selector is the sync request shape: exactly one of a bounded count or a
// raw search query is active.
type Selector struct {
	Count int
	Query string
}

// ParseSelector keeps the historical CLI contract: an all-digit argument
// is a message count, anything else passes through as a search query.
func ParseSelector(s string) Selector {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return Selector{Count: n}
	}
	return Selector{Query: s}
}

// NewerThan builds the relative-time query form. Months use Gmail's own
// month token; the 30-day approximation applies only to rule thresholds,
// not to fetch queries.
func NewerThan(n int, unit rules.Unit) Selector {
	suffix := "d"
	if strings.EqualFold(string(unit), string(rules.UnitMonths)) {
		suffix = "m"
	}
	return Selector{Query: fmt.Sprintf("newer_than:%d%s", n, suffix)}
}
