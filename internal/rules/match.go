package rules

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mailsift/mailsift/internal/mail"
)

// Matcher tests records against a ruleset. The zero value is not usable;
// construct with NewMatcher.
type Matcher struct {
	Logger *slog.Logger
	Clock  func() time.Time
}

// NewMatcher returns a matcher with a real clock. A nil logger discards
// the per-condition diagnostics.
func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Matcher{Logger: logger, Clock: time.Now}
}

// Matches reports whether the record satisfies the ruleset under its match
// policy. Conditions are evaluated independently in declaration order and
// the full result vector is logged at debug level. With no conditions,
// policy all matches every record and policy any matches none.
func (m *Matcher) Matches(rec mail.Record, rs *Ruleset) bool {
	results := make([]bool, 0, len(rs.Rules))
	for _, cond := range rs.Rules {
		results = append(results, Evaluate(resolveField(rec, cond.Field), cond, m.Clock()))
	}
	m.Logger.Debug("evaluated conditions",
		slog.String("record", rec.ID),
		slog.String("results", fmt.Sprint(results)),
	)
	if policyOf(rs.MatchPolicy) == PolicyAny {
		return anyOf(results)
	}
	return allOf(results)
}

// resolveField maps a condition's field name to the record attribute it
// reads. Resolution is case-insensitive and an unrecognized name falls
// back to the empty string, so a bad field makes a condition non-matching
// rather than fatal.
func resolveField(rec mail.Record, f Field) FieldValue {
	name := strings.ToLower(strings.TrimSpace(string(f)))
	switch {
	case name == "from":
		return TextValue(rec.Sender)
	case name == "to":
		return TextValue(rec.Recipient)
	case name == "subject":
		return TextValue(rec.Subject)
	case name == "message":
		return TextValue(rec.Message)
	case strings.Contains(name, "received"):
		return TimeValue(rec.ReceivedAt)
	default:
		return TextValue("")
	}
}

// policyOf selects the combinator: a missing policy defaults to all, and
// any other non-"all" spelling combines with OR. In particular a typo'd
// policy over zero conditions matches nothing, not everything.
func policyOf(p MatchPolicy) MatchPolicy {
	s := strings.TrimSpace(string(p))
	if s == "" || strings.EqualFold(s, string(PolicyAll)) {
		return PolicyAll
	}
	return PolicyAny
}

func allOf(results []bool) bool {
	for _, r := range results {
		if !r {
			return false
		}
	}
	return true
}

func anyOf(results []bool) bool {
	for _, r := range results {
		if r {
			return true
		}
	}
	return false
}
