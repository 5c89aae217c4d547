package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity classifies a validation finding. Matching and dispatch stay
// lenient at runtime; findings exist so an operator can catch typos before
// a ruleset silently matches nothing.
type Severity string

const (
	SeverityWarn Severity = "warn"
	SeverityFail Severity = "fail"
)

// Finding flags a ruleset element that a stricter parser would reject.
type Finding struct {
	Severity Severity
	Detail   string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Severity, f.Detail)
}

var knownDestinations = map[string]struct{}{
	"inbox": {}, "forum": {}, "updates": {}, "promotions": {},
}

// Validate inspects a parsed ruleset and returns findings in document
// order. An empty action list is a failure (the ruleset can never do
// anything); everything else is a warning.
func Validate(rs *Ruleset) []Finding {
	var findings []Finding
	warn := func(format string, args ...any) {
		findings = append(findings, Finding{SeverityWarn, fmt.Sprintf(format, args...)})
	}

	if p := strings.ToLower(strings.TrimSpace(string(rs.MatchPolicy))); p != "" && p != string(PolicyAll) && p != string(PolicyAny) {
		warn("unknown match policy %q, treated as %q", rs.MatchPolicy, PolicyAny)
	}
	if len(rs.Rules) == 0 {
		if policyOf(rs.MatchPolicy) == PolicyAny {
			warn("no conditions: policy %q matches no record", PolicyAny)
		} else {
			warn("no conditions: policy %q matches every record", PolicyAll)
		}
	}
	for i, cond := range rs.Rules {
		validateCondition(i, cond, warn)
	}

	if len(rs.Actions) == 0 {
		findings = append(findings, Finding{SeverityFail, "no actions: ruleset can never do anything"})
	}
	for i, act := range rs.Actions {
		validateAction(i, act, warn)
	}
	return findings
}

func validateCondition(i int, cond Condition, warn func(string, ...any)) {
	isDate := strings.Contains(strings.ToLower(string(cond.Field)), "received")
	pred := canonPredicate(cond.Predicate)
	datePred := pred == LessThan || pred == GreaterThan
	textPred := pred == Contains || pred == NotContains || pred == Equals || pred == NotEquals

	switch {
	case !isDate && !knownTextField(cond.Field):
		warn("condition %d: unknown field %q resolves to the empty string", i, cond.Field)
	case isDate && !datePred:
		warn("condition %d: predicate %q never matches a date field", i, cond.Predicate)
	case !isDate && !textPred:
		warn("condition %d: predicate %q never matches a text field", i, cond.Predicate)
	}
	if isDate {
		if _, err := strconv.Atoi(strings.TrimSpace(cond.Value)); err != nil {
			warn("condition %d: value %q is not an integer day count", i, cond.Value)
		}
		if u := strings.ToLower(string(cond.Unit)); u != "" && u != string(UnitDays) && u != string(UnitMonths) {
			warn("condition %d: unknown unit %q, days assumed", i, cond.Unit)
		}
	} else if cond.Unit != "" {
		warn("condition %d: unit %q is meaningful only on ReceivedAt", i, cond.Unit)
	}
}

func validateAction(i int, act Action, warn func(string, ...any)) {
	switch CanonicalAction(act.Type) {
	case MarkRead, MarkUnread, Star, Unstar, Archive, Trash:
		if act.Destination != "" {
			warn("action %d: destination %q is meaningful only on move", i, act.Destination)
		}
	case Move:
		dest := strings.ToLower(strings.TrimSpace(act.Destination))
		if dest == "" {
			warn("action %d: move without destination defaults to inbox", i)
		} else if _, ok := knownDestinations[dest]; !ok {
			warn("action %d: unknown destination %q falls back to label %q", i, act.Destination, strings.ToUpper(dest))
		}
	default:
		warn("action %d: unknown action type %q is recorded as a failure at dispatch", i, act.Type)
	}
}

func knownTextField(f Field) bool {
	switch strings.ToLower(strings.TrimSpace(string(f))) {
	case "from", "to", "subject", "message":
		return true
	}
	return false
}

// CanonicalAction normalizes an action spelling to the closed enum,
// accepting the older spaced spellings; unknown spellings are returned
// lower-cased as-is.
func CanonicalAction(t ActionType) ActionType {
	switch strings.ToLower(strings.TrimSpace(string(t))) {
	case "markread", "mark-read", "mark as read":
		return MarkRead
	case "markunread", "mark-unread", "mark as unread":
		return MarkUnread
	case "move", "move message":
		return Move
	case "star":
		return Star
	case "unstar":
		return Unstar
	case "archive":
		return Archive
	case "trash":
		return Trash
	}
	return ActionType(strings.ToLower(strings.TrimSpace(string(t))))
}
