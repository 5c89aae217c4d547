// Package rules models the user-authored ruleset: conditions over stored
// email records, a match policy combining them, and the actions taken on
// matching records.
package rules

// Field names the record attribute a condition reads. Values are compared
// case-insensitively when resolving a parsed document, so "from" and "From"
// are the same field.
type Field string

const (
	FieldFrom       Field = "From"
	FieldTo         Field = "To"
	FieldSubject    Field = "Subject"
	FieldReceivedAt Field = "ReceivedAt"
	FieldMessage    Field = "Message"
)

// Predicate is the comparison a condition applies. Text fields accept the
// four string predicates; ReceivedAt accepts the two elapsed-time ones.
type Predicate string

const (
	Contains    Predicate = "contains"
	NotContains Predicate = "does-not-contain"
	Equals      Predicate = "equals"
	NotEquals   Predicate = "does-not-equal"
	LessThan    Predicate = "less-than"
	GreaterThan Predicate = "greater-than"
)

// Unit scales a ReceivedAt threshold. Months are approximated as 30 days;
// existing rulesets depend on that arithmetic.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitMonths Unit = "months"
)

// Condition is a single field test. Unit is meaningful only for ReceivedAt
// conditions and Value holds the operand as written in the document.
type Condition struct {
	Field     Field     `json:"field"`
	Predicate Predicate `json:"predicate"`
	Value     string    `json:"value"`
	Unit      Unit      `json:"unit,omitempty"`
}

// ActionType enumerates the remote mutations a ruleset can request.
type ActionType string

const (
	MarkRead   ActionType = "markRead"
	MarkUnread ActionType = "markUnread"
	Move       ActionType = "move"
	Star       ActionType = "star"
	Unstar     ActionType = "unstar"
	Archive    ActionType = "archive"
	Trash      ActionType = "trash"
)

// Action is one requested mutation. Destination is meaningful only for
// move actions.
type Action struct {
	Type        ActionType `json:"type"`
	Destination string     `json:"destination,omitempty"`
}

// MatchPolicy is the boolean combinator applied across a ruleset's
// conditions: all = AND, any = OR.
type MatchPolicy string

const (
	PolicyAll MatchPolicy = "all"
	PolicyAny MatchPolicy = "any"
)

// Ruleset is the whole authored document. It is replaced, never merged,
// each time it is loaded.
type Ruleset struct {
	MatchPolicy MatchPolicy `json:"matchPolicy"`
	Rules       []Condition `json:"rules"`
	Actions     []Action    `json:"actions"`
}
