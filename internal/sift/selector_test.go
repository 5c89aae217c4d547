package sift

import (
	"testing"

	"github.com/mailsift/mailsift/internal/rules"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Selector
	}{
		{"digits-mean-count", "50", Selector{Count: 50}},
		{"padded-digits", " 10 ", Selector{Count: 10}},
		{"query-passes-through", "newer_than:7d", Selector{Query: "newer_than:7d"}},
		{"zero-is-a-query", "0", Selector{Query: "0"}},
		{"negative-is-a-query", "-5", Selector{Query: "-5"}},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSelector(tc.input)
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestNewerThan(t *testing.T) {
	if got := NewerThan(7, rules.UnitDays); got.Query != "newer_than:7d" {
		t.Fatalf("unexpected query %q", got.Query)
	}
	if got := NewerThan(2, rules.UnitMonths); got.Query != "newer_than:2m" {
		t.Fatalf("unexpected query %q", got.Query)
	}
}
