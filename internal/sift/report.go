package sift

import (
	"fmt"
	"strings"
)

// SyncReport lists per-record outcomes in listing order. An empty remote
// listing is a terminal outcome, not an error.
type SyncReport struct {
	Outcomes []string
}

// Summary renders the report one outcome per line.
func (r SyncReport) Summary() string {
	return strings.Join(r.Outcomes, "\n")
}

// ApplyEntry is the result of one matching record: its summary plus the
// full per-action outcome sequence.
type ApplyEntry struct {
	RecordID string
	DryRun   bool
	Results  []ActionResult
}

// ApplyReport accumulates matching records in record-iteration order.
// Notice is set instead when the run ended before any record was
// processed (no usable ruleset, empty store).
type ApplyReport struct {
	Notice  string
	Entries []ApplyEntry
}

// Summary renders the report the way the original surfaced it: a line per
// matching record followed by its action outcomes. Non-matching records
// are silent.
func (r ApplyReport) Summary() string {
	if r.Notice != "" {
		return r.Notice
	}
	var b strings.Builder
	for _, entry := range r.Entries {
		if entry.DryRun {
			fmt.Fprintf(&b, "email %s matches rules (dry-run, no actions executed)\n", entry.RecordID)
			continue
		}
		fmt.Fprintf(&b, "email %s matches rules, executing actions\n", entry.RecordID)
		for _, res := range entry.Results {
			if res.OK {
				fmt.Fprintf(&b, "  ok: %s\n", res.Detail)
			} else {
				fmt.Fprintf(&b, "  failed: %s\n", res.Detail)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
