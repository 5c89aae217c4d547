package sift

import (
	"strings"
	"testing"

	"github.com/mailsift/mailsift/internal/rules"
)

func TestApplyReportSummary(t *testing.T) {
	rep := ApplyReport{Entries: []ApplyEntry{
		{
			RecordID: "a",
			Results: []ActionResult{
				{Action: rules.Action{Type: rules.Star}, OK: true, Detail: "email a starred"},
				{Action: rules.Action{Type: rules.Trash}, Detail: "action \"trash\" on email a: boom"},
			},
		},
		{RecordID: "b", DryRun: true},
	}}

	summary := rep.Summary()
	lines := strings.Split(summary, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), summary)
	}
	if !strings.Contains(lines[0], "email a matches rules") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  ok:") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "  failed:") {
		t.Fatalf("unexpected third line %q", lines[2])
	}
	if !strings.Contains(lines[3], "dry-run") {
		t.Fatalf("unexpected fourth line %q", lines[3])
	}
}

func TestApplyReportNotice(t *testing.T) {
	rep := ApplyReport{Notice: "missing or invalid ruleset"}
	if rep.Summary() != "missing or invalid ruleset" {
		t.Fatalf("unexpected summary %q", rep.Summary())
	}
}

func TestSyncReportSummary(t *testing.T) {
	rep := SyncReport{Outcomes: []string{"email a stored", "error processing message b: boom"}}
	want := "email a stored\nerror processing message b: boom"
	if rep.Summary() != want {
		t.Fatalf("unexpected summary %q", rep.Summary())
	}
}
