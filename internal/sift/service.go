package sift

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mailsift/mailsift/internal/gmail"
	"github.com/mailsift/mailsift/internal/mail"
	"github.com/mailsift/mailsift/internal/rules"
	"github.com/mailsift/mailsift/internal/store"
)

// maxPageSize is the Gmail API's per-page cap on message listing.
const maxPageSize = 500

// RulesetSource loads the authored ruleset. Absent and malformed are
// reported via rules.ErrNoRuleset and rules.ErrBadRuleset.
type RulesetSource interface {
	Load() (*rules.Ruleset, error)
}

// Service is the sync/apply orchestrator. Remote calls and store access go
// through the injected collaborators; everything else is synchronous.
type Service struct {
	Client  gmail.Client
	Store   store.Store
	// Rules may be nil on a sync-only service; Apply then reports a
	// missing ruleset instead of running.
	Rules   RulesetSource
	Matcher *rules.Matcher
	Logger  *slog.Logger
	Clock   func() time.Time

	PageSize int
	DryRun   bool
}

// NewService constructs a service with sane defaults.
func NewService(client gmail.Client, st store.Store, src RulesetSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		Client:   client,
		Store:    st,
		Rules:    src,
		Matcher:  rules.NewMatcher(logger),
		Logger:   logger,
		Clock:    time.Now,
		PageSize: maxPageSize,
	}
}

// Sync lists remote messages per the selector, fetches each in full,
// normalizes it into a record, and persists it with first-write-wins
// semantics. One bad message never aborts the batch: its failure becomes
// an outcome line and the loop continues.
func (s *Service) Sync(ctx context.Context, sel Selector) (SyncReport, error) {
	ids, err := s.listIDs(ctx, sel)
	if err != nil {
		return SyncReport{}, fmt.Errorf("list messages: %w", err)
	}
	if len(ids) == 0 {
		s.Logger.InfoContext(ctx, "no messages found",
			slog.Int("count", sel.Count), slog.String("query", sel.Query))
		return SyncReport{Outcomes: []string{"no messages found"}}, nil
	}
	outcomes := make([]string, 0, len(ids))
	for _, id := range ids {
		outcomes = append(outcomes, s.syncOne(ctx, id))
	}
	s.Logger.InfoContext(ctx, "sync finished", slog.Int("messages", len(ids)))
	return SyncReport{Outcomes: outcomes}, nil
}

// listIDs pages through the listing. Count selectors stop as soon as the
// requested number is gathered; query selectors drain every page.
func (s *Service) listIDs(ctx context.Context, sel Selector) ([]gmail.MessageID, error) {
	pageSize := s.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if sel.Count > 0 && sel.Count < pageSize {
		pageSize = sel.Count
	}
	query := gmail.Query{Raw: sel.Query}

	var all []gmail.MessageID
	token := ""
	for {
		page, err := s.Client.List(ctx, query, token, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page.IDs...)
		if page.NextPageToken == "" {
			break
		}
		if sel.Count > 0 && len(all) >= sel.Count {
			break
		}
		token = page.NextPageToken
	}
	if sel.Count > 0 && len(all) > sel.Count {
		all = all[:sel.Count]
	}
	return all, nil
}

func (s *Service) syncOne(ctx context.Context, id gmail.MessageID) string {
	raw, err := s.Client.GetMessage(ctx, id)
	if err != nil {
		s.Logger.Error("fetch message", slog.String("id", string(id)), slog.Any("error", err))
		return fmt.Sprintf("error processing message %s: %v", id, err)
	}
	rec := normalizeRecord(raw)
	if err := s.Store.UpsertIfAbsent(ctx, rec); err != nil {
		s.Logger.Error("store message", slog.String("id", string(id)), slog.Any("error", err))
		return fmt.Sprintf("error storing message %s: %v", id, err)
	}
	return fmt.Sprintf("email %s stored", rec.ID)
}

// normalizeRecord maps raw remote detail onto the stored record shape.
// Missing headers default to the empty string; an unparsable date becomes
// a nil timestamp rather than a failed record.
func normalizeRecord(raw gmail.RawMessage) mail.Record {
	return mail.Record{
		ID:         string(raw.ID),
		Sender:     raw.Headers["from"],
		Recipient:  raw.Headers["to"],
		Subject:    raw.Headers["subject"],
		Message:    raw.Snippet,
		ReceivedAt: mail.ParseDate(raw.Headers["date"]),
	}
}

// Apply loads the ruleset, tests every stored record against it, and
// dispatches the ruleset's actions for each match. It fails fast — with a
// report, not an error — when there is no usable ruleset or no records.
func (s *Service) Apply(ctx context.Context) (ApplyReport, error) {
	var rs *rules.Ruleset
	err := fmt.Errorf("%w: no ruleset source configured", rules.ErrNoRuleset)
	if s.Rules != nil {
		rs, err = s.Rules.Load()
	}
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrNoRuleset):
			s.Logger.Error("ruleset absent", slog.Any("error", err))
		case errors.Is(err, rules.ErrBadRuleset):
			s.Logger.Error("ruleset malformed", slog.Any("error", err))
		default:
			s.Logger.Error("load ruleset", slog.Any("error", err))
		}
		return ApplyReport{Notice: "missing or invalid ruleset"}, nil
	}

	records, err := s.Store.ListAll(ctx)
	if err != nil {
		return ApplyReport{}, fmt.Errorf("list records: %w", err)
	}
	if len(records) == 0 {
		s.Logger.InfoContext(ctx, "no emails to process")
		return ApplyReport{Notice: "no emails to process"}, nil
	}

	matcher := s.Matcher
	if matcher == nil {
		matcher = rules.NewMatcher(s.Logger)
	}
	if s.Clock != nil {
		matcher.Clock = s.Clock
	}

	var rep ApplyReport
	for _, rec := range records {
		if !matcher.Matches(rec, rs) {
			continue
		}
		entry := ApplyEntry{RecordID: rec.ID}
		if s.DryRun {
			entry.DryRun = true
			s.Logger.InfoContext(ctx, "dry-run match",
				slog.String("record", rec.ID), slog.Int("actions", len(rs.Actions)))
			rep.Entries = append(rep.Entries, entry)
			continue
		}
		entry.Results = Dispatch(ctx, s.Client, gmail.MessageID(rec.ID), rs.Actions)
		rep.Entries = append(rep.Entries, entry)
	}
	s.Logger.InfoContext(ctx, "apply finished",
		slog.Int("records", len(records)), slog.Int("matches", len(rep.Entries)))
	return rep, nil
}
