// Package store persists synchronized email records.
package store

import (
	"context"

	"github.com/mailsift/mailsift/internal/mail"
)

// Store is the record persistence port. Implementations enforce uniqueness
// on Record.ID: UpsertIfAbsent succeeds without modification when the ID
// already exists (first write wins).
type Store interface {
	UpsertIfAbsent(ctx context.Context, rec mail.Record) error
	ListAll(ctx context.Context) ([]mail.Record, error)
}
