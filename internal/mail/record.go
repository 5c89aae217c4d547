package mail

import (
	netmail "net/mail"
	"strings"
	"time"
)

// Record is a synchronized email as persisted by the store. Records are
// immutable once stored; re-syncing the same ID leaves the first write in
// place.
type Record struct {
	ID         string
	Sender     string
	Recipient  string
	Subject    string
	Message    string
	ReceivedAt *time.Time
}

// ParseDate parses an RFC 5322 Date header value. Returns nil when the
// header is missing or unparsable; a record without a usable date still
// syncs, it just never matches date conditions.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := netmail.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &t
}
