package gmail

import "context"

// Client is the narrow Gmail surface required by mailsift: list message
// identifiers a page at a time, fetch one message in full, mutate labels,
// and trash. Trash is a distinct provider operation, not a label change.
type Client interface {
	List(ctx context.Context, q Query, pageToken string, pageSize int) (ListPage, error)
	GetMessage(ctx context.Context, id MessageID) (RawMessage, error)
	Modify(ctx context.Context, id MessageID, ops ModifyOps) error
	Trash(ctx context.Context, id MessageID) error
}
