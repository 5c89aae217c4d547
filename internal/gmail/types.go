package gmail

// MessageID is the provider's stable unique identifier for a message.
type MessageID string

// LabelID is a Gmail label identifier. System labels use fixed well-known
// IDs.
type LabelID string

const (
	LabelInbox   LabelID = "INBOX"
	LabelUnread  LabelID = "UNREAD"
	LabelStarred LabelID = "STARRED"
)

// Query is a Gmail search query string, already formed (e.g.
// `newer_than:7d`). Empty means unfiltered.
type Query struct {
	Raw string
}

// ListPage is one page of message identifiers.
type ListPage struct {
	IDs           []MessageID
	NextPageToken string
}

// RawMessage is the full-detail form of a remote message before it is
// normalized into a stored record. Header keys are lower-cased ("from",
// "to", "subject", "date"); missing headers are simply absent.
type RawMessage struct {
	ID      MessageID
	Headers map[string]string
	Snippet string
}

// ModifyOps describes a label mutation on a single message.
type ModifyOps struct {
	AddLabels    []LabelID
	RemoveLabels []LabelID
}
