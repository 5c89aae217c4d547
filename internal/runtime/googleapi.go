// Package runtime wires the Gmail REST API and OAuth credentials into the
// narrow client interface the rest of the program consumes.
package runtime

import (
	"context"
	"strings"

	"google.golang.org/api/gmail/v1"

	gc "github.com/mailsift/mailsift/internal/gmail"
)

const gmailUser = "me"

type googleClient struct{ svc *gmail.Service }

// NewGoogleAPIClient adapts a *gmail.Service to the client interface.
func NewGoogleAPIClient(svc *gmail.Service) gc.Client { return &googleClient{svc} }

func (g *googleClient) List(ctx context.Context, q gc.Query, pageToken string, pageSize int) (gc.ListPage, error) {
	call := g.svc.Users.Messages.List(gmailUser).MaxResults(int64(pageSize))
	if q.Raw != "" {
		call = call.Q(q.Raw)
	}
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	res, err := call.Context(ctx).Do()
	if err != nil {
		return gc.ListPage{}, err
	}
	ids := make([]gc.MessageID, 0, len(res.Messages))
	for _, m := range res.Messages {
		ids = append(ids, gc.MessageID(m.Id))
	}
	return gc.ListPage{IDs: ids, NextPageToken: res.NextPageToken}, nil
}

func (g *googleClient) GetMessage(ctx context.Context, id gc.MessageID) (gc.RawMessage, error) {
	msg, err := g.svc.Users.Messages.Get(gmailUser, string(id)).Format("full").Context(ctx).Do()
	if err != nil {
		return gc.RawMessage{}, err
	}
	headers := map[string]string{}
	if msg.Payload != nil {
		for _, hd := range msg.Payload.Headers {
			headers[strings.ToLower(hd.Name)] = hd.Value
		}
	}
	return gc.RawMessage{ID: id, Headers: headers, Snippet: msg.Snippet}, nil
}

func (g *googleClient) Modify(ctx context.Context, id gc.MessageID, ops gc.ModifyOps) error {
	req := &gmail.ModifyMessageRequest{
		AddLabelIds:    toStrings(ops.AddLabels),
		RemoveLabelIds: toStrings(ops.RemoveLabels),
	}
	_, err := g.svc.Users.Messages.Modify(gmailUser, string(id), req).Context(ctx).Do()
	return err
}

func (g *googleClient) Trash(ctx context.Context, id gc.MessageID) error {
	_, err := g.svc.Users.Messages.Trash(gmailUser, string(id)).Context(ctx).Do()
	return err
}

func toStrings(labels []gc.LabelID) []string {
	if len(labels) == 0 {
		return nil
	}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, string(l))
	}
	return out
}
