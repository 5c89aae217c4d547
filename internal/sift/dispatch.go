// Package sift drives rule evaluation against stored records and turns
// matches into remote mutations.
package sift

import (
	"context"
	"fmt"
	"strings"

	"github.com/mailsift/mailsift/internal/gmail"
	"github.com/mailsift/mailsift/internal/rules"
)

// destinationLabels maps move destinations to Gmail category labels. An
// unrecognized destination falls back to the upper-cased literal.
var destinationLabels = map[string]gmail.LabelID{
	"inbox":      gmail.LabelInbox,
	"forum":      "CATEGORY_FORUMS",
	"updates":    "CATEGORY_UPDATES",
	"promotions": "CATEGORY_PROMOTIONS",
}

// ActionResult records the outcome of one dispatched action.
type ActionResult struct {
	Action rules.Action
	OK     bool
	Detail string
}

// Dispatch executes each action against the remote message in declaration
// order. Actions are independent: a failed remote call is recorded and
// later actions still run. Dispatch never returns an error; an empty
// action list yields an empty result.
func Dispatch(ctx context.Context, client gmail.Client, id gmail.MessageID, actions []rules.Action) []ActionResult {
	results := make([]ActionResult, 0, len(actions))
	for _, action := range actions {
		detail, err := applyAction(ctx, client, id, action)
		if err != nil {
			results = append(results, ActionResult{
				Action: action,
				Detail: fmt.Sprintf("action %q on email %s: %v", action.Type, id, err),
			})
			continue
		}
		results = append(results, ActionResult{Action: action, OK: true, Detail: detail})
	}
	return results
}

func applyAction(ctx context.Context, client gmail.Client, id gmail.MessageID, action rules.Action) (string, error) {
	switch rules.CanonicalAction(action.Type) {
	case rules.MarkRead:
		err := client.Modify(ctx, id, gmail.ModifyOps{RemoveLabels: []gmail.LabelID{gmail.LabelUnread}})
		return fmt.Sprintf("email %s marked as read", id), err
	case rules.MarkUnread:
		err := client.Modify(ctx, id, gmail.ModifyOps{AddLabels: []gmail.LabelID{gmail.LabelUnread}})
		return fmt.Sprintf("email %s marked as unread", id), err
	case rules.Move:
		label := destinationLabel(action.Destination)
		err := client.Modify(ctx, id, gmail.ModifyOps{
			AddLabels:    []gmail.LabelID{label},
			RemoveLabels: []gmail.LabelID{gmail.LabelInbox},
		})
		return fmt.Sprintf("email %s moved to %s", id, label), err
	case rules.Star:
		err := client.Modify(ctx, id, gmail.ModifyOps{AddLabels: []gmail.LabelID{gmail.LabelStarred}})
		return fmt.Sprintf("email %s starred", id), err
	case rules.Unstar:
		err := client.Modify(ctx, id, gmail.ModifyOps{RemoveLabels: []gmail.LabelID{gmail.LabelStarred}})
		return fmt.Sprintf("email %s unstarred", id), err
	case rules.Archive:
		err := client.Modify(ctx, id, gmail.ModifyOps{RemoveLabels: []gmail.LabelID{gmail.LabelInbox}})
		return fmt.Sprintf("email %s archived", id), err
	case rules.Trash:
		err := client.Trash(ctx, id)
		return fmt.Sprintf("email %s trashed", id), err
	default:
		return "", fmt.Errorf("unknown action type")
	}
}

func destinationLabel(destination string) gmail.LabelID {
	dest := strings.ToLower(strings.TrimSpace(destination))
	if dest == "" {
		dest = "inbox"
	}
	if label, ok := destinationLabels[dest]; ok {
		return label
	}
	return gmail.LabelID(strings.ToUpper(dest))
}
