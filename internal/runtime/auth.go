package runtime

import (
	"context"
	"log/slog"
	"os"

	"github.com/mbrt/gmailctl/cmd/gmailctl/localcred"
	"google.golang.org/api/gmail/v1"

	gc "github.com/mailsift/mailsift/internal/gmail"
)

// Scope selects the Gmail permission level a binary requests. Sync only
// reads mail; apply mutates labels and trashes.
type Scope int

const (
	ScopeReadonly Scope = iota
	ScopeModify
)

// NewGmailClient authenticates against the credentials directory and
// returns a ready client. The OAuth flow and token refresh live entirely
// inside localcred; the returned client treats the session as opaque.
func NewGmailClient(ctx context.Context, cfgDir string, scope Scope) (gc.Client, error) {
	var svc *gmail.Service
	var err error
	switch scope {
	case ScopeReadonly:
		svc, err = (localcred.Provider{}).ServiceWithScopes(ctx, cfgDir, gmail.GmailReadonlyScope)
	case ScopeModify:
		svc, err = (localcred.Provider{}).ServiceWithScopes(ctx, cfgDir, gmail.GmailModifyScope)
	default:
		panic("unknown scope")
	}
	if err != nil {
		return nil, err
	}
	return NewGoogleAPIClient(svc), nil
}

// DefaultLogger returns the process-wide text logger.
func DefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
