package gmail

import (
	"context"
	"time"

	"github.com/mailsift/mailsift/internal/rate"
)

// Paced wraps a Client so every outbound call first waits on a limiter and
// then runs under a per-call timeout. A timed-out call fails like any other
// remote error; it never aborts the surrounding run.
type Paced struct {
	Inner   Client
	Limiter rate.Limiter
	Timeout time.Duration
}

func (p Paced) call(ctx context.Context, fn func(context.Context) error) error {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return err
		}
	}
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	return fn(ctx)
}

func (p Paced) List(ctx context.Context, q Query, pageToken string, pageSize int) (ListPage, error) {
	var page ListPage
	err := p.call(ctx, func(ctx context.Context) error {
		var callErr error
		page, callErr = p.Inner.List(ctx, q, pageToken, pageSize)
		return callErr
	})
	return page, err
}

func (p Paced) GetMessage(ctx context.Context, id MessageID) (RawMessage, error) {
	var raw RawMessage
	err := p.call(ctx, func(ctx context.Context) error {
		var callErr error
		raw, callErr = p.Inner.GetMessage(ctx, id)
		return callErr
	})
	return raw, err
}

func (p Paced) Modify(ctx context.Context, id MessageID, ops ModifyOps) error {
	return p.call(ctx, func(ctx context.Context) error {
		return p.Inner.Modify(ctx, id, ops)
	})
}

func (p Paced) Trash(ctx context.Context, id MessageID) error {
	return p.call(ctx, func(ctx context.Context) error {
		return p.Inner.Trash(ctx, id)
	})
}

var _ Client = Paced{}
