package gmail

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingClient struct {
	lists  int
	gets   int
	getErr error
}

func (c *countingClient) List(ctx context.Context, q Query, pageToken string, pageSize int) (ListPage, error) {
	_ = ctx
	_ = q
	_ = pageToken
	_ = pageSize
	c.lists++
	return ListPage{}, nil
}

func (c *countingClient) GetMessage(ctx context.Context, id MessageID) (RawMessage, error) {
	c.gets++
	if c.getErr != nil {
		return RawMessage{}, c.getErr
	}
	select {
	case <-ctx.Done():
		return RawMessage{}, ctx.Err()
	default:
		return RawMessage{ID: id}, nil
	}
}

func (c *countingClient) Modify(ctx context.Context, id MessageID, ops ModifyOps) error {
	_ = ctx
	_ = id
	_ = ops
	return nil
}

func (c *countingClient) Trash(ctx context.Context, id MessageID) error {
	_ = ctx
	_ = id
	return nil
}

type failLimiter struct{ err error }

func (f failLimiter) Wait(ctx context.Context) error {
	_ = ctx
	return f.err
}

func TestPacedWaitsBeforeCalling(t *testing.T) {
	inner := &countingClient{}
	paced := Paced{Inner: inner, Limiter: failLimiter{err: errors.New("quota")}}

	if _, err := paced.List(context.Background(), Query{}, "", 10); err == nil {
		t.Fatal("expected limiter error")
	}
	if inner.lists != 0 {
		t.Fatalf("inner client should not be called when the limiter fails, got %d calls", inner.lists)
	}
}

func TestPacedPassesThrough(t *testing.T) {
	inner := &countingClient{}
	paced := Paced{Inner: inner, Timeout: time.Second}

	raw, err := paced.GetMessage(context.Background(), "msg-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if raw.ID != "msg-1" || inner.gets != 1 {
		t.Fatalf("unexpected result %+v (%d calls)", raw, inner.gets)
	}
}

func TestPacedPropagatesRemoteErrors(t *testing.T) {
	inner := &countingClient{getErr: errors.New("not found")}
	paced := Paced{Inner: inner}

	if _, err := paced.GetMessage(context.Background(), "msg-1"); err == nil {
		t.Fatal("expected remote error")
	}
}
