package rate

import (
	"context"
	"testing"
	"time"
)

func TestPacerFirstCallIsImmediate(t *testing.T) {
	p := NewPacer(1)
	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("first wait should not block, took %v", elapsed)
	}
}

func TestPacerSpacesCalls(t *testing.T) {
	p := NewPacer(20) // 50ms interval
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := p.Wait(context.Background()); err != nil {
			t.Fatalf("wait %d failed: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Fatalf("three calls at 20rps should take >=100ms, took %v", elapsed)
	}
}

func TestPacerHonorsCancellation(t *testing.T) {
	p := NewPacer(1)
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestPacerNonPositiveRPS(t *testing.T) {
	p := NewPacer(0)
	if p.interval != time.Second {
		t.Fatalf("expected 1s interval, got %v", p.interval)
	}
}
