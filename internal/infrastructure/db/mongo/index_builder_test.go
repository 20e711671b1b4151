package mongo

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type flakyIndexer struct {
	failures atomic.Int32
	calls    atomic.Int32
}

func (f *flakyIndexer) EnsureIndexes(context.Context) error {
	f.calls.Add(1)
	if f.failures.Add(-1) >= 0 {
		return errors.New("server selection timeout")
	}
	return nil
}

func TestIndexBuilder_RetriesUntilCreated(t *testing.T) {
	idx := &flakyIndexer{}
	idx.failures.Store(3)
	b := NewIndexBuilder(idx)
	ctx := context.Background()

	if err := b.Ensure(ctx); err == nil {
		t.Fatalf("expected first attempt to fail")
	}
	if err := b.Check(ctx); !errors.Is(err, ErrIndexesPending) {
		t.Fatalf("expected ErrIndexesPending before indexes exist, got %v", err)
	}

	done := make(chan struct{})
	go func() {
		b.Retry(ctx, time.Millisecond, zerolog.Nop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Retry did not finish")
	}

	if err := b.Check(ctx); err != nil {
		t.Fatalf("expected indexes ready, got %v", err)
	}
	if got := idx.calls.Load(); got != 4 {
		t.Fatalf("expected 4 attempts, got %d", got)
	}
}

func TestIndexBuilder_RetryStopsOnCancel(t *testing.T) {
	idx := &flakyIndexer{}
	idx.failures.Store(1 << 30)
	b := NewIndexBuilder(idx)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Retry(ctx, time.Millisecond, zerolog.Nop())
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Retry ignored cancellation")
	}
	if err := b.Check(context.Background()); !errors.Is(err, ErrIndexesPending) {
		t.Fatalf("expected ErrIndexesPending, got %v", err)
	}
}
