package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/transitline/fleet-tracking/internal/core/ports"
)

type recordingIngest struct {
	mu     sync.Mutex
	byBus  map[string][]float64
	total  int
	doneCh chan struct{}
	want   int
}

func newRecordingIngest(want int) *recordingIngest {
	return &recordingIngest{byBus: make(map[string][]float64), doneCh: make(chan struct{}), want: want}
}

func (r *recordingIngest) Process(_ context.Context, in ports.LocationReportInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byBus[in.BusID] = append(r.byBus[in.BusID], in.Lat)
	r.total++
	if r.total == r.want {
		close(r.doneCh)
	}
	return nil
}

func TestDispatcher_PreservesPerBusOrder(t *testing.T) {
	const perBus = 50
	buses := []string{"NB-1001", "NB-1002", "SG-2001", "SG-2002"}

	ingest := newRecordingIngest(perBus * len(buses))
	d := NewDispatcher(3, ingest, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	var reports []ports.LocationReportInput
	for i := 0; i < perBus; i++ {
		for _, b := range buses {
			reports = append(reports, ports.LocationReportInput{BusID: b, Lat: float64(i), Source: "batch"})
		}
	}
	n, err := d.EnqueueBatch(ctx, reports)
	if err != nil || n != len(reports) {
		t.Fatalf("EnqueueBatch = (%d, %v)", n, err)
	}

	select {
	case <-ingest.doneCh:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reports")
	}

	ingest.mu.Lock()
	defer ingest.mu.Unlock()
	for _, b := range buses {
		got := ingest.byBus[b]
		if len(got) != perBus {
			t.Fatalf("bus %s: expected %d reports, got %d", b, perBus, len(got))
		}
		for i, lat := range got {
			if lat != float64(i) {
				t.Fatalf("bus %s: report %d out of order (lat %v)", b, i, lat)
			}
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, newRecordingIngest(0), zerolog.Nop())
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("bus-%d", i)
		idx := d.shardIndex(id)
		if idx < 0 || idx >= 4 {
			t.Fatalf("shard index %d out of range", idx)
		}
		if d.shardIndex(id) != idx {
			t.Fatalf("shard index for %s is not deterministic", id)
		}
	}
}

func TestDispatcher_EnqueueHonoursContext(t *testing.T) {
	d := NewDispatcher(1, newRecordingIngest(0), zerolog.Nop())
	// Workers are not started, so the buffer fills up.
	ctx := context.Background()
	for i := 0; i < channelBuffer; i++ {
		if err := d.Enqueue(ctx, ports.LocationReportInput{BusID: "B1"}); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := d.Enqueue(ctx, ports.LocationReportInput{BusID: "B1"}); err == nil {
		t.Fatalf("expected enqueue on a full shard to fail once ctx is done")
	}
}

func TestDispatcher_WaitReturnsAfterCancel(t *testing.T) {
	d := NewDispatcher(2, newRecordingIngest(0), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		d.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("workers did not stop")
	}
}
