package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/transitline/fleet-tracking/internal/api/metrics"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes location reports to a fixed set of workers using
// consistent hashing on the bus id, guaranteeing per-bus report ordering.
type Dispatcher struct {
	workers []chan ports.LocationReportInput
	service ports.LocationIngestService
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.LocationIngestService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.LocationReportInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LocationReportInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue sends a report to the worker responsible for its bus. It blocks
// while that worker's buffer is full and gives up when ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, report ports.LocationReportInput) error {
	idx := d.shardIndex(report.BusID)
	select {
	case d.workers[idx] <- report:
		metrics.QueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// EnqueueBatch enqueues reports in order, preserving per-bus ordering. It
// returns the number accepted before ctx was done.
func (d *Dispatcher) EnqueueBatch(ctx context.Context, reports []ports.LocationReportInput) (int, error) {
	for i, r := range reports {
		if err := d.Enqueue(ctx, r); err != nil {
			return i, err
		}
	}
	return len(reports), nil
}

// shardIndex maps a bus id deterministically to a worker index.
func (d *Dispatcher) shardIndex(busID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(busID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LocationReportInput) {
	defer d.wg.Done()
	workerID := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			return
		case report, ok := <-ch:
			if !ok {
				return
			}
			metrics.QueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

			start := time.Now()
			err := d.service.Process(ctx, report)
			if err != nil {
				metrics.ProcessingDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
				metrics.LocationErrorsTotal.WithLabelValues(metrics.LocationErrorReason(err)).Inc()
				d.log.Error().Err(err).
					Str("bus_id", report.BusID).
					Int("worker_id", id).
					Msg("location report processing failed")
				continue
			}
			metrics.ProcessingDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
			metrics.LocationReportsTotal.WithLabelValues(report.Source).Inc()
		}
	}
}
