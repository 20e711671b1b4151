// Package simulator feeds random movement for on-trip buses into the ingest
// dispatcher. It is meant for demos and local development.
package simulator

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

const (
	Source = "simulator"

	// Colombo Fort, used when a bus has never reported.
	originLat = 6.9271
	originLng = 79.8612

	maxStepDeg = 0.002
)

// Enqueuer accepts reports for asynchronous processing.
type Enqueuer interface {
	Enqueue(ctx context.Context, report ports.LocationReportInput) error
}

type Simulator struct {
	buses    ports.BusRepository
	queue    Enqueuer
	interval time.Duration
	rng      *rand.Rand
	now      func() time.Time
	log      zerolog.Logger
}

func New(buses ports.BusRepository, queue Enqueuer, interval time.Duration, log zerolog.Logger) *Simulator {
	return &Simulator{
		buses:    buses,
		queue:    queue,
		interval: interval,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		now:      time.Now,
		log:      log,
	}
}

// Run ticks until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("location simulator started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("location simulator stopped")
			return
		case <-ticker.C:
			n, err := s.Tick(ctx)
			if err != nil {
				s.log.Warn().Err(err).Msg("simulator tick failed")
				continue
			}
			s.log.Debug().Int("buses", n).Msg("simulated movement")
		}
	}
}

// Tick enqueues one movement step for every on-trip bus and returns how many
// reports were enqueued.
func (s *Simulator) Tick(ctx context.Context) (int, error) {
	buses, _, err := s.buses.List(ctx, ports.BusFilter{Status: domain.BusOnTrip})
	if err != nil {
		return 0, err
	}

	now := s.now().UTC()
	for i, b := range buses {
		lat, lng := s.step(b.CurrentLocation)
		err := s.queue.Enqueue(ctx, ports.LocationReportInput{
			BusID:     b.BusID,
			Lat:       lat,
			Lng:       lng,
			Timestamp: now,
			Source:    Source,
		})
		if err != nil {
			return i, err
		}
	}
	return len(buses), nil
}

func (s *Simulator) step(from *domain.Location) (float64, float64) {
	lat, lng := originLat, originLng
	if from != nil {
		lat, lng = from.Lat, from.Lng
	}
	lat += (s.rng.Float64()*2 - 1) * maxStepDeg
	lng += (s.rng.Float64()*2 - 1) * maxStepDeg
	return clamp(lat, -90, 90), clamp(lng, -180, 180)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
