package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
// Claim atomically reserves a report and returns false if it was already
// claimed. Release drops the reservation so a failed report can be retried.
type DedupChecker interface {
	Claim(ctx context.Context, busID string, ts time.Time) (bool, error)
	Release(ctx context.Context, busID string, ts time.Time) error
}

type locationIngestService struct {
	tracking ports.TrackingService
	dedup    DedupChecker
	log      zerolog.Logger
}

// NewLocationIngestService returns the processor behind the batch report path.
func NewLocationIngestService(tracking ports.TrackingService, dedup DedupChecker, log zerolog.Logger) ports.LocationIngestService {
	return &locationIngestService{tracking: tracking, dedup: dedup, log: log}
}

// Process deduplicates and applies a single queued report.
func (s *locationIngestService) Process(ctx context.Context, in ports.LocationReportInput) error {
	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now().UTC()
	}

	claimed, err := s.dedup.Claim(ctx, in.BusID, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("bus_id", in.BusID).Msg("dedup claim failed, processing anyway")
	} else if !claimed {
		s.log.Debug().Str("bus_id", in.BusID).Time("timestamp", in.Timestamp).Msg("duplicate report skipped")
		return nil
	}

	if _, err := s.tracking.ReportLocation(ctx, in); err != nil {
		if claimed {
			if relErr := s.dedup.Release(ctx, in.BusID, in.Timestamp); relErr != nil {
				s.log.Warn().Err(relErr).Str("bus_id", in.BusID).Msg("failed to release dedup key")
			}
		}
		return fmt.Errorf("process report: %w", err)
	}
	return nil
}
