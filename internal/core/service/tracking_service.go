package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

const (
	sourceAPI           = "api"
	defaultHistoryLimit = 50
)

// TrackingService reads and writes bus locations.
type TrackingService struct {
	buses   ports.BusRepository
	history ports.LocationHistoryRepository
	log     zerolog.Logger
	now     func() time.Time
}

var _ ports.TrackingService = (*TrackingService)(nil)

func NewTrackingService(buses ports.BusRepository, history ports.LocationHistoryRepository, log zerolog.Logger) *TrackingService {
	return &TrackingService{buses: buses, history: history, log: log, now: time.Now}
}

// ReportLocation replaces the bus's current location. Concurrent reports for
// the same bus are last-writer-wins.
func (s *TrackingService) ReportLocation(ctx context.Context, in ports.LocationReportInput) (*domain.Bus, error) {
	if in.BusID == "" {
		return nil, fmt.Errorf("%w: bus id is required", domain.ErrValidation)
	}
	if err := domain.ValidateCoordinates(in.Lat, in.Lng); err != nil {
		return nil, err
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}
	loc := domain.Location{Lat: in.Lat, Lng: in.Lng, Timestamp: ts.UTC()}

	bus, err := s.buses.UpdateLocation(ctx, in.BusID, loc)
	if err != nil {
		return nil, fmt.Errorf("report location: %w", err)
	}

	source := in.Source
	if source == "" {
		source = sourceAPI
	}
	report := &domain.LocationReport{
		BusID:      in.BusID,
		Lat:        loc.Lat,
		Lng:        loc.Lng,
		Timestamp:  loc.Timestamp,
		Source:     source,
		ReceivedAt: s.now().UTC(),
	}
	// The audit trail is best effort.
	if err := s.history.Insert(ctx, report); err != nil {
		s.log.Warn().Err(err).Str("bus_id", in.BusID).Msg("failed to record location history")
	}

	s.log.Debug().
		Str("bus_id", in.BusID).
		Float64("lat", loc.Lat).
		Float64("lng", loc.Lng).
		Str("source", source).
		Msg("location updated")

	return bus, nil
}

func (s *TrackingService) GetBusLocation(ctx context.Context, busID string) (*ports.BusLocation, error) {
	bus, err := s.buses.FindByBusID(ctx, busID)
	if err != nil {
		return nil, err
	}
	loc := toBusLocation(bus)
	return &loc, nil
}

func (s *TrackingService) ListRouteLocations(ctx context.Context, q ports.RouteLocationsQuery) (*ports.RouteLocationsResult, error) {
	if q.RouteID == "" {
		return nil, fmt.Errorf("%w: route id is required", domain.ErrValidation)
	}
	if q.Status != "" && !q.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown bus status %q", domain.ErrValidation, q.Status)
	}
	q.Page, q.Limit = normalizePage(q.Page, q.Limit)

	buses, total, err := s.buses.List(ctx, ports.BusFilter{
		RouteID:      q.RouteID,
		Status:       q.Status,
		OperatorName: q.OperatorName,
		HasLocation:  q.HasLocation,
		Page:         q.Page,
		Limit:        q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list route locations: %w", err)
	}

	items := make([]ports.BusLocation, 0, len(buses))
	for _, b := range buses {
		items = append(items, toBusLocation(b))
	}

	return &ports.RouteLocationsResult{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages(total, q.Limit),
		Applied:    q,
	}, nil
}

// History returns the most recent accepted reports for a bus, newest first.
func (s *TrackingService) History(ctx context.Context, busID string, limit int) ([]*domain.LocationReport, error) {
	if _, err := s.buses.FindByBusID(ctx, busID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return s.history.ListByBus(ctx, busID, limit)
}

func toBusLocation(b *domain.Bus) ports.BusLocation {
	return ports.BusLocation{
		BusID:           b.BusID,
		Status:          b.Status,
		OperatorName:    b.OperatorName,
		CurrentLocation: b.CurrentLocation,
		LastUpdated:     b.UpdatedAt,
	}
}
