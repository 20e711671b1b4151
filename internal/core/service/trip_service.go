package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

const dateLayout = "2006-01-02"

type TripService struct {
	repo   ports.TripRepository
	routes ports.RouteRepository
	buses  ports.BusRepository
	log    zerolog.Logger
}

var _ ports.TripService = (*TripService)(nil)

func NewTripService(repo ports.TripRepository, routes ports.RouteRepository, buses ports.BusRepository, log zerolog.Logger) *TripService {
	return &TripService{repo: repo, routes: routes, buses: buses, log: log}
}

func (s *TripService) validate(ctx context.Context, in ports.TripInput) error {
	if strings.TrimSpace(in.TripID) == "" {
		return fmt.Errorf("%w: tripId is required", domain.ErrValidation)
	}
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if !in.ArrivalTime.After(in.DepartureTime) {
		return fmt.Errorf("%w: arrivalTime must be after departureTime", domain.ErrValidation)
	}
	if _, err := s.routes.FindByID(ctx, in.RouteID); err != nil {
		return err
	}
	if _, err := s.buses.FindByBusID(ctx, in.BusID); err != nil {
		return err
	}
	return nil
}

func (s *TripService) Create(ctx context.Context, in ports.TripInput) (*domain.Trip, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t := tripFromInput(uuid.NewString(), in)
	t.CreatedAt, t.UpdatedAt = now, now

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info().Str("trip_id", t.TripID).Str("bus_id", t.BusID).Msg("trip scheduled")
	return t, nil
}

func (s *TripService) Get(ctx context.Context, id string) (*domain.Trip, error) {
	return s.repo.FindByID(ctx, id)
}

// List orders trips by departure time.
func (s *TripService) List(ctx context.Context, filter ports.TripFilter) (*ports.ListResult[*domain.Trip], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return &ports.ListResult[*domain.Trip]{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *TripService) Update(ctx context.Context, id string, in ports.TripInput) (*domain.Trip, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	t := tripFromInput(id, in)
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TripService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func tripFromInput(id string, in ports.TripInput) *domain.Trip {
	return &domain.Trip{
		ID:            id,
		TripID:        strings.TrimSpace(in.TripID),
		RouteID:       in.RouteID,
		BusID:         in.BusID,
		DepartureTime: in.DepartureTime.UTC(),
		ArrivalTime:   in.ArrivalTime.UTC(),
		Date:          in.Date,
	}
}
