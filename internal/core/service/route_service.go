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

type RouteService struct {
	repo  ports.RouteRepository
	trips ports.TripRepository
	log   zerolog.Logger
}

var _ ports.RouteService = (*RouteService)(nil)

func NewRouteService(repo ports.RouteRepository, trips ports.TripRepository, log zerolog.Logger) *RouteService {
	return &RouteService{repo: repo, trips: trips, log: log}
}

func validateRoute(in ports.RouteInput) error {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: code and name are required", domain.ErrValidation)
	}
	for _, st := range in.Stops {
		if err := domain.ValidateCoordinates(st.Lat, st.Lng); err != nil {
			return fmt.Errorf("stop %q: %w", st.Name, err)
		}
	}
	return nil
}

func (s *RouteService) Create(ctx context.Context, in ports.RouteInput) (*domain.Route, error) {
	if err := validateRoute(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	r := routeFromInput(uuid.NewString(), in)
	r.CreatedAt, r.UpdatedAt = now, now

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	s.log.Info().Str("route_id", r.ID).Str("code", r.Code).Msg("route created")
	return r, nil
}

// Get returns the route with its scheduled trips.
func (s *RouteService) Get(ctx context.Context, id string) (*ports.RouteDetail, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	trips, _, err := s.trips.List(ctx, ports.TripFilter{RouteID: id})
	if err != nil {
		return nil, fmt.Errorf("route trips: %w", err)
	}
	return &ports.RouteDetail{Route: r, Trips: trips}, nil
}

func (s *RouteService) List(ctx context.Context, page ports.Page) (*ports.ListResult[*domain.Route], error) {
	page.Page, page.Limit = normalizePage(page.Page, page.Limit)
	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return &ports.ListResult[*domain.Route]{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages(total, page.Limit),
	}, nil
}

func (s *RouteService) Update(ctx context.Context, id string, in ports.RouteInput) (*domain.Route, error) {
	if err := validateRoute(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r := routeFromInput(id, in)
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RouteService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func routeFromInput(id string, in ports.RouteInput) *domain.Route {
	stops := in.Stops
	if stops == nil {
		stops = []domain.Stop{}
	}
	return &domain.Route{
		ID:                   id,
		Code:                 strings.TrimSpace(in.Code),
		Name:                 in.Name,
		Origin:               in.Origin,
		Destination:          in.Destination,
		Stops:                stops,
		DistanceKm:           in.DistanceKm,
		EstimatedDurationMin: in.EstimatedDurationMin,
	}
}
