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

type BusService struct {
	repo   ports.BusRepository
	routes ports.RouteRepository
	log    zerolog.Logger
}

var _ ports.BusService = (*BusService)(nil)

func NewBusService(repo ports.BusRepository, routes ports.RouteRepository, log zerolog.Logger) *BusService {
	return &BusService{repo: repo, routes: routes, log: log}
}

func (s *BusService) Create(ctx context.Context, in ports.BusInput) (*domain.Bus, error) {
	in.BusID = strings.TrimSpace(in.BusID)
	if in.BusID == "" {
		return nil, fmt.Errorf("%w: busId is required", domain.ErrValidation)
	}
	if in.Status == "" {
		in.Status = domain.BusIdle
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown bus status %q", domain.ErrValidation, in.Status)
	}
	if _, err := s.routes.FindByID(ctx, in.RouteID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	bus := &domain.Bus{
		ID:             uuid.NewString(),
		BusID:          in.BusID,
		RegistrationNo: in.RegistrationNo,
		OperatorName:   in.OperatorName,
		Capacity:       in.Capacity,
		RouteID:        in.RouteID,
		Status:         in.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, bus); err != nil {
		return nil, err
	}

	s.log.Info().Str("bus_id", bus.BusID).Str("route_id", bus.RouteID).Msg("bus created")
	return bus, nil
}

func (s *BusService) Get(ctx context.Context, busID string) (*domain.Bus, error) {
	return s.repo.FindByBusID(ctx, busID)
}

func (s *BusService) List(ctx context.Context, filter ports.BusFilter) (*ports.ListResult[*domain.Bus], error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown bus status %q", domain.ErrValidation, filter.Status)
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list buses: %w", err)
	}
	return &ports.ListResult[*domain.Bus]{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *BusService) Update(ctx context.Context, busID string, upd ports.BusUpdate) (*domain.Bus, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown bus status %q", domain.ErrValidation, *upd.Status)
	}
	if upd.RouteID != nil {
		if _, err := s.routes.FindByID(ctx, *upd.RouteID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, busID, upd)
}

func (s *BusService) Delete(ctx context.Context, busID string) error {
	if err := s.repo.Delete(ctx, busID); err != nil {
		return err
	}
	s.log.Info().Str("bus_id", busID).Msg("bus deleted")
	return nil
}
