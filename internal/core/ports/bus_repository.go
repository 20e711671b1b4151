package ports

import (
	"context"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

// BusFilter is the enumerated set of list/query predicates for buses. Zero
// values mean "no filter".
type BusFilter struct {
	RouteID      string
	Status       domain.BusStatus
	OperatorName string // case-insensitive substring
	HasLocation  *bool  // nil = any, true = reported, false = never reported
	Page         int    // 1-based
	Limit        int
}

// BusUpdate lists the mutable bus fields. Nil fields are left unchanged.
type BusUpdate struct {
	RegistrationNo *string
	OperatorName   *string
	Capacity       *int
	RouteID        *string
	Status         *domain.BusStatus
}

// BusRepository is the fleet location store plus bus record persistence.
type BusRepository interface {
	Create(ctx context.Context, bus *domain.Bus) error
	FindByBusID(ctx context.Context, busID string) (*domain.Bus, error)
	List(ctx context.Context, filter BusFilter) ([]*domain.Bus, int64, error)
	Update(ctx context.Context, busID string, upd BusUpdate) (*domain.Bus, error)
	// UpdateLocation replaces current_location wholesale. Returns
	// domain.ErrBusNotFound without writing when the bus does not exist.
	UpdateLocation(ctx context.Context, busID string, loc domain.Location) (*domain.Bus, error)
	Delete(ctx context.Context, busID string) error
}

// LocationHistoryRepository keeps the audit trail of accepted reports.
type LocationHistoryRepository interface {
	Insert(ctx context.Context, report *domain.LocationReport) error
	ListByBus(ctx context.Context, busID string, limit int) ([]*domain.LocationReport, error)
}
