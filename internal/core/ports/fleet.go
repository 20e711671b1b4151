package ports

import (
	"context"
	"time"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

// Page describes a slice of a list result.
type Page struct {
	Page  int
	Limit int
}

// RouteRepository persists routes.
type RouteRepository interface {
	Create(ctx context.Context, r *domain.Route) error
	FindByID(ctx context.Context, id string) (*domain.Route, error)
	List(ctx context.Context, page Page) ([]*domain.Route, int64, error)
	Replace(ctx context.Context, r *domain.Route) error
	Delete(ctx context.Context, id string) error
}

// TripFilter narrows trip listings.
type TripFilter struct {
	RouteID string
	BusID   string
	Date    string // YYYY-MM-DD
	Page    int
	Limit   int // 0 = no limit
}

// TripRepository persists trips.
type TripRepository interface {
	Create(ctx context.Context, t *domain.Trip) error
	FindByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context, filter TripFilter) ([]*domain.Trip, int64, error)
	Replace(ctx context.Context, t *domain.Trip) error
	Delete(ctx context.Context, id string) error
}

// ListResult is a generic page of records.
type ListResult[T any] struct {
	Items      []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BusInput carries bus create fields.
type BusInput struct {
	BusID          string
	RegistrationNo string
	OperatorName   string
	Capacity       int
	RouteID        string
	Status         domain.BusStatus
}

// BusService is bus record CRUD.
type BusService interface {
	Create(ctx context.Context, in BusInput) (*domain.Bus, error)
	Get(ctx context.Context, busID string) (*domain.Bus, error)
	List(ctx context.Context, filter BusFilter) (*ListResult[*domain.Bus], error)
	Update(ctx context.Context, busID string, upd BusUpdate) (*domain.Bus, error)
	Delete(ctx context.Context, busID string) error
}

// RouteInput carries route create/replace fields.
type RouteInput struct {
	Code                 string
	Name                 string
	Origin               string
	Destination          string
	Stops                []domain.Stop
	DistanceKm           float64
	EstimatedDurationMin int
}

// RouteDetail is a route together with its scheduled trips.
type RouteDetail struct {
	Route *domain.Route
	Trips []*domain.Trip
}

// RouteService is route CRUD.
type RouteService interface {
	Create(ctx context.Context, in RouteInput) (*domain.Route, error)
	Get(ctx context.Context, id string) (*RouteDetail, error)
	List(ctx context.Context, page Page) (*ListResult[*domain.Route], error)
	Update(ctx context.Context, id string, in RouteInput) (*domain.Route, error)
	Delete(ctx context.Context, id string) error
}

// TripInput carries trip create/replace fields.
type TripInput struct {
	TripID        string
	RouteID       string
	BusID         string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Date          string
}

// TripService is trip CRUD.
type TripService interface {
	Create(ctx context.Context, in TripInput) (*domain.Trip, error)
	Get(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context, filter TripFilter) (*ListResult[*domain.Trip], error)
	Update(ctx context.Context, id string, in TripInput) (*domain.Trip, error)
	Delete(ctx context.Context, id string) error
}
