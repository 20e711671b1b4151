package ports

import (
	"context"
	"time"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

// LocationReportInput is a single position report. A zero Timestamp means "now".
type LocationReportInput struct {
	BusID     string
	Lat       float64
	Lng       float64
	Timestamp time.Time
	Source    string
}

// RouteLocationsQuery is the explicit filter configuration for route tracking.
type RouteLocationsQuery struct {
	RouteID      string
	Status       domain.BusStatus
	OperatorName string
	HasLocation  *bool
	Page         int
	Limit        int
}

// BusLocation is the tracking view of a bus.
type BusLocation struct {
	BusID           string
	Status          domain.BusStatus
	OperatorName    string
	CurrentLocation *domain.Location
	LastUpdated     time.Time
}

// RouteLocationsResult is a page of bus locations on a route.
type RouteLocationsResult struct {
	Items      []BusLocation
	Total      int64
	Page       int
	Limit      int
	TotalPages int
	Applied    RouteLocationsQuery
}

// TrackingService is the location update/query path.
type TrackingService interface {
	ReportLocation(ctx context.Context, in LocationReportInput) (*domain.Bus, error)
	GetBusLocation(ctx context.Context, busID string) (*BusLocation, error)
	ListRouteLocations(ctx context.Context, q RouteLocationsQuery) (*RouteLocationsResult, error)
	History(ctx context.Context, busID string, limit int) ([]*domain.LocationReport, error)
}

// LocationIngestService processes queued reports from the batch path.
type LocationIngestService interface {
	Process(ctx context.Context, in LocationReportInput) error
}
