package ports

import (
	"context"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

// SeedData is a full fleet snapshot loaded by the seeder.
type SeedData struct {
	Users  []*domain.User
	Routes []*domain.Route
	Buses  []*domain.Bus
	Trips  []*domain.Trip
}

// SeedRepository wipes and reloads every collection.
type SeedRepository interface {
	Reset(ctx context.Context) error
	Load(ctx context.Context, data SeedData) error
}

// SeedService populates a development database.
type SeedService interface {
	Seed(ctx context.Context) error
}
