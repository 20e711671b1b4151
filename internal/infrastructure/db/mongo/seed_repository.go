package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/transitline/fleet-tracking/internal/core/ports"
)

const seedTimeout = time.Minute

// SeedRepository wipes and bulk-loads the fleet collections.
type SeedRepository struct {
	db *mongo.Database
}

var _ ports.SeedRepository = (*SeedRepository)(nil)

func NewSeedRepository(db *mongo.Database) *SeedRepository {
	return &SeedRepository{db: db}
}

// Reset empties every collection and reopens the first-admin window.
func (r *SeedRepository) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	for _, name := range []string{collUsers, collBuses, collRoutes, collTrips, collHistory} {
		if _, err := r.db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	if _, err := r.db.Collection(collSystemLocks).DeleteOne(ctx, bson.M{"_id": bootstrapLockID}); err != nil {
		return fmt.Errorf("clear bootstrap marker: %w", err)
	}
	return nil
}

func (r *SeedRepository) Load(ctx context.Context, data ports.SeedData) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	users := make([]any, 0, len(data.Users))
	for _, u := range data.Users {
		users = append(users, toMongoUser(u))
	}
	routes := make([]any, 0, len(data.Routes))
	for _, rt := range data.Routes {
		routes = append(routes, rt)
	}
	buses := make([]any, 0, len(data.Buses))
	for _, b := range data.Buses {
		buses = append(buses, b)
	}
	trips := make([]any, 0, len(data.Trips))
	for _, t := range data.Trips {
		trips = append(trips, t)
	}

	for _, batch := range []struct {
		coll string
		docs []any
	}{
		{collRoutes, routes},
		{collBuses, buses},
		{collTrips, trips},
		{collUsers, users},
	} {
		if len(batch.docs) == 0 {
			continue
		}
		if _, err := r.db.Collection(batch.coll).InsertMany(ctx, batch.docs); err != nil {
			return fmt.Errorf("insert %s: %w", batch.coll, err)
		}
	}
	return nil
}
