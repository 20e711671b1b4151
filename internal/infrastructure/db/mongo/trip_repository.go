package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

type TripRepository struct {
	coll *mongo.Collection
}

var _ ports.TripRepository = (*TripRepository)(nil)

func NewTripRepository(db *mongo.Database) *TripRepository {
	return &TripRepository{coll: db.Collection(collTrips)}
}

func (r *TripRepository) Create(ctx context.Context, t *domain.Trip) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: trip %s already exists", domain.ErrDuplicate, t.TripID)
		}
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

func (r *TripRepository) FindByID(ctx context.Context, id string) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Trip
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("find trip: %w", err)
	}
	return &t, nil
}

func (r *TripRepository) List(ctx context.Context, f ports.TripFilter) ([]*domain.Trip, int64, error) {
	return findPage[domain.Trip](ctx, r.coll, buildTripFilter(f), bson.D{{Key: "departure_time", Value: 1}}, f.Page, f.Limit)
}

func buildTripFilter(f ports.TripFilter) bson.M {
	filter := bson.M{}
	if f.RouteID != "" {
		filter["route_id"] = f.RouteID
	}
	if f.BusID != "" {
		filter["bus_id"] = f.BusID
	}
	if f.Date != "" {
		filter["date"] = f.Date
	}
	return filter
}

func (r *TripRepository) Replace(ctx context.Context, t *domain.Trip) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: trip %s already exists", domain.ErrDuplicate, t.TripID)
		}
		return fmt.Errorf("replace trip: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

func (r *TripRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, bson.M{"_id": id}, domain.ErrTripNotFound)
}

func (r *TripRepository) EnsureIndexes(ctx context.Context) error {
	return createIndexes(ctx, r.coll,
		uniqueIndex("trip_id"),
		mongo.IndexModel{Keys: bson.D{{Key: "route_id", Value: 1}, {Key: "departure_time", Value: 1}}},
	)
}
