package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

type BusRepository struct {
	coll *mongo.Collection
}

var _ ports.BusRepository = (*BusRepository)(nil)

func NewBusRepository(db *mongo.Database) *BusRepository {
	return &BusRepository{coll: db.Collection(collBuses)}
}

func (r *BusRepository) Create(ctx context.Context, bus *domain.Bus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, bus); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: bus %s already exists", domain.ErrDuplicate, bus.BusID)
		}
		return fmt.Errorf("insert bus: %w", err)
	}
	return nil
}

func (r *BusRepository) FindByBusID(ctx context.Context, busID string) (*domain.Bus, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Bus
	if err := r.coll.FindOne(ctx, bson.M{"bus_id": busID}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBusNotFound
		}
		return nil, fmt.Errorf("find bus: %w", err)
	}
	return &b, nil
}

func (r *BusRepository) List(ctx context.Context, f ports.BusFilter) ([]*domain.Bus, int64, error) {
	return findPage[domain.Bus](ctx, r.coll, buildBusFilter(f), bson.D{{Key: "bus_id", Value: 1}}, f.Page, f.Limit)
}

// buildBusFilter composes the list predicates; every set field narrows the result.
func buildBusFilter(f ports.BusFilter) bson.M {
	filter := bson.M{}
	if f.RouteID != "" {
		filter["route_id"] = f.RouteID
	}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}
	if f.OperatorName != "" {
		filter["operator_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.OperatorName), Options: "i"}
	}
	if f.HasLocation != nil {
		if *f.HasLocation {
			filter["current_location"] = bson.M{"$exists": true, "$ne": nil}
		} else {
			filter["$or"] = bson.A{
				bson.M{"current_location": bson.M{"$exists": false}},
				bson.M{"current_location": nil},
			}
		}
	}
	return filter
}

func (r *BusRepository) Update(ctx context.Context, busID string, upd ports.BusUpdate) (*domain.Bus, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.RegistrationNo != nil {
		set["registration_no"] = *upd.RegistrationNo
	}
	if upd.OperatorName != nil {
		set["operator_name"] = *upd.OperatorName
	}
	if upd.Capacity != nil {
		set["capacity"] = *upd.Capacity
	}
	if upd.RouteID != nil {
		set["route_id"] = *upd.RouteID
	}
	if upd.Status != nil {
		set["status"] = string(*upd.Status)
	}
	return r.findOneAndSet(ctx, busID, set)
}

// UpdateLocation replaces current_location in a single atomic write and
// returns the updated document.
func (r *BusRepository) UpdateLocation(ctx context.Context, busID string, loc domain.Location) (*domain.Bus, error) {
	return r.findOneAndSet(ctx, busID, bson.M{
		"current_location": loc,
		"updated_at":       time.Now().UTC(),
	})
}

func (r *BusRepository) findOneAndSet(ctx context.Context, busID string, set bson.M) (*domain.Bus, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b domain.Bus
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"bus_id": busID}, bson.M{"$set": set}, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBusNotFound
		}
		return nil, fmt.Errorf("update bus: %w", err)
	}
	return &b, nil
}

func (r *BusRepository) Delete(ctx context.Context, busID string) error {
	return deleteByID(ctx, r.coll, bson.M{"bus_id": busID}, domain.ErrBusNotFound)
}

func (r *BusRepository) EnsureIndexes(ctx context.Context) error {
	return createIndexes(ctx, r.coll,
		uniqueIndex("bus_id"),
		mongo.IndexModel{Keys: bson.D{{Key: "route_id", Value: 1}, {Key: "status", Value: 1}}},
	)
}
