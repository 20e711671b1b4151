package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// LocationHistoryRepository is the append-only audit of accepted location reports.
type LocationHistoryRepository struct {
	coll *mongo.Collection
}

var _ ports.LocationHistoryRepository = (*LocationHistoryRepository)(nil)

func NewLocationHistoryRepository(db *mongo.Database) *LocationHistoryRepository {
	return &LocationHistoryRepository{coll: db.Collection(collHistory)}
}

func (r *LocationHistoryRepository) Insert(ctx context.Context, report *domain.LocationReport) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("insert location report: %w", err)
	}
	return nil
}

// ListByBus returns up to limit reports for busID, newest first.
func (r *LocationHistoryRepository) ListByBus(ctx context.Context, busID string, limit int) ([]*domain.LocationReport, error) {
	sort := bson.D{{Key: "timestamp", Value: -1}, {Key: "received_at", Value: -1}}
	items, _, err := findPage[domain.LocationReport](ctx, r.coll, bson.M{"bus_id": busID}, sort, 1, limit)
	return items, err
}

func (r *LocationHistoryRepository) EnsureIndexes(ctx context.Context) error {
	return createIndexes(ctx, r.coll, mongo.IndexModel{
		Keys: bson.D{{Key: "bus_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
}
