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

type RouteRepository struct {
	coll *mongo.Collection
}

var _ ports.RouteRepository = (*RouteRepository)(nil)

func NewRouteRepository(db *mongo.Database) *RouteRepository {
	return &RouteRepository{coll: db.Collection(collRoutes)}
}

func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, route); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: route code %s already exists", domain.ErrDuplicate, route.Code)
		}
		return fmt.Errorf("insert route: %w", err)
	}
	return nil
}

func (r *RouteRepository) FindByID(ctx context.Context, id string) (*domain.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var route domain.Route
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&route); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, fmt.Errorf("find route: %w", err)
	}
	return &route, nil
}

func (r *RouteRepository) List(ctx context.Context, page ports.Page) ([]*domain.Route, int64, error) {
	return findPage[domain.Route](ctx, r.coll, bson.M{}, bson.D{{Key: "code", Value: 1}}, page.Page, page.Limit)
}

func (r *RouteRepository) Replace(ctx context.Context, route *domain.Route) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": route.ID}, route)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: route code %s already exists", domain.ErrDuplicate, route.Code)
		}
		return fmt.Errorf("replace route: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRouteNotFound
	}
	return nil
}

func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, bson.M{"_id": id}, domain.ErrRouteNotFound)
}

func (r *RouteRepository) EnsureIndexes(ctx context.Context) error {
	return createIndexes(ctx, r.coll, uniqueIndex("code"))
}
