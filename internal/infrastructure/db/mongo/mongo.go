package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	indexTimeout   = 30 * time.Second
)

// Collection names.
const (
	collUsers       = "users"
	collSystemLocks = "system_locks"
	collBuses       = "buses"
	collRoutes      = "routes"
	collTrips       = "trips"
	collHistory     = "location_history"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	client, db, err := Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(pingCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, db, nil
}

// Open creates a client without waiting for the server. The driver connects
// lazily, so a client opened while MongoDB is down starts working once it is
// reachable.
func Open(cfg Config) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.timeout())

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// EnsureIndexes creates the indexes of every given repository.
func EnsureIndexes(ctx context.Context, repos ...indexer) error {
	var errs []error
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ErrIndexesPending is reported by IndexBuilder.Check until every index exists.
var ErrIndexesPending = errors.New("mongo indexes not created yet")

// IndexBuilder creates repository indexes and remembers whether they exist.
// Uniqueness of usernames and bus ids depends on them, so readiness should
// fail until Check passes.
type IndexBuilder struct {
	repos []indexer
	ready atomic.Bool
}

func NewIndexBuilder(repos ...indexer) *IndexBuilder {
	return &IndexBuilder{repos: repos}
}

// Ensure makes one attempt at creating every index.
func (b *IndexBuilder) Ensure(ctx context.Context) error {
	if err := EnsureIndexes(ctx, b.repos...); err != nil {
		return err
	}
	b.ready.Store(true)
	return nil
}

// Retry calls Ensure every interval until it succeeds or ctx is done.
func (b *IndexBuilder) Retry(ctx context.Context, interval time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !b.ready.Load() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.Ensure(ctx); err != nil {
				log.Warn().Err(err).Msg("index creation failed, retrying")
				continue
			}
			log.Info().Msg("mongo indexes created")
		}
	}
}

// Check returns ErrIndexesPending until the indexes have been created.
func (b *IndexBuilder) Check(context.Context) error {
	if !b.ready.Load() {
		return ErrIndexesPending
	}
	return nil
}

func createIndexes(ctx context.Context, coll *mongo.Collection, models ...mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes on %s: %w", coll.Name(), err)
	}
	return nil
}

func uniqueIndex(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

// findPage runs a counted, sorted, paginated query. limit <= 0 returns every match.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, page, limit int) ([]*T, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", coll.Name(), err)
	}

	opts := options.Find().SetSort(sort)
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * limit)).SetLimit(int64(limit))
	}

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	items := make([]*T, 0)
	for cur.Next(ctx) {
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", coll.Name(), err)
		}
		items = append(items, &item)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate %s: %w", coll.Name(), err)
	}
	return items, total, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, filter bson.M, notFound error) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return notFound
	}
	return nil
}
