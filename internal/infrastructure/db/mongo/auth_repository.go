package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// bootstrapLockID is the _id of the marker that closes the first-admin window.
const bootstrapLockID = "bootstrap_admin"

// markerLease is how long a bootstrap marker without its user is honoured.
const markerLease = 2 * defaultTimeout

type AuthRepository struct {
	coll  *mongo.Collection
	locks *mongo.Collection
	now   func() time.Time
}

var _ ports.AuthRepository = (*AuthRepository)(nil)

func NewAuthRepository(db *mongo.Database) *AuthRepository {
	return &AuthRepository{
		coll:  db.Collection(collUsers),
		locks: db.Collection(collSystemLocks),
		now:   time.Now,
	}
}

type mongoUser struct {
	ID           string `bson:"_id"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
	CreatedAt    int64  `bson:"created_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	id := u.ID
	if id == "" {
		id = uuid.NewString()
	}
	return mongoUser{
		ID:           id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt.Unix(),
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID,
		Username:     mu.Username,
		PasswordHash: mu.PasswordHash,
		Role:         domain.Role(mu.Role),
		CreatedAt:    unixToTime(mu.CreatedAt),
	}
}

func (r *AuthRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// CreateFirstAdmin inserts user only while the credential store is empty.
// The unique bootstrap marker lets exactly one concurrent caller through;
// every other caller gets domain.ErrBootstrapUsed.
func (r *AuthRepository) CreateFirstAdmin(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoUser(user)
	marker := bootstrapMarker{ID: bootstrapLockID, UserID: doc.ID, CreatedAt: r.now().UTC()}

	if err := r.claimMarker(ctx, marker); err != nil {
		return nil, err
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("count users: %w", err), r.releaseMarker(ctx, marker.UserID))
	}
	if n > 0 {
		return nil, domain.ErrBootstrapUsed
	}

	created, err := r.insert(ctx, doc)
	if err != nil {
		return nil, errors.Join(err, r.releaseMarker(ctx, marker.UserID))
	}
	return created, nil
}

// bootstrapMarker records which bootstrap attempt holds the first-admin window.
type bootstrapMarker struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// claimMarker inserts the bootstrap marker. A marker left behind by an
// attempt that never created its user is replaced once it is older than
// markerLease; a live holder finishes well within that.
func (r *AuthRepository) claimMarker(ctx context.Context, marker bootstrapMarker) error {
	_, err := r.locks.InsertOne(ctx, marker)
	if err == nil {
		return nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert bootstrap marker: %w", err)
	}

	var held bootstrapMarker
	if err := r.locks.FindOne(ctx, bson.M{"_id": bootstrapLockID}).Decode(&held); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Released between our insert and the lookup; the caller may retry.
			return domain.ErrBootstrapUsed
		}
		return fmt.Errorf("find bootstrap marker: %w", err)
	}
	if r.now().Sub(held.CreatedAt) < markerLease {
		return domain.ErrBootstrapUsed
	}
	if _, err := r.FindByID(ctx, held.UserID); err == nil {
		return domain.ErrBootstrapUsed
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	// Stale marker: remove exactly that one, then try once more.
	res, err := r.locks.DeleteOne(ctx, bson.M{"_id": bootstrapLockID, "user_id": held.UserID})
	if err != nil {
		return fmt.Errorf("clear stale bootstrap marker: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBootstrapUsed
	}
	if _, err := r.locks.InsertOne(ctx, marker); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrBootstrapUsed
		}
		return fmt.Errorf("insert bootstrap marker: %w", err)
	}
	return nil
}

// releaseMarker reopens the bootstrap window after a failed attempt. It runs
// on a fresh deadline so an expired request context cannot leave the marker
// behind.
func (r *AuthRepository) releaseMarker(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTimeout)
	defer cancel()

	if _, err := r.locks.DeleteOne(ctx, bson.M{"_id": bootstrapLockID, "user_id": userID}); err != nil {
		return fmt.Errorf("release bootstrap marker: %w", err)
	}
	return nil
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.insert(ctx, toMongoUser(user))
}

func (r *AuthRepository) insert(ctx context.Context, doc mongoUser) (*domain.User, error) {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AuthRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AuthRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *AuthRepository) EnsureIndexes(ctx context.Context) error {
	return createIndexes(ctx, r.coll, uniqueIndex("username"))
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
