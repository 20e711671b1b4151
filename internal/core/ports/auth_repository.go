package ports

import (
	"context"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

// AuthRepository persists credentials.
type AuthRepository interface {
	// Count returns the number of stored credentials.
	Count(ctx context.Context) (int64, error)
	// CreateFirstAdmin inserts user only if no credential exists yet. Exactly one
	// concurrent caller can win; losers get domain.ErrBootstrapUsed.
	CreateFirstAdmin(ctx context.Context, user *domain.User) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
