package ports

import (
	"context"

	"github.com/coursehub/course-platform/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts the user and returns the stored entity with its
	// assigned ID. Returns domain.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
}
