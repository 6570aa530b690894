package ports

import (
	"context"

	"github.com/coursehub/course-platform/internal/core/domain"
)

// AuthResult is returned by Register and Login: a signed token plus the
// denormalized profile fields the client needs without a second round trip.
type AuthResult struct {
	Token   string
	Email   string
	Name    string
	Role    string
	Message string
}

// AuthService implements registration, login, and user lookups.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
