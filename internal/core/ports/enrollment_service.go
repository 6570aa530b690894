package ports

import (
	"context"

	"github.com/coursehub/course-platform/internal/core/domain"
)

// EnrollmentService defines use-case operations for the enrollment ledger.
// It performs no authorization itself; gating who may view whose records is
// the transport layer's responsibility (domain.CanViewEnrollmentsOf).
type EnrollmentService interface {
	Enroll(ctx context.Context, courseID, actorEmail string) (*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Enrollment, error)
}
