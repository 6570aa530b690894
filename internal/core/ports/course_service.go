package ports

import (
	"context"

	"github.com/coursehub/course-platform/internal/core/domain"
)

// CourseInput carries the writable fields of a course. Update applies it
// wholesale: an empty Description or Category clears the stored value.
type CourseInput struct {
	Title       string
	Description string
	Category    string
}

// CourseService defines use-case operations for courses. Mutating
// operations take the authenticated actor's email and resolve the actor
// before any permission decision.
type CourseService interface {
	Create(ctx context.Context, input CourseInput, actorEmail string) (*domain.Course, error)
	Update(ctx context.Context, id string, input CourseInput, actorEmail string) (*domain.Course, error)
	Delete(ctx context.Context, id string, actorEmail string) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	GetAll(ctx context.Context) ([]*domain.Course, error)
	GetByInstructor(ctx context.Context, instructorID string) ([]*domain.Course, error)
}
