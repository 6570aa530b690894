package ports

import (
	"context"

	"github.com/coursehub/course-platform/internal/core/domain"
)

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	// Create inserts the course and returns it with its assigned ID.
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindAll(ctx context.Context) ([]*domain.Course, error)
	FindByInstructor(ctx context.Context, instructorID string) ([]*domain.Course, error)
	// Update overwrites the mutable fields (title, description, category)
	// of the stored course.
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
}
