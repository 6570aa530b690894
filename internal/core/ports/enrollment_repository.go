package ports

import (
	"context"

	"github.com/coursehub/course-platform/internal/core/domain"
)

// EnrollmentRepository defines persistence operations for enrollments.
// The unique (student_id, course_id) index underneath is the authoritative
// duplicate guard; ExistsByStudentAndCourse is a fast pre-check only.
type EnrollmentRepository interface {
	// Create inserts the enrollment and returns it with its assigned ID.
	// Returns domain.ErrAlreadyEnrolled when the pair already exists.
	Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error)
	FindByStudent(ctx context.Context, studentID string) ([]*domain.Enrollment, error)
	ExistsByStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error)
	ExistsByCourse(ctx context.Context, courseID string) (bool, error)
}
