package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/course-platform/internal/api/metrics"
	"github.com/coursehub/course-platform/internal/core/domain"
	"github.com/coursehub/course-platform/internal/core/ports"
)

// EnrollmentService implements the enrollment ledger. No role restriction
// applies to enrolling: any authenticated user may enroll in a course.
type EnrollmentService struct {
	enrollments ports.EnrollmentRepository
	courses     ports.CourseRepository
	users       ports.UserRepository
	log         zerolog.Logger
}

func NewEnrollmentService(
	enrollments ports.EnrollmentRepository,
	courses ports.CourseRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, courses: courses, users: users, log: log}
}

// Enroll records the acting user as enrolled in the course. The existence
// check is a fast pre-check; the repository's unique index on
// (student_id, course_id) is the authoritative guard against a concurrent
// duplicate.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID, actorEmail string) (*domain.Enrollment, error) {
	student, err := s.users.FindByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	exists, err := s.enrollments.ExistsByStudentAndCourse(ctx, student.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		metrics.EnrollmentConflictsTotal.Inc()
		return nil, domain.ErrAlreadyEnrolled
	}

	enrollment := &domain.Enrollment{
		StudentID:  student.ID,
		CourseID:   course.ID,
		EnrolledAt: time.Now().UTC(),
	}

	created, err := s.enrollments.Create(ctx, enrollment)
	if err != nil {
		if err == domain.ErrAlreadyEnrolled {
			// lost the race to a concurrent request for the same pair
			metrics.EnrollmentConflictsTotal.Inc()
			return nil, err
		}
		s.log.Error().Err(err).Str("course_id", courseID).Msg("failed to create enrollment")
		return nil, err
	}

	metrics.EnrollmentsCreatedTotal.Inc()
	s.log.Info().
		Str("enrollment_id", created.ID).
		Str("student_id", student.ID).
		Str("course_id", course.ID).
		Msg("student enrolled")

	return created, nil
}

// ListByUser returns the enrollments of the user with the given ID, in no
// guaranteed order.
func (s *EnrollmentService) ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrollments.FindByStudent(ctx, user.ID)
}

// ListByEmail resolves the user by email and returns their enrollments.
func (s *EnrollmentService) ListByEmail(ctx context.Context, email string) ([]*domain.Enrollment, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.enrollments.FindByStudent(ctx, user.ID)
}
