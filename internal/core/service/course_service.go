package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/course-platform/internal/api/metrics"
	"github.com/coursehub/course-platform/internal/core/domain"
	"github.com/coursehub/course-platform/internal/core/ports"
)

// CourseService implements course CRUD with ownership enforcement.
type CourseService struct {
	courses     ports.CourseRepository
	users       ports.UserRepository
	enrollments ports.EnrollmentRepository
	log         zerolog.Logger
}

func NewCourseService(
	courses ports.CourseRepository,
	users ports.UserRepository,
	enrollments ports.EnrollmentRepository,
	log zerolog.Logger,
) *CourseService {
	return &CourseService{courses: courses, users: users, enrollments: enrollments, log: log}
}

// Create persists a new course owned by the acting instructor.
func (s *CourseService) Create(ctx context.Context, input ports.CourseInput, actorEmail string) (*domain.Course, error) {
	actor, err := s.users.FindByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	if !domain.CanCreateCourse(*actor) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	course := &domain.Course{
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		InstructorID:   actor.ID,
		InstructorName: actor.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create course")
		return nil, err
	}

	metrics.CoursesCreatedTotal.Inc()
	s.log.Info().Str("course_id", created.ID).Str("instructor_id", actor.ID).Msg("course created")
	return created, nil
}

// Update overwrites title, description, and category wholesale. Existence is
// checked before permission so a missing course yields NotFound, never
// Forbidden.
func (s *CourseService) Update(ctx context.Context, id string, input ports.CourseInput, actorEmail string) (*domain.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	actor, err := s.users.FindByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	if !domain.CanManageCourse(*actor, *course) {
		return nil, domain.ErrForbidden
	}

	course.Title = input.Title
	course.Description = input.Description
	course.Category = input.Category
	course.UpdatedAt = time.Now().UTC()

	if err := s.courses.Update(ctx, course); err != nil {
		s.log.Error().Err(err).Str("course_id", id).Msg("failed to update course")
		return nil, err
	}

	s.log.Info().Str("course_id", id).Str("actor_id", actor.ID).Msg("course updated")
	return course, nil
}

// Delete removes a course. Deletion is refused while enrollments still
// reference the course, keeping the ledger free of orphaned records.
func (s *CourseService) Delete(ctx context.Context, id string, actorEmail string) error {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return err
	}

	actor, err := s.users.FindByEmail(ctx, actorEmail)
	if err != nil {
		return err
	}

	if !domain.CanManageCourse(*actor, *course) {
		return domain.ErrForbidden
	}

	enrolled, err := s.enrollments.ExistsByCourse(ctx, id)
	if err != nil {
		return err
	}
	if enrolled {
		return domain.ErrCourseHasEnrollments
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("course_id", id).Msg("failed to delete course")
		return err
	}

	metrics.CoursesDeletedTotal.Inc()
	s.log.Info().Str("course_id", id).Str("actor_id", actor.ID).Msg("course deleted")
	return nil
}

func (s *CourseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.FindByID(ctx, id)
}

func (s *CourseService) GetAll(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.FindAll(ctx)
}

// GetByInstructor lists the courses owned by the given instructor. The
// instructor must exist.
func (s *CourseService) GetByInstructor(ctx context.Context, instructorID string) ([]*domain.Course, error) {
	if _, err := s.users.FindByID(ctx, instructorID); err != nil {
		return nil, err
	}
	return s.courses.FindByInstructor(ctx, instructorID)
}
