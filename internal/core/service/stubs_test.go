package service

import (
	"context"
	"fmt"

	"github.com/coursehub/course-platform/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// add seeds a user directly, bypassing Create, and returns its assigned ID.
func (r *stubUserRepo) add(u domain.User) string {
	r.nextID++
	u.ID = fmt.Sprintf("u%d", r.nextID)
	r.byEmail[u.Email] = &u
	return u.ID
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("u%d", r.nextID)
	r.byEmail[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

type stubCourseRepo struct {
	byID   map[string]*domain.Course
	nextID int
}

func newStubCourseRepo() *stubCourseRepo {
	return &stubCourseRepo{byID: make(map[string]*domain.Course)}
}

func cloneCourse(c *domain.Course) *domain.Course {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCourseRepo) Create(_ context.Context, course *domain.Course) (*domain.Course, error) {
	copy := cloneCourse(course)
	r.nextID++
	copy.ID = fmt.Sprintf("c%d", r.nextID)
	r.byID[copy.ID] = cloneCourse(copy)
	return copy, nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	if c, ok := r.byID[id]; ok {
		return cloneCourse(c), nil
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) FindAll(_ context.Context) ([]*domain.Course, error) {
	courses := make([]*domain.Course, 0, len(r.byID))
	for _, c := range r.byID {
		courses = append(courses, cloneCourse(c))
	}
	return courses, nil
}

func (r *stubCourseRepo) FindByInstructor(_ context.Context, instructorID string) ([]*domain.Course, error) {
	var courses []*domain.Course
	for _, c := range r.byID {
		if c.InstructorID == instructorID {
			courses = append(courses, cloneCourse(c))
		}
	}
	return courses, nil
}

func (r *stubCourseRepo) Update(_ context.Context, course *domain.Course) error {
	if _, ok := r.byID[course.ID]; !ok {
		return domain.ErrCourseNotFound
	}
	r.byID[course.ID] = cloneCourse(course)
	return nil
}

func (r *stubCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubEnrollmentRepo struct {
	enrollments []*domain.Enrollment
	nextID      int
}

func newStubEnrollmentRepo() *stubEnrollmentRepo {
	return &stubEnrollmentRepo{}
}

func (r *stubEnrollmentRepo) Create(_ context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	// mirrors the unique (student_id, course_id) index
	for _, existing := range r.enrollments {
		if existing.StudentID == e.StudentID && existing.CourseID == e.CourseID {
			return nil, domain.ErrAlreadyEnrolled
		}
	}
	clone := *e
	r.nextID++
	clone.ID = fmt.Sprintf("e%d", r.nextID)
	r.enrollments = append(r.enrollments, &clone)
	copy := clone
	return &copy, nil
}

func (r *stubEnrollmentRepo) FindByStudent(_ context.Context, studentID string) ([]*domain.Enrollment, error) {
	var out []*domain.Enrollment
	for _, e := range r.enrollments {
		if e.StudentID == studentID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubEnrollmentRepo) ExistsByStudentAndCourse(_ context.Context, studentID, courseID string) (bool, error) {
	for _, e := range r.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubEnrollmentRepo) ExistsByCourse(_ context.Context, courseID string) (bool, error) {
	for _, e := range r.enrollments {
		if e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubEnrollmentRepo) countByPair(studentID, courseID string) int {
	n := 0
	for _, e := range r.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			n++
		}
	}
	return n
}
