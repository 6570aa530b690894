package domain

import (
	"errors"
	"time"
)

var ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")

// Enrollment records that a student joined a course. The (student, course)
// pair is unique; the storage layer enforces this with a unique index.
type Enrollment struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
