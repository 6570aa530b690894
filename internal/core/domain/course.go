package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")
var ErrCourseHasEnrollments = errors.New("course has active enrollments")

// Course is owned by exactly one instructor; ownership never transfers.
type Course struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category,omitempty"`
	InstructorID   string    `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
