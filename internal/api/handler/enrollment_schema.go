package handler

import "time"

type enrollRequest struct {
	CourseID string `json:"course_id" validate:"required"`
}

type enrollmentResponse struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
