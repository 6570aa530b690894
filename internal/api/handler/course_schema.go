package handler

import "time"

type courseRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type courseResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category,omitempty"`
	InstructorID   string    `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
