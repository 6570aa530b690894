package handler

import (
	"github.com/coursehub/course-platform/internal/core/domain"
	"github.com/coursehub/course-platform/internal/core/ports"
)

func toCourseInput(req courseRequest) ports.CourseInput {
	return ports.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
}

func toCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		Category:       c.Category,
		InstructorID:   c.InstructorID,
		InstructorName: c.InstructorName,
		CreatedAt:      c.CreatedAt.UTC(),
		UpdatedAt:      c.UpdatedAt.UTC(),
	}
}

func toCourseListResponse(courses []*domain.Course) []courseResponse {
	out := make([]courseResponse, len(courses))
	for i, c := range courses {
		out[i] = toCourseResponse(c)
	}
	return out
}

func toEnrollmentResponse(e *domain.Enrollment) enrollmentResponse {
	return enrollmentResponse{
		ID:         e.ID,
		StudentID:  e.StudentID,
		CourseID:   e.CourseID,
		EnrolledAt: e.EnrolledAt.UTC(),
	}
}

func toEnrollmentListResponse(enrollments []*domain.Enrollment) []enrollmentResponse {
	out := make([]enrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		out[i] = toEnrollmentResponse(e)
	}
	return out
}
