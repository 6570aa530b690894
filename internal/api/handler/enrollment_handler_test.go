package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/course-platform/internal/core/domain"
)

type stubEnrollmentService struct {
	enrollFn     func(ctx context.Context, courseID, actorEmail string) (*domain.Enrollment, error)
	listByUserFn func(ctx context.Context, userID string) ([]*domain.Enrollment, error)
	listByEmail  func(ctx context.Context, email string) ([]*domain.Enrollment, error)
}

func (s *stubEnrollmentService) Enroll(ctx context.Context, courseID, actorEmail string) (*domain.Enrollment, error) {
	return s.enrollFn(ctx, courseID, actorEmail)
}

func (s *stubEnrollmentService) ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubEnrollmentService) ListByEmail(ctx context.Context, email string) ([]*domain.Enrollment, error) {
	return s.listByEmail(ctx, email)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, email, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("email", email)
	c.Set("role", role)
	return c
}

func TestEnrollmentHandler_Enroll_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		enrollFn: func(ctx context.Context, courseID, actorEmail string) (*domain.Enrollment, error) {
			if courseID != "c1" || actorEmail != "sam@example.com" {
				t.Fatalf("unexpected args: %s %s", courseID, actorEmail)
			}
			return &domain.Enrollment{ID: "e1", StudentID: "u1", CourseID: courseID, EnrolledAt: time.Now()}, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/enroll", strings.NewReader(`{"course_id":"c1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "sam@example.com", "student")

	if err := handler.Enroll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "e1" || resp["course_id"] != "c1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestEnrollmentHandler_Enroll_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		enrollFn: func(ctx context.Context, courseID, actorEmail string) (*domain.Enrollment, error) {
			return nil, domain.ErrAlreadyEnrolled
		},
	}
	handler := NewEnrollmentHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/enroll", strings.NewReader(`{"course_id":"c1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "sam@example.com", "student")

	err := handler.Enroll(c)
	if !errors.Is(err, domain.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
}

func TestEnrollmentHandler_Enroll_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		enrollFn: func(ctx context.Context, courseID, actorEmail string) (*domain.Enrollment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/enroll", strings.NewReader(`{"course_id":"c1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Enroll(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestEnrollmentHandler_ListByUser_Self(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		listByUserFn: func(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return []*domain.Enrollment{{ID: "e1", StudentID: "u1", CourseID: "c1"}}, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/enrollments/u1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "sam@example.com", "student")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	if err := handler.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEnrollmentHandler_ListByUser_OtherUserForbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		listByUserFn: func(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/enrollments/u2", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "sam@example.com", "student")
	c.SetParamNames("userId")
	c.SetParamValues("u2")

	if err := handler.ListByUser(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEnrollmentHandler_ListByUser_AdminViewsAnyone(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		listByUserFn: func(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
			return []*domain.Enrollment{}, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/enrollments/u2", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin1", "root@example.com", "admin")
	c.SetParamNames("userId")
	c.SetParamValues("u2")

	if err := handler.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEnrollmentHandler_ListMine(t *testing.T) {
	e := newTestEcho()
	stub := &stubEnrollmentService{
		listByEmail: func(ctx context.Context, email string) ([]*domain.Enrollment, error) {
			if email != "sam@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return []*domain.Enrollment{{ID: "e1", StudentID: "u1", CourseID: "c1"}}, nil
		},
	}
	handler := NewEnrollmentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/enrollments", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", "sam@example.com", "student")

	if err := handler.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
