package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/course-platform/internal/core/domain"
	"github.com/coursehub/course-platform/internal/core/ports"
)

// EnrollmentHandler handles HTTP requests for the enrollment ledger. The
// ledger performs no authorization itself; viewing another user's records
// is gated here with the enrollment-view policy.
type EnrollmentHandler struct {
	service ports.EnrollmentService
}

func NewEnrollmentHandler(service ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// Enroll handles POST /api/v1/enroll. Any authenticated user may enroll.
//
// @Summary      Enroll in a course
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      enrollRequest  true  "Course to enroll in"
// @Success      201   {object}  enrollmentResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/enroll [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	enrollment, err := h.service.Enroll(c.Request().Context(), req.CourseID, cl.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEnrollmentResponse(enrollment))
}

// ListMine handles GET /api/v1/enrollments — the caller's own enrollments.
//
// @Summary      List own enrollments
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   enrollmentResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/enrollments [get]
func (h *EnrollmentHandler) ListMine(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	enrollments, err := h.service.ListByEmail(c.Request().Context(), cl.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEnrollmentListResponse(enrollments))
}

// ListByUser handles GET /api/v1/enrollments/:userId. Callers may view
// their own records; admins may view anyone's.
//
// @Summary      List a user's enrollments
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   enrollmentResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/v1/enrollments/{userId} [get]
func (h *EnrollmentHandler) ListByUser(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	targetUserID := c.Param("userId")
	actor := domain.User{ID: cl.UserID, Email: cl.Email, Role: cl.Role}
	if !domain.CanViewEnrollmentsOf(actor, targetUserID) {
		return domain.ErrForbidden
	}

	enrollments, err := h.service.ListByUser(c.Request().Context(), targetUserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEnrollmentListResponse(enrollments))
}
