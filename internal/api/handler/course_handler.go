package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/course-platform/internal/core/ports"
)

// CourseHandler handles HTTP requests for course operations. Ownership and
// role decisions live in the service; this layer only extracts the
// authenticated subject and shapes the payloads.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// GetAll handles GET /api/v1/courses.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   courseResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/courses [get]
func (h *CourseHandler) GetAll(c echo.Context) error {
	courses, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseListResponse(courses))
}

// GetByID handles GET /api/v1/courses/:id.
//
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  courseResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/courses/{id} [get]
func (h *CourseHandler) GetByID(c echo.Context) error {
	course, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(course))
}

// GetByInstructor handles GET /api/v1/courses/instructor/:instructorId.
//
// @Summary      List courses owned by an instructor
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        instructorId  path      string  true  "Instructor user id"
// @Success      200           {array}   courseResponse
// @Failure      404           {object}  errorResponse
// @Router       /api/v1/courses/instructor/{instructorId} [get]
func (h *CourseHandler) GetByInstructor(c echo.Context) error {
	courses, err := h.service.GetByInstructor(c.Request().Context(), c.Param("instructorId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseListResponse(courses))
}

// Create handles POST /api/v1/courses.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      courseRequest  true  "Course details"
// @Success      201   {object}  courseResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	course, err := h.service.Create(c.Request().Context(), toCourseInput(req), claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCourseResponse(course))
}

// Update handles PUT /api/v1/courses/:id. The request replaces title,
// description, and category wholesale.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Course id"
// @Param        body  body      courseRequest  true  "New course fields"
// @Success      200   {object}  courseResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	course, err := h.service.Update(c.Request().Context(), c.Param("id"), toCourseInput(req), claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCourseResponse(course))
}

// Delete handles DELETE /api/v1/courses/:id.
//
// @Summary      Delete a course
// @Tags         courses
// @Security     BearerAuth
// @Param        id  path  string  true  "Course id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/v1/courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), claims.Email); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
