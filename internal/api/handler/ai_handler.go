package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/course-platform/internal/core/ports"
)

type summaryRequest struct {
	Text string `json:"text" validate:"required"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// AIHandler handles AI summary requests.
type AIHandler struct {
	service ports.SummaryService
}

func NewAIHandler(service ports.SummaryService) *AIHandler {
	return &AIHandler{service: service}
}

// Summarize handles POST /api/ai/summary.
//
// @Summary      Summarize a course description
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      summaryRequest  true  "Text to summarize"
// @Success      200   {object}  summaryResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/ai/summary [post]
func (h *AIHandler) Summarize(c echo.Context) error {
	var req summaryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	summary, err := h.service.Summarize(c.Request().Context(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaryResponse{Summary: summary})
}
