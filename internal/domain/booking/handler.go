package booking

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/book-appointment", h.Book)
}

// Book serves POST /book-appointment. Workflow failures come back as a
// success=false payload with HTTP 200; only a malformed request body is a
// transport-level error.
func (h *Handler) Book(c echo.Context) error {
	var req Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Result{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, h.svc.Book(c.Request().Context(), req))
}
