package doctor

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
	e.GET("/specialities", h.ListSpecialties)
	e.GET("/doctors/:speciality", h.ListBySpecialty)
}

// ListSpecialties serves GET /specialities. Store failures are reported in
// the body with an empty list; the HTTP status stays 200 because existing
// clients inspect the payload, not the status code.
func (h *Handler) ListSpecialties(c echo.Context) error {
	specialties, err := h.svc.ListSpecialties(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"specialities": []string{},
			"error":        err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"specialities": specialties,
	})
}

// ListBySpecialty serves GET /doctors/:speciality. Success is a bare array;
// failure keeps the legacy {error, doctors: []} shape.
func (h *Handler) ListBySpecialty(c echo.Context) error {
	doctors, err := h.svc.ListBySpecialty(c.Request().Context(), c.Param("speciality"))
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"error":   err.Error(),
			"doctors": []*Doctor{},
		})
	}
	return c.JSON(http.StatusOK, doctors)
}
