package appointment

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/appointments", h.Search)
}

// Search serves GET /appointments. All query parameters are optional; each
// one supplied narrows the result. Failures are reported inside the body
// with HTTP 200, matching the service-wide convention.
func (h *Handler) Search(c echo.Context) error {
	crit := Criteria{
		PatientName: c.QueryParam("patient_name"),
		DoctorName:  c.QueryParam("doctor_name"),
		Date:        c.QueryParam("date"),
	}
	if raw := c.QueryParam("appointment_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusOK, map[string]interface{}{
				"appointments": []*View{},
				"error":        "appointment_id must be an integer",
			})
		}
		crit.AppointmentID = id
	}

	views, err := h.svc.Search(c.Request().Context(), crit)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"appointments": []*View{},
			"error":        err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"appointments": views,
	})
}
