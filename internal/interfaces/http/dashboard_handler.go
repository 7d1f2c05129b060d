package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
)

// DashboardHandler agregados del día para el dueño (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary ventas del día, deuda pendiente y stock bajo.
// ?date=YYYY-MM-DD opcional; default hoy.
// GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	day := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
		day = parsed
	}
	out, err := h.uc.Summary(c.Context(), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
