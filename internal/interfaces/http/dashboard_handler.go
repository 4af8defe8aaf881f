package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/paintstock-api/internal/application/analytics"
)

// DashboardHandler maneja las consultas agregadas y los reportes.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Tablero general del inventario
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// WeeklyStats godoc
// @Summary      Entradas y salidas por día de la última semana
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.DailyTotalsDTO
// @Router       /api/dashboard/stats/weekly [get]
func (h *DashboardHandler) WeeklyStats(c *fiber.Ctx) error {
	out, err := h.uc.WeeklyStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// InventoryReport godoc
// @Summary      Reporte de inventario en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory [get]
func (h *DashboardHandler) InventoryReport(c *fiber.Ctx) error {
	pdf, err := h.uc.InventoryReportPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
