package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
)

// InventoryReportData datos para la representación PDF del inventario actual.
type InventoryReportData struct {
	GeneratedAt    time.Time
	TotalProducts  int64
	InventoryValue decimal.Decimal
	Products       []*entity.Product
	Critical       []*entity.Product
}

// InventoryReportGenerator genera el PDF del reporte de inventario.
type InventoryReportGenerator interface {
	GenerateInventoryPDF(ctx context.Context, data *InventoryReportData) ([]byte, error)
}
