package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
)

// TopSellerResult producto con mayor volumen de salidas por venta en el período.
type TopSellerResult struct {
	ProductID   string
	ProductName string
	ProductCode string
	TotalSold   int64
}

// CategoryDistributionResult productos y valor de inventario por categoría.
type CategoryDistributionResult struct {
	CategoryID    string
	CategoryName  string
	ProductCount  int64
	TotalValue    decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el tablero y los reportes.
type DashboardRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	InventoryValue(ctx context.Context) (decimal.Decimal, error)
	TopSellers(ctx context.Context, since time.Time, limit int) ([]TopSellerResult, error)
	CriticalStock(ctx context.Context, limit int) ([]*entity.Product, error)
	CategoryDistribution(ctx context.Context) ([]CategoryDistributionResult, error)
}
