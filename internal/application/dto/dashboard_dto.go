package dto

import "github.com/shopspring/decimal"

// TopSellerDTO producto más vendido (salidas por venta, últimos 30 días).
type TopSellerDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	ProductCode string `json:"product_code"`
	TotalSold   int64  `json:"total_sold"`
}

// CategoryDistributionDTO productos y valor de inventario por categoría.
type CategoryDistributionDTO struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	ProductCount int64           `json:"product_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// DailyTotalsDTO unidades entradas y salidas de un día calendario.
type DailyTotalsDTO struct {
	Date string `json:"date"`
	In   int64  `json:"in"`
	Out  int64  `json:"out"`
}

// DashboardResponse estadísticas principales del tablero.
type DashboardResponse struct {
	TotalProducts         int64                     `json:"total_products"`
	LowStockCount         int64                     `json:"low_stock_count"`
	OutOfStockCount       int64                     `json:"out_of_stock_count"`
	InventoryValue        decimal.Decimal           `json:"inventory_value"`
	MovementsToday        int64                     `json:"movements_today"`
	TopSellers            []TopSellerDTO            `json:"top_sellers"`
	CriticalStock         []ProductResponse         `json:"critical_stock"`
	RecentMovements       []MovementResponse        `json:"recent_movements"`
	CategoryDistribution  []CategoryDistributionDTO `json:"category_distribution"`
}
