package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el tablero y los reportes.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de analítica.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountProducts total de productos registrados.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return count, nil
}

// CountByStatus productos en un estado derivado dado.
func (r *DashboardRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountByStatus: %w", err)
	}
	return count, nil
}

// InventoryValue valor total del inventario: SUM(price * stock).
// COALESCE devuelve cero cuando no hay productos.
func (r *DashboardRepo) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(price * stock), 0) FROM products`,
	).Scan(&value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.InventoryValue: %w", err)
	}
	return value, nil
}

// TopSellers productos con más unidades salidas por venta desde `since`.
func (r *DashboardRepo) TopSellers(ctx context.Context, since time.Time, limit int) ([]repository.TopSellerResult, error) {
	const query = `
	SELECT m.product_id, p.name, p.code, SUM(m.quantity) AS total_sold
	FROM movements m
	JOIN products p ON p.id = m.product_id
	WHERE m.type = $1 AND m.reason = $2 AND m.occurred_at >= $3
	GROUP BY m.product_id, p.name, p.code
	ORDER BY total_sold DESC
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, entity.MovementTypeOut, entity.ReasonSale, since, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopSellers: %w", err)
	}
	defer rows.Close()
	var results []repository.TopSellerResult
	for rows.Next() {
		var row repository.TopSellerResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.ProductCode, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("dashboard.TopSellers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CriticalStock productos con stock en o por debajo del mínimo, los más
// escasos primero.
func (r *DashboardRepo) CriticalStock(ctx context.Context, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p JOIN categories c ON c.id = p.category_id
		WHERE p.stock <= p.min_stock
		ORDER BY p.stock ASC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.CriticalStock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("dashboard.CriticalStock scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CategoryDistribution productos y valor de inventario agrupados por categoría.
func (r *DashboardRepo) CategoryDistribution(ctx context.Context) ([]repository.CategoryDistributionResult, error) {
	const query = `
	SELECT c.id, c.name, COUNT(p.id) AS product_count,
	       COALESCE(SUM(p.price * p.stock), 0) AS total_value
	FROM categories c
	LEFT JOIN products p ON p.category_id = c.id
	GROUP BY c.id, c.name
	ORDER BY product_count DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard.CategoryDistribution: %w", err)
	}
	defer rows.Close()
	var results []repository.CategoryDistributionResult
	for rows.Next() {
		var row repository.CategoryDistributionResult
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.ProductCount, &row.TotalValue); err != nil {
			return nil, fmt.Errorf("dashboard.CategoryDistribution scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
