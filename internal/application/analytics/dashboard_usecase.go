package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/paintstock-api/internal/application/dto"
	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

const (
	topSellersWindow = 30 * 24 * time.Hour
	topSellersLimit  = 5
	criticalLimit    = 10
	recentLimit      = 10
)

// DashboardUseCase arma las estadísticas del tablero a partir de consultas de
// solo lectura. Sin bloqueo: cada cifra es consistente punto-en-tiempo.
type DashboardUseCase struct {
	repo         repository.DashboardRepository
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	reportGen    InventoryReportGenerator
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	repo repository.DashboardRepository,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	reportGen InventoryReportGenerator,
) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, movementRepo: movementRepo, productRepo: productRepo, reportGen: reportGen}
}

// Get devuelve las estadísticas principales del tablero.
func (uc *DashboardUseCase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	total, err := uc.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.CountByStatus(ctx, entity.StatusLowStock)
	if err != nil {
		return nil, err
	}
	outOfStock, err := uc.repo.CountByStatus(ctx, entity.StatusOutOfStock)
	if err != nil {
		return nil, err
	}
	value, err := uc.repo.InventoryValue(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	movementsToday, err := uc.movementRepo.CountBetween(dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	topSellers, err := uc.repo.TopSellers(ctx, now.Add(-topSellersWindow), topSellersLimit)
	if err != nil {
		return nil, err
	}
	critical, err := uc.repo.CriticalStock(ctx, criticalLimit)
	if err != nil {
		return nil, err
	}
	recent, _, err := uc.movementRepo.List(repository.MovementFilter{}, recentLimit, 0)
	if err != nil {
		return nil, err
	}
	distribution, err := uc.repo.CategoryDistribution(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		TotalProducts:   total,
		LowStockCount:   lowStock,
		OutOfStockCount: outOfStock,
		InventoryValue:  value,
		MovementsToday:  movementsToday,
	}
	for _, t := range topSellers {
		out.TopSellers = append(out.TopSellers, dto.TopSellerDTO{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			ProductCode: t.ProductCode,
			TotalSold:   t.TotalSold,
		})
	}
	for _, p := range critical {
		out.CriticalStock = append(out.CriticalStock, dto.NewProductResponse(p))
	}
	for _, m := range recent {
		out.RecentMovements = append(out.RecentMovements, dto.NewMovementResponse(m))
	}
	for _, d := range distribution {
		out.CategoryDistribution = append(out.CategoryDistribution, dto.CategoryDistributionDTO{
			CategoryID:   d.CategoryID,
			CategoryName: d.CategoryName,
			ProductCount: d.ProductCount,
			TotalValue:   d.TotalValue,
		})
	}
	return out, nil
}

// WeeklyStats unidades entradas y salidas por día de los últimos 7 días,
// ordenado por fecha ascendente. Los días sin movimientos no aparecen.
func (uc *DashboardUseCase) WeeklyStats(ctx context.Context) ([]dto.DailyTotalsDTO, error) {
	now := time.Now()
	totals, err := uc.movementRepo.DailyTotals(now.AddDate(0, 0, -7), now)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailyTotalsDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.DailyTotalsDTO{Date: t.Date, In: t.In, Out: t.Out})
	}
	return out, nil
}

// InventoryReportPDF genera el reporte PDF del inventario actual: listado
// completo valorizado más los productos en estado crítico.
func (uc *DashboardUseCase) InventoryReportPDF(ctx context.Context) ([]byte, error) {
	products, total, err := uc.productRepo.List(repository.ProductFilter{}, 1000, 0)
	if err != nil {
		return nil, err
	}
	value, err := uc.repo.InventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	critical, err := uc.repo.CriticalStock(ctx, criticalLimit)
	if err != nil {
		return nil, err
	}
	return uc.reportGen.GenerateInventoryPDF(ctx, &InventoryReportData{
		GeneratedAt:    time.Now(),
		TotalProducts:  total,
		InventoryValue: value,
		Products:       products,
		Critical:       critical,
	})
}
