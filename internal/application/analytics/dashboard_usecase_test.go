package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paintstock-api/internal/application/analytics"
	"github.com/jhoicas/paintstock-api/internal/application/dto"
	"github.com/jhoicas/paintstock-api/internal/application/inventory"
	"github.com/jhoicas/paintstock-api/internal/application/usecase"
	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/paintstock-api/internal/infrastructure/pdf"
)

func buildDashboardFixture(t *testing.T) (*analytics.DashboardUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	catUC := usecase.NewCategoryUseCase(store.Categories(), store.Products())
	productUC := usecase.NewProductUseCase(store, store.Products(), store.Categories())
	movementUC := inventory.NewMovementUseCase(store, store.Movements())

	pinturas, err := catUC.Create(dto.CreateCategoryRequest{Name: "Pinturas"})
	require.NoError(t, err)
	accesorios, err := catUC.Create(dto.CreateCategoryRequest{Name: "Accesorios"})
	require.NoError(t, err)

	latex, err := productUC.Create(ctx, dto.CreateProductRequest{
		Code: "PIN-001", Name: "Pintura Látex Blanca 4L", CategoryID: pinturas.ID,
		Price: decimal.RequireFromString("10.00"), Stock: 20,
	})
	require.NoError(t, err)
	_, err = productUC.Create(ctx, dto.CreateProductRequest{
		Code: "ACC-001", Name: "Cinta de Enmascarar", CategoryID: accesorios.ID,
		Price: decimal.RequireFromString("2.00"), Stock: 3,
	})
	require.NoError(t, err)

	// Dos ventas de látex hoy.
	for _, qty := range []int64{4, 6} {
		_, err := movementUC.ApplyMovement(ctx, latex.ID, dto.ApplyMovementRequest{
			Type: entity.MovementTypeOut, Quantity: qty, Reason: entity.ReasonSale,
		})
		require.NoError(t, err)
	}

	uc := analytics.NewDashboardUseCase(
		store.Dashboard(), store.Movements(), store.Products(),
		infrapdf.NewMarotoReportGenerator(),
	)
	return uc, store
}

func TestDashboardGet(t *testing.T) {
	uc, _ := buildDashboardFixture(t)

	out, err := uc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.TotalProducts)
	assert.Equal(t, int64(1), out.LowStockCount, "la cinta quedó bajo su mínimo por defecto")
	assert.Zero(t, out.OutOfStockCount)
	// 10 látex a 10.00 + 3 cintas a 2.00
	assert.True(t, out.InventoryValue.Equal(decimal.RequireFromString("106.00")),
		"valor del inventario: %s", out.InventoryValue)
	assert.Equal(t, int64(4), out.MovementsToday, "dos asientos iniciales y dos ventas")

	require.Len(t, out.TopSellers, 1)
	assert.Equal(t, "PIN-001", out.TopSellers[0].ProductCode)
	assert.Equal(t, int64(10), out.TopSellers[0].TotalSold)

	require.Len(t, out.CriticalStock, 1)
	assert.Equal(t, "ACC-001", out.CriticalStock[0].Code)

	require.NotEmpty(t, out.RecentMovements)
	assert.Equal(t, entity.MovementTypeOut, out.RecentMovements[0].Type, "el más reciente primero")

	require.Len(t, out.CategoryDistribution, 2)
}

func TestDashboardWeeklyStats(t *testing.T) {
	uc, store := buildDashboardFixture(t)

	// El fixture deja hoy: dos asientos iniciales (20 y 3) y dos ventas (4 y 6).
	// Se agregan asientos retrodatados directamente al libro: dos días atrás una
	// entrada, una salida y un ajuste; ocho días atrás una salida fuera de la
	// ventana semanal.
	twoDaysAgo := time.Now().AddDate(0, 0, -2)
	eightDaysAgo := time.Now().AddDate(0, 0, -8)
	backdated := []*entity.Movement{
		{ID: uuid.NewString(), Type: entity.MovementTypeIn, Quantity: 5, Reason: entity.ReasonPurchase, OccurredAt: twoDaysAgo},
		{ID: uuid.NewString(), Type: entity.MovementTypeOut, Quantity: 2, Reason: entity.ReasonSale, OccurredAt: twoDaysAgo},
		{ID: uuid.NewString(), Type: entity.MovementTypeAdjustment, Quantity: 7, Reason: entity.ReasonInventoryAdjustment, OccurredAt: twoDaysAgo},
		{ID: uuid.NewString(), Type: entity.MovementTypeOut, Quantity: 99, Reason: entity.ReasonSale, OccurredAt: eightDaysAgo},
	}
	for _, m := range backdated {
		m.CreatedAt = time.Now()
		require.NoError(t, store.Movements().Create(m))
	}

	out, err := uc.WeeklyStats(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 2, "solo los días con movimientos dentro de la ventana")
	assert.Equal(t, twoDaysAgo.Format("2006-01-02"), out[0].Date, "fecha ascendente")
	assert.Equal(t, int64(5), out[0].In)
	assert.Equal(t, int64(2), out[0].Out, "el ajuste no suma a ninguna columna")
	assert.Equal(t, time.Now().Format("2006-01-02"), out[1].Date)
	assert.Equal(t, int64(23), out[1].In)
	assert.Equal(t, int64(10), out[1].Out)
}

func TestDashboardInventoryReportPDF(t *testing.T) {
	uc, _ := buildDashboardFixture(t)

	out, err := uc.InventoryReportPDF(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
