package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paintstock-api/internal/application/dto"
	"github.com/jhoicas/paintstock-api/internal/application/inventory"
	"github.com/jhoicas/paintstock-api/internal/domain"
	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	dominv "github.com/jhoicas/paintstock-api/internal/domain/inventory"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
	"github.com/jhoicas/paintstock-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, store *memory.Store, stock, minStock int64) string {
	t.Helper()
	now := time.Now()
	cat := &entity.Category{ID: uuid.New().String(), Name: "Pinturas", Active: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Categories().Create(cat))
	p := &entity.Product{
		ID:         uuid.New().String(),
		Code:       "PIN-001",
		Name:       "Pintura Látex Blanca 4L",
		CategoryID: cat.ID,
		Price:      decimal.RequireFromString("18.50"),
		Stock:      stock,
		MinStock:   minStock,
		Status:     dominv.ComputeStatus(stock, minStock),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, store.Products().Create(p))
	return p.ID
}

func TestApplyMovement_SecuenciaEntradaSalida(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, 0, 5)
	uc := inventory.NewMovementUseCase(store, store.Movements())
	ctx := context.Background()

	out, err := uc.ApplyMovement(ctx, id, dto.ApplyMovementRequest{
		Type: entity.MovementTypeIn, Quantity: 10, Reason: entity.ReasonPurchase,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Product.Stock)
	assert.Equal(t, entity.StatusNormal, out.Product.Status)
	assert.Equal(t, int64(0), out.Movement.PreviousStock)
	assert.Equal(t, int64(10), out.Movement.NewStock)

	out, err = uc.ApplyMovement(ctx, id, dto.ApplyMovementRequest{
		Type: entity.MovementTypeOut, Quantity: 7, Reason: entity.ReasonSale,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Product.Stock)
	assert.Equal(t, entity.StatusLowStock, out.Product.Status)

	// Salida mayor que el stock: la operación falla y no deja rastro.
	_, err = uc.ApplyMovement(ctx, id, dto.ApplyMovementRequest{
		Type: entity.MovementTypeOut, Quantity: 10, Reason: entity.ReasonSale,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Stock)

	_, total, err := store.Movements().List(repository.MovementFilter{ProductID: id}, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "el intento fallido no debe dejar asiento")
}

func TestApplyMovement_SalidaACero(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, 4, 5)
	uc := inventory.NewMovementUseCase(store, store.Movements())

	out, err := uc.ApplyMovement(context.Background(), id, dto.ApplyMovementRequest{
		Type: entity.MovementTypeOut, Quantity: 4, Reason: entity.ReasonSale,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Product.Stock)
	assert.Equal(t, entity.StatusOutOfStock, out.Product.Status)
}

func TestApplyMovement_Ajuste(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, 12, 5)
	uc := inventory.NewMovementUseCase(store, store.Movements())
	ctx := context.Background()

	target := int64(7)
	out, err := uc.ApplyMovement(ctx, id, dto.ApplyMovementRequest{
		Type: entity.MovementTypeAdjustment, TargetStock: &target,
		Reason: entity.ReasonInventoryAdjustment, Notes: "Conteo físico",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Product.Stock)
	assert.Equal(t, int64(5), out.Movement.Quantity, "la cantidad es |objetivo - actual|")
	assert.Equal(t, int64(12), out.Movement.PreviousStock)
	assert.Equal(t, int64(7), out.Movement.NewStock)

	// Ajustar al stock actual no es un movimiento.
	same := int64(7)
	_, err = uc.ApplyMovement(ctx, id, dto.ApplyMovementRequest{
		Type: entity.MovementTypeAdjustment, TargetStock: &same,
		Reason: entity.ReasonInventoryAdjustment,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_Validacion(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, 10, 5)
	uc := inventory.NewMovementUseCase(store, store.Movements())
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.ApplyMovementRequest
	}{
		{"tipo desconocido", dto.ApplyMovementRequest{Type: "sideways", Quantity: 1, Reason: entity.ReasonSale}},
		{"motivo desconocido", dto.ApplyMovementRequest{Type: entity.MovementTypeIn, Quantity: 1, Reason: "because"}},
		{"cantidad cero", dto.ApplyMovementRequest{Type: entity.MovementTypeIn, Quantity: 0, Reason: entity.ReasonPurchase}},
		{"cantidad negativa", dto.ApplyMovementRequest{Type: entity.MovementTypeOut, Quantity: -3, Reason: entity.ReasonSale}},
		{"ajuste sin objetivo", dto.ApplyMovementRequest{Type: entity.MovementTypeAdjustment, Reason: entity.ReasonInventoryAdjustment}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.ApplyMovement(ctx, id, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Nada de lo anterior debe haber tocado el stock ni el libro.
	p, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.Stock)
	_, total, err := store.Movements().List(repository.MovementFilter{}, 100, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestApplyMovement_ProductoInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewMovementUseCase(store, store.Movements())

	_, err := uc.ApplyMovement(context.Background(), uuid.New().String(), dto.ApplyMovementRequest{
		Type: entity.MovementTypeIn, Quantity: 1, Reason: entity.ReasonPurchase,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El libro debe poder reconstruir el stock actual: reproducir los asientos en
// orden cronológico desde cero termina exactamente en el stock del producto.
func TestLibro_ReproduccionDelStock(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, 0, 5)
	uc := inventory.NewMovementUseCase(store, store.Movements())
	ctx := context.Background()

	target := int64(9)
	steps := []dto.ApplyMovementRequest{
		{Type: entity.MovementTypeIn, Quantity: 25, Reason: entity.ReasonPurchase},
		{Type: entity.MovementTypeOut, Quantity: 8, Reason: entity.ReasonSale},
		{Type: entity.MovementTypeOut, Quantity: 5, Reason: entity.ReasonDamaged},
		{Type: entity.MovementTypeAdjustment, TargetStock: &target, Reason: entity.ReasonInventoryAdjustment},
		{Type: entity.MovementTypeIn, Quantity: 3, Reason: entity.ReasonReturn},
	}
	for _, s := range steps {
		_, err := uc.ApplyMovement(ctx, id, s)
		require.NoError(t, err)
	}

	movements, total, err := store.Movements().List(repository.MovementFilter{ProductID: id}, 100, 0)
	require.NoError(t, err)
	require.Equal(t, int64(len(steps)), total)

	// List devuelve del más reciente al más antiguo; se reproduce al revés.
	for i, j := 0, len(movements)-1; i < j; i, j = i+1, j-1 {
		movements[i], movements[j] = movements[j], movements[i]
	}
	var replayed int64
	for _, m := range movements {
		require.Equal(t, replayed, m.PreviousStock, "cada asiento encadena con el anterior")
		replayed = m.NewStock
	}

	p, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, p.Stock, replayed)
	assert.Equal(t, int64(12), p.Stock)
}

// Transiciones concurrentes sobre el mismo producto deben serializarse: no se
// pierde ninguna actualización y los asientos del libro quedan encadenados.
func TestApplyMovement_TransicionesConcurrentes(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, 0, 5)
	uc := inventory.NewMovementUseCase(store, store.Movements())
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.ApplyMovement(ctx, id, dto.ApplyMovementRequest{
				Type: entity.MovementTypeIn, Quantity: 1, Reason: entity.ReasonPurchase,
			})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	p, err := store.Products().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(n), p.Stock, "ninguna entrada se pierde")

	movements, total, err := store.Movements().List(repository.MovementFilter{ProductID: id}, n+1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(n), total)

	// Del más antiguo al más reciente: cada asiento parte donde terminó el otro.
	for i, j := 0, len(movements)-1; i < j; i, j = i+1, j-1 {
		movements[i], movements[j] = movements[j], movements[i]
	}
	var replayed int64
	for _, m := range movements {
		require.Equal(t, replayed, m.PreviousStock)
		require.Equal(t, replayed+1, m.NewStock)
		replayed = m.NewStock
	}
}

func TestStats_CuentaHoyYTipos(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, 0, 5)
	uc := inventory.NewMovementUseCase(store, store.Movements())
	ctx := context.Background()

	_, err := uc.ApplyMovement(ctx, id, dto.ApplyMovementRequest{
		Type: entity.MovementTypeIn, Quantity: 10, Reason: entity.ReasonPurchase,
	})
	require.NoError(t, err)
	_, err = uc.ApplyMovement(ctx, id, dto.ApplyMovementRequest{
		Type: entity.MovementTypeOut, Quantity: 4, Reason: entity.ReasonSale,
	})
	require.NoError(t, err)

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Today)
	assert.GreaterOrEqual(t, stats.Week, stats.Today)

	byType := make(map[string]int64)
	for _, s := range stats.ByType {
		byType[s.Type] = s.Quantity
	}
	assert.Equal(t, int64(10), byType[entity.MovementTypeIn])
	assert.Equal(t, int64(4), byType[entity.MovementTypeOut])
}

func TestToday_SoloElDiaEnCurso(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, 0, 5)

	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, store.Movements().Create(&entity.Movement{
		ID: uuid.New().String(), ProductID: id, Type: entity.MovementTypeIn,
		Quantity: 5, Reason: entity.ReasonPurchase,
		PreviousStock: 0, NewStock: 5,
		OccurredAt: yesterday, CreatedAt: yesterday,
	}))

	uc := inventory.NewMovementUseCase(store, store.Movements())
	_, err := uc.ApplyMovement(context.Background(), id, dto.ApplyMovementRequest{
		Type: entity.MovementTypeIn, Quantity: 3, Reason: entity.ReasonPurchase,
	})
	require.NoError(t, err)

	today, err := uc.Today()
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, int64(3), today[0].Quantity)
}
