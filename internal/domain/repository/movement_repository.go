package repository

import (
	"time"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
)

// MovementFilter criterios de consulta sobre el libro de movimientos.
// From/To delimitan un rango inclusivo sobre OccurredAt.
type MovementFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
}

// MovementTypeStats agregado por tipo de movimiento.
type MovementTypeStats struct {
	Type     string
	Count    int64
	Quantity int64
}

// DailyMovementTotals unidades entradas y salidas de un día calendario.
type DailyMovementTotals struct {
	Date string // YYYY-MM-DD
	In   int64
	Out  int64
}

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no existen operaciones de actualización ni borrado.
// Los listados ordenan por OccurredAt descendente, desempatando por orden de
// inserción (CreatedAt, ID).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(filter MovementFilter, limit, offset int) ([]*entity.Movement, int64, error)
	ListBetween(from, to time.Time) ([]*entity.Movement, error)
	CountBetween(from, to time.Time) (int64, error)
	StatsByType(from, to *time.Time) ([]MovementTypeStats, error)
	DailyTotals(from, to time.Time) ([]DailyMovementTotals, error)
}
