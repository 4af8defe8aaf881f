package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: el libro es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `m.id, m.product_id, m.type, m.quantity, m.reason, m.notes,
	m.previous_stock, m.new_stock, m.occurred_at, m.created_at`

// Create persiste un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, product_id, type, quantity, reason, notes, previous_stock, new_stock, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.Reason, movement.Notes, movement.PreviousStock, movement.NewStock,
		movement.OccurredAt, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `, p.name, p.code
		FROM movements m LEFT JOIN products p ON p.id = m.product_id
		WHERE m.id = $1`
	m, err := scanMovementWithProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List consulta el libro con filtros por producto, tipo y rango inclusivo de
// fechas. Orden: más reciente primero, desempatando por orden de inserción.
func (r *MovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, int64, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		where += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Type != "" {
		where += fmt.Sprintf(" AND m.type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND m.occurred_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND m.occurred_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM movements m" + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := `
		SELECT ` + movementColumns + `, p.name, p.code
		FROM movements m LEFT JOIN products p ON p.id = m.product_id` + where +
		fmt.Sprintf(" ORDER BY m.occurred_at DESC, m.created_at DESC, m.id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list, err := collectMovements(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListBetween devuelve los movimientos con occurred_at en [from, to).
func (r *MovementRepo) ListBetween(from, to time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `, p.name, p.code
		FROM movements m LEFT JOIN products p ON p.id = m.product_id
		WHERE m.occurred_at >= $1 AND m.occurred_at < $2
		ORDER BY m.occurred_at DESC, m.created_at DESC, m.id DESC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list movements between: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// CountBetween cuenta los movimientos con occurred_at en [from, to).
func (r *MovementRepo) CountBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movements WHERE occurred_at >= $1 AND occurred_at < $2`,
		from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements between: %w", err)
	}
	return count, nil
}

// StatsByType agrega conteo y cantidad total movida por tipo, opcionalmente
// restringido a un rango de fechas. Lectura pura.
func (r *MovementRepo) StatsByType(from, to *time.Time) ([]repository.MovementTypeStats, error) {
	query := `
		SELECT type, COUNT(*), COALESCE(SUM(quantity), 0)
		FROM movements WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND occurred_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND occurred_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += ` GROUP BY type ORDER BY type`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("movement stats: %w", err)
	}
	defer rows.Close()
	var stats []repository.MovementTypeStats
	for rows.Next() {
		var s repository.MovementTypeStats
		if err := rows.Scan(&s.Type, &s.Count, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan movement stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// DailyTotals unidades entradas y salidas por día calendario, con occurred_at
// en [from, to), ordenado por fecha ascendente. Los ajustes no suman a ninguna
// de las dos columnas.
func (r *MovementRepo) DailyTotals(from, to time.Time) ([]repository.DailyMovementTotals, error) {
	query := `
		SELECT to_char(occurred_at, 'YYYY-MM-DD') AS day,
		       COALESCE(SUM(quantity) FILTER (WHERE type = $1), 0) AS entradas,
		       COALESCE(SUM(quantity) FILTER (WHERE type = $2), 0) AS salidas
		FROM movements
		WHERE occurred_at >= $3 AND occurred_at < $4
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(context.Background(), query,
		entity.MovementTypeIn, entity.MovementTypeOut, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily movement totals: %w", err)
	}
	defer rows.Close()
	var totals []repository.DailyMovementTotals
	for rows.Next() {
		var t repository.DailyMovementTotals
		if err := rows.Scan(&t.Date, &t.In, &t.Out); err != nil {
			return nil, fmt.Errorf("scan daily movement totals: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func scanMovementWithProduct(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var name, code *string
	err := row.Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.Notes,
		&m.PreviousStock, &m.NewStock, &m.OccurredAt, &m.CreatedAt,
		&name, &code,
	)
	if err != nil {
		return nil, err
	}
	if name != nil {
		m.ProductName = *name
	}
	if code != nil {
		m.ProductCode = *code
	}
	return &m, nil
}

func collectMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovementWithProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
