package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*movementRepo)(nil)

type movementRepo struct {
	store   *Store
	locking bool
}

func (r *movementRepo) Create(movement *entity.Movement) error {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	clone := *movement
	r.store.movements = append(r.store.movements, &clone)
	return nil
}

func (r *movementRepo) GetByID(id string) (*entity.Movement, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	for _, m := range r.store.movements {
		if m.ID == id {
			return r.withProduct(m), nil
		}
	}
	return nil, nil
}

func (r *movementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, int64, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	matched := r.collect(func(m *entity.Movement) bool {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			return false
		}
		if filter.Type != "" && m.Type != filter.Type {
			return false
		}
		if filter.From != nil && m.OccurredAt.Before(*filter.From) {
			return false
		}
		if filter.To != nil && m.OccurredAt.After(*filter.To) {
			return false
		}
		return true
	})

	total := int64(len(matched))
	matched = page(matched, limit, offset)

	out := make([]*entity.Movement, 0, len(matched))
	for _, m := range matched {
		out = append(out, r.withProduct(m))
	}
	return out, total, nil
}

func (r *movementRepo) ListBetween(from, to time.Time) ([]*entity.Movement, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	matched := r.collect(func(m *entity.Movement) bool {
		return !m.OccurredAt.Before(from) && m.OccurredAt.Before(to)
	})
	out := make([]*entity.Movement, 0, len(matched))
	for _, m := range matched {
		out = append(out, r.withProduct(m))
	}
	return out, nil
}

func (r *movementRepo) CountBetween(from, to time.Time) (int64, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	var count int64
	for _, m := range r.store.movements {
		if !m.OccurredAt.Before(from) && m.OccurredAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (r *movementRepo) StatsByType(from, to *time.Time) ([]repository.MovementTypeStats, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	byType := make(map[string]*repository.MovementTypeStats)
	for _, m := range r.store.movements {
		if from != nil && m.OccurredAt.Before(*from) {
			continue
		}
		if to != nil && m.OccurredAt.After(*to) {
			continue
		}
		s, ok := byType[m.Type]
		if !ok {
			s = &repository.MovementTypeStats{Type: m.Type}
			byType[m.Type] = s
		}
		s.Count++
		s.Quantity += m.Quantity
	}
	out := make([]repository.MovementTypeStats, 0, len(byType))
	for _, s := range byType {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (r *movementRepo) DailyTotals(from, to time.Time) ([]repository.DailyMovementTotals, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	byDay := make(map[string]*repository.DailyMovementTotals)
	for _, m := range r.store.movements {
		if m.OccurredAt.Before(from) || !m.OccurredAt.Before(to) {
			continue
		}
		day := m.OccurredAt.Format("2006-01-02")
		t, ok := byDay[day]
		if !ok {
			t = &repository.DailyMovementTotals{Date: day}
			byDay[day] = t
		}
		switch m.Type {
		case entity.MovementTypeIn:
			t.In += m.Quantity
		case entity.MovementTypeOut:
			t.Out += m.Quantity
		}
	}
	out := make([]repository.DailyMovementTotals, 0, len(byDay))
	for _, t := range byDay {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// collect devuelve los movimientos que cumplen el predicado, ordenados por
// OccurredAt descendente y, a igual fecha, por orden de inserción inverso.
func (r *movementRepo) collect(keep func(*entity.Movement) bool) []*entity.Movement {
	type indexed struct {
		m   *entity.Movement
		pos int
	}
	var matched []indexed
	for i, m := range r.store.movements {
		if keep(m) {
			matched = append(matched, indexed{m: m, pos: i})
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.m.OccurredAt.Equal(b.m.OccurredAt) {
			return a.m.OccurredAt.After(b.m.OccurredAt)
		}
		return a.pos > b.pos
	})
	out := make([]*entity.Movement, len(matched))
	for i, e := range matched {
		out[i] = e.m
	}
	return out
}

// withProduct denormaliza nombre y código del producto; si el producto fue
// eliminado, el movimiento se conserva con los campos vacíos.
func (r *movementRepo) withProduct(m *entity.Movement) *entity.Movement {
	clone := *m
	if p, ok := r.store.products[m.ProductID]; ok {
		clone.ProductName = p.Name
		clone.ProductCode = p.Code
	}
	return &clone
}
