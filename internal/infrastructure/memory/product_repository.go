package memory

import (
	"sort"
	"strings"

	"github.com/jhoicas/paintstock-api/internal/domain"
	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*productRepo)(nil)

type productRepo struct {
	store   *Store
	locking bool
}

func (r *productRepo) Create(product *entity.Product) error {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	for _, p := range r.store.products {
		if p.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	clone := *product
	r.store.products[clone.ID] = &clone
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return r.withCategoryName(p), nil
}

func (r *productRepo) GetByCode(code string) (*entity.Product, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	for _, p := range r.store.products {
		if p.Code == code {
			return r.withCategoryName(p), nil
		}
	}
	return nil, nil
}

// GetForUpdate en memoria no necesita bloquear fila: el mutex del almacén ya
// serializa las transacciones completas.
func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *productRepo) Update(product *entity.Product) error {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	for _, p := range r.store.products {
		if p.ID != product.ID && p.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	clone := *product
	r.store.products[clone.ID] = &clone
	return nil
}

func (r *productRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	var matched []*entity.Product
	for _, p := range r.store.products {
		if !matchesProduct(p, filter) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	matched = page(matched, limit, offset)

	out := make([]*entity.Product, 0, len(matched))
	for _, p := range matched {
		out = append(out, r.withCategoryName(p))
	}
	return out, total, nil
}

func (r *productRepo) CountByCategory(categoryID string) (int64, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	var count int64
	for _, p := range r.store.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *productRepo) Delete(id string) error {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	delete(r.store.products, id)
	return nil
}

func (r *productRepo) withCategoryName(p *entity.Product) *entity.Product {
	clone := *p
	if c, ok := r.store.categories[p.CategoryID]; ok {
		clone.CategoryName = c.Name
	}
	return &clone
}

func matchesProduct(p *entity.Product, filter repository.ProductFilter) bool {
	if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
		return false
	}
	if filter.Status != "" && p.Status != filter.Status {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Code), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	return true
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
