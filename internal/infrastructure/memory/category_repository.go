package memory

import (
	"sort"

	"github.com/jhoicas/paintstock-api/internal/domain"
	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*categoryRepo)(nil)

type categoryRepo struct {
	store   *Store
	locking bool
}

func (r *categoryRepo) Create(category *entity.Category) error {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	key := entity.NormalizeName(category.Name)
	for _, c := range r.store.categories {
		if entity.NormalizeName(c.Name) == key {
			return domain.ErrDuplicate
		}
	}
	clone := *category
	r.store.categories[clone.ID] = &clone
	return nil
}

func (r *categoryRepo) GetByID(id string) (*entity.Category, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	c, ok := r.store.categories[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *categoryRepo) GetByName(name string) (*entity.Category, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	key := entity.NormalizeName(name)
	for _, c := range r.store.categories {
		if entity.NormalizeName(c.Name) == key {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *categoryRepo) Update(category *entity.Category) error {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	key := entity.NormalizeName(category.Name)
	for _, c := range r.store.categories {
		if c.ID != category.ID && entity.NormalizeName(c.Name) == key {
			return domain.ErrDuplicate
		}
	}
	clone := *category
	r.store.categories[clone.ID] = &clone
	return nil
}

func (r *categoryRepo) List(active *bool) ([]repository.CategoryWithCount, error) {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	var out []repository.CategoryWithCount
	for _, c := range r.store.categories {
		if active != nil && c.Active != *active {
			continue
		}
		var count int64
		for _, p := range r.store.products {
			if p.CategoryID == c.ID {
				count++
			}
		}
		out = append(out, repository.CategoryWithCount{Category: *c, ProductCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category.Name < out[j].Category.Name
	})
	return out, nil
}

func (r *categoryRepo) Delete(id string) error {
	unlock := r.store.lockIf(r.locking)
	defer unlock()

	delete(r.store.categories, id)
	return nil
}
