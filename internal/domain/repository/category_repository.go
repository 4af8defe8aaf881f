package repository

import "github.com/jhoicas/paintstock-api/internal/domain/entity"

// CategoryWithCount categoría junto con el número de productos que la referencian.
type CategoryWithCount struct {
	Category     entity.Category
	ProductCount int64
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByName compara sobre la forma normalizada (case-insensitive).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(active *bool) ([]CategoryWithCount, error)
	Delete(id string) error
}
