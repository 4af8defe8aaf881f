package repository

import "github.com/jhoicas/paintstock-api/internal/domain/entity"

// ProductFilter criterios de búsqueda para el listado de productos.
// Search aplica sobre nombre, código y descripción (case-insensitive).
type ProductFilter struct {
	Search     string
	CategoryID string
	Status     string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila del producto dentro de la transacción actual;
// es el único camino seguro para leer el stock que va a modificarse.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, int64, error)
	CountByCategory(categoryID string) (int64, error)
	Delete(id string) error
}
