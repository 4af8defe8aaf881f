// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Se usa en tests y permite arrancar la API sin PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

// Store almacén en memoria compartido por todos los repositorios.
// Un mutex único serializa todas las operaciones; Run toma un snapshot antes
// de ejecutar la función y lo restaura si falla, imitando el rollback de una
// transacción de BD.
type Store struct {
	mu         sync.Mutex
	products   map[string]*entity.Product
	categories map[string]*entity.Category
	movements  []*entity.Movement
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]*entity.Product),
		categories: make(map[string]*entity.Category),
	}
}

// Products devuelve el adaptador de productos (con bloqueo propio).
func (s *Store) Products() repository.ProductRepository {
	return &productRepo{store: s, locking: true}
}

// Categories devuelve el adaptador de categorías (con bloqueo propio).
func (s *Store) Categories() repository.CategoryRepository {
	return &categoryRepo{store: s, locking: true}
}

// Movements devuelve el adaptador del libro de movimientos (con bloqueo propio).
func (s *Store) Movements() repository.MovementRepository {
	return &movementRepo{store: s, locking: true}
}

// Dashboard devuelve el adaptador de consultas agregadas.
func (s *Store) Dashboard() repository.DashboardRepository {
	return &dashboardRepo{store: s}
}

// Run ejecuta fn bajo el mutex del almacén con semántica transaccional:
// si fn devuelve error, el estado se restaura al snapshot previo. Los
// repositorios pasados a fn operan sin volver a tomar el mutex.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	err := fn(&productRepo{store: s}, &movementRepo{store: s})
	if err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type storeSnapshot struct {
	products   map[string]*entity.Product
	categories map[string]*entity.Category
	movements  []*entity.Movement
}

// snapshot copia superficial: los repositorios nunca mutan entradas en sitio
// (Create/Update reemplazan el puntero con una copia), así que basta con
// clonar los contenedores.
func (s *Store) snapshot() storeSnapshot {
	products := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		products[id] = p
	}
	categories := make(map[string]*entity.Category, len(s.categories))
	for id, c := range s.categories {
		categories[id] = c
	}
	movements := make([]*entity.Movement, len(s.movements))
	copy(movements, s.movements)
	return storeSnapshot{products: products, categories: categories, movements: movements}
}

func (s *Store) restore(snap storeSnapshot) {
	s.products = snap.products
	s.categories = snap.categories
	s.movements = snap.movements
}

func (s *Store) lockIf(locking bool) func() {
	if !locking {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
