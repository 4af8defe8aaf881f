package inventory

import (
	"context"

	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa transacción. Es la frontera de atomicidad del
// orquestador: la actualización del producto y el asiento en el libro de
// movimientos se confirman juntos o no se confirma ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
