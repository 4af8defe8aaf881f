package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/paintstock-api/internal/application/dto"
	"github.com/jhoicas/paintstock-api/internal/domain"
	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	dominv "github.com/jhoicas/paintstock-api/internal/domain/inventory"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

// MovementUseCase es el único camino por el que cambia el stock de un
// producto. Cada transición ejecuta lectura con bloqueo de fila
// (SELECT FOR UPDATE), actualización del producto con recálculo del estado
// y asiento en el libro de movimientos, todo dentro de una transacción
// (Commit/Rollback vía TxRunner). Dos transiciones concurrentes sobre el
// mismo producto se serializan en el bloqueo de fila: no hay lost updates.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// ApplyMovement registra un movimiento sobre un producto:
//
//	in:         stock + quantity
//	out:        stock - quantity; falla con ErrInsufficientStock si quantity > stock
//	adjustment: el caller envía TargetStock (valor absoluto); quantity = |target - actual|
//
// Devuelve el producto actualizado y el movimiento escrito. Si la operación
// reporta éxito, ambos registros quedaron confirmados; si falla, ninguno.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, productID string, in dto.ApplyMovementRequest) (*dto.ApplyMovementResponse, error) {
	if err := validateMovementInput(in); err != nil {
		return nil, err
	}

	var out *dto.ApplyMovementResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		previous := product.Stock
		var newStock int64
		switch in.Type {
		case entity.MovementTypeIn:
			newStock = previous + in.Quantity
		case entity.MovementTypeOut:
			if in.Quantity > previous {
				return domain.ErrInsufficientStock
			}
			newStock = previous - in.Quantity
		case entity.MovementTypeAdjustment:
			newStock = *in.TargetStock
			if newStock == previous {
				return domain.NewValidationError("target_stock", "igual al stock actual, nada que ajustar")
			}
		}

		movement, err := ApplyTransition(productRepo, movementRepo, product, TransitionInput{
			NewStock: newStock,
			Type:     in.Type,
			Reason:   in.Reason,
			Notes:    in.Notes,
			Now:      time.Now(),
		})
		if err != nil {
			return err
		}
		out = &dto.ApplyMovementResponse{
			Product:  dto.NewProductResponse(product),
			Movement: dto.NewMovementResponse(movement),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TransitionInput parámetros de una transición de stock ya resuelta.
type TransitionInput struct {
	NewStock int64
	Type     string
	Reason   string
	Notes    string
	Now      time.Time
}

// ApplyTransition persiste una transición de stock: actualiza el producto
// (estado recalculado con ComputeStatus) y escribe el asiento con el antes y
// el después. Es el único punto del sistema que muta Product.Stock; los casos
// de uso de producto lo reutilizan para el stock inicial y los ajustes de
// edición. Debe invocarse con la fila del producto ya bloqueada, dentro de la
// transacción del TxRunner.
func ApplyTransition(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	product *entity.Product,
	in TransitionInput,
) (*entity.Movement, error) {
	previous := product.Stock
	product.Stock = in.NewStock
	product.Status = dominv.ComputeStatus(product.Stock, product.MinStock)
	product.UpdatedAt = in.Now
	if err := productRepo.Update(product); err != nil {
		return nil, err
	}

	quantity := in.NewStock - previous
	if quantity < 0 {
		quantity = -quantity
	}
	movement := &entity.Movement{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Type:          in.Type,
		Quantity:      quantity,
		Reason:        in.Reason,
		Notes:         in.Notes,
		PreviousStock: previous,
		NewStock:      in.NewStock,
		OccurredAt:    in.Now,
		CreatedAt:     in.Now,
	}
	if err := movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return movement, nil
}

func validateMovementInput(in dto.ApplyMovementRequest) error {
	var verr domain.ValidationError
	if !entity.ValidMovementType(in.Type) {
		verr.Add("type", "debe ser in, out o adjustment")
	}
	if !entity.ValidReason(in.Reason) {
		verr.Add("reason", "motivo desconocido")
	}
	if len(in.Notes) > entity.MaxNotesLen {
		verr.Add("notes", "máximo 300 caracteres")
	}
	switch in.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut:
		if in.Quantity < 1 {
			verr.Add("quantity", "debe ser un entero mayor a 0")
		}
	case entity.MovementTypeAdjustment:
		if in.TargetStock == nil {
			verr.Add("target_stock", "requerido para ajustes")
		} else if *in.TargetStock < 0 {
			verr.Add("target_stock", "no puede ser negativo")
		}
	}
	return verr.Err()
}
