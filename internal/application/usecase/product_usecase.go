package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/paintstock-api/internal/application/dto"
	appinv "github.com/jhoicas/paintstock-api/internal/application/inventory"
	"github.com/jhoicas/paintstock-api/internal/domain"
	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	dominv "github.com/jhoicas/paintstock-api/internal/domain/inventory"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Las mutaciones que tocan
// stock (creación con stock inicial, edición que cambia stock) pasan por el
// TxRunner para que producto y asiento del libro se confirmen juntos.
type ProductUseCase struct {
	txRunner     appinv.TxRunner
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner appinv.TxRunner, repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto con su stock inicial. Si el stock inicial es mayor a
// cero, registra en la misma transacción un movimiento sintético de entrada con
// motivo initial_inventory (previo 0 → stock); con stock cero no hay movimiento.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var verr domain.ValidationError
	in.Code = entity.NormalizeCode(in.Code)
	validateProductFields(&verr, in.Code, in.Name, in.Description, in.Price, in.Stock)
	minStock := int64(entity.DefaultMinStock)
	if in.MinStock != nil {
		minStock = *in.MinStock
		if minStock < 0 {
			verr.Add("min_stock", "no puede ser negativo")
		}
	}
	if in.CategoryID == "" {
		verr.Add("category_id", "la categoría es requerida")
	} else if cat, err := uc.categoryRepo.GetByID(in.CategoryID); err != nil {
		return nil, err
	} else if cat == nil {
		verr.Add("category_id", "la categoría no existe")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    minStock,
		Status:      dominv.ComputeStatus(in.Stock, minStock),
		Supplier:    in.Supplier,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.Stock == 0 {
			return nil
		}
		movement := &entity.Movement{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Type:          entity.MovementTypeIn,
			Quantity:      product.Stock,
			Reason:        entity.ReasonInitialInventory,
			Notes:         "Stock inicial del producto",
			PreviousStock: 0,
			NewStock:      product.Stock,
			OccurredAt:    now,
			CreatedAt:     now,
		}
		return movementRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// Update actualiza los campos de un producto. La validación es la misma que en
// Create; la unicidad del código solo se reevalúa si el código cambia. Si la
// edición cambia el stock, registra un movimiento de ajuste (in/out según la
// dirección, motivo inventory_adjustment) en la misma transacción; si el stock
// no cambia, no se escribe ningún movimiento.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var verr domain.ValidationError
	if in.Name != nil && (*in.Name == "" || len(*in.Name) > entity.MaxNameLen) {
		verr.Add("name", "requerido, máximo 100 caracteres")
	}
	if in.Description != nil && len(*in.Description) > entity.MaxDescriptionLen {
		verr.Add("description", "máximo 500 caracteres")
	}
	if in.Price != nil && in.Price.IsNegative() {
		verr.Add("price", "no puede ser negativo")
	}
	if in.Stock != nil && *in.Stock < 0 {
		verr.Add("stock", "no puede ser negativo")
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		verr.Add("min_stock", "no puede ser negativo")
	}
	var newCode string
	if in.Code != nil {
		newCode = entity.NormalizeCode(*in.Code)
		if newCode == "" || len(newCode) > entity.MaxCodeLen {
			verr.Add("code", "requerido, máximo 20 caracteres")
		}
	}
	if in.CategoryID != nil {
		if *in.CategoryID == "" {
			verr.Add("category_id", "la categoría es requerida")
		} else if cat, err := uc.categoryRepo.GetByID(*in.CategoryID); err != nil {
			return nil, err
		} else if cat == nil {
			verr.Add("category_id", "la categoría no existe")
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	var out dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if newCode != "" && newCode != product.Code {
			other, err := productRepo.GetByCode(newCode)
			if err != nil {
				return err
			}
			if other != nil && other.ID != product.ID {
				return domain.ErrDuplicate
			}
			product.Code = newCode
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.CategoryID != nil {
			product.CategoryID = *in.CategoryID
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.MinStock != nil {
			product.MinStock = *in.MinStock
		}
		if in.Supplier != nil {
			product.Supplier = *in.Supplier
		}

		now := time.Now()
		if in.Stock != nil && *in.Stock != product.Stock {
			// Edición directa del stock: pasa por la misma transición que
			// cualquier movimiento, con tipo según la dirección del cambio.
			typ := entity.MovementTypeIn
			if *in.Stock < product.Stock {
				typ = entity.MovementTypeOut
			}
			if _, err := appinv.ApplyTransition(productRepo, movementRepo, product, appinv.TransitionInput{
				NewStock: *in.Stock,
				Type:     typ,
				Reason:   entity.ReasonInventoryAdjustment,
				Notes:    "Ajuste manual de stock",
				Now:      now,
			}); err != nil {
				return err
			}
		} else {
			product.Status = dominv.ComputeStatus(product.Stock, product.MinStock)
			product.UpdatedAt = now
			if err := productRepo.Update(product); err != nil {
				return err
			}
		}
		out = dto.NewProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List lista productos con búsqueda, filtros y paginación (base 1).
func (uc *ProductUseCase) List(filter repository.ProductFilter, page, limit int) (*dto.ProductListResponse, error) {
	offset := (page - 1) * limit
	products, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.NewProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Meta:  dto.NewPageMeta(page, limit, total),
	}, nil
}

// Delete elimina un producto. No verifica movimientos que lo referencien:
// el historial del libro conserva el product_id del producto eliminado.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validateProductFields(verr *domain.ValidationError, code, name, description string, price decimal.Decimal, stock int64) {
	if name == "" || len(name) > entity.MaxNameLen {
		verr.Add("name", "requerido, máximo 100 caracteres")
	}
	if code == "" || len(code) > entity.MaxCodeLen {
		verr.Add("code", "requerido, máximo 20 caracteres")
	}
	if len(description) > entity.MaxDescriptionLen {
		verr.Add("description", "máximo 500 caracteres")
	}
	if price.IsNegative() {
		verr.Add("price", "no puede ser negativo")
	}
	if stock < 0 {
		verr.Add("stock", "no puede ser negativo")
	}
}
