package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/paintstock-api/internal/application/dto"
	"github.com/jhoicas/paintstock-api/internal/domain"
	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. La integridad referencial
// con productos se verifica aquí, en el orquestador, no en el almacén.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una categoría. El nombre es único sin distinguir mayúsculas.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateCategoryFields(in.Name, in.Description); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, 0), nil
}

// GetByID obtiene una categoría por ID. Devuelve ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	count, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category, count), nil
}

// Update actualiza una categoría. Reevalúa la unicidad del nombre si cambia.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if err := validateCategoryFields(*in.Name, category.Description); err != nil {
			return nil, err
		}
		if entity.NormalizeName(*in.Name) != entity.NormalizeName(category.Name) {
			other, err := uc.repo.GetByName(*in.Name)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != category.ID {
				return nil, domain.ErrDuplicate
			}
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		if len(*in.Description) > entity.MaxCategoryDescriptionLen {
			return nil, domain.NewValidationError("description", "máximo 200 caracteres")
		}
		category.Description = *in.Description
	}
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	count, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category, count), nil
}

// List lista categorías con su conteo de productos; active filtra opcionalmente.
func (uc *CategoryUseCase) List(active *bool) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(active)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(&c.Category, c.ProductCount))
	}
	return items, nil
}

// Delete elimina una categoría. Falla con ErrCategoryInUse mientras existan
// productos que la referencien.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryInUse
	}
	return uc.repo.Delete(id)
}

func validateCategoryFields(name, description string) error {
	var verr domain.ValidationError
	if name == "" || len(name) > entity.MaxCategoryNameLen {
		verr.Add("name", "requerido, máximo 50 caracteres")
	}
	if len(description) > entity.MaxCategoryDescriptionLen {
		verr.Add("description", "máximo 200 caracteres")
	}
	return verr.Err()
}

func toCategoryResponse(c *entity.Category, count int64) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Active:       c.Active,
		ProductCount: count,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
