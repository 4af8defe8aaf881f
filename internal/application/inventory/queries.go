package inventory

import (
	"time"

	"github.com/jhoicas/paintstock-api/internal/application/dto"
	"github.com/jhoicas/paintstock-api/internal/domain"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

// Get obtiene un asiento del libro por ID.
func (uc *MovementUseCase) Get(id string) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewMovementResponse(m)
	return &out, nil
}

// List consulta el libro de movimientos con filtros y paginación (base 1).
func (uc *MovementUseCase) List(filter repository.MovementFilter, page, limit int) (*dto.MovementListResponse, error) {
	offset := (page - 1) * limit
	movements, total, err := uc.movementRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.NewMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Meta:  dto.NewPageMeta(page, limit, total),
	}, nil
}

// ListByProduct historial de movimientos de un producto.
func (uc *MovementUseCase) ListByProduct(productID string, page, limit int) (*dto.MovementListResponse, error) {
	return uc.List(repository.MovementFilter{ProductID: productID}, page, limit)
}

// Today devuelve los movimientos ocurridos hoy (día calendario local).
func (uc *MovementUseCase) Today() ([]dto.MovementResponse, error) {
	start, end := todayRange(time.Now())
	movements, err := uc.movementRepo.ListBetween(start, end)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.NewMovementResponse(m))
	}
	return items, nil
}

// Stats estadísticas del libro: movimientos de hoy, de la semana en curso y
// agregados por tipo (conteo y cantidad total movida). Lectura pura.
func (uc *MovementUseCase) Stats() (*dto.MovementStatsResponse, error) {
	now := time.Now()
	start, end := todayRange(now)

	today, err := uc.movementRepo.CountBetween(start, end)
	if err != nil {
		return nil, err
	}

	// La semana arranca el domingo.
	weekStart := start.AddDate(0, 0, -int(start.Weekday()))
	week, err := uc.movementRepo.CountBetween(weekStart, end)
	if err != nil {
		return nil, err
	}

	stats, err := uc.movementRepo.StatsByType(nil, nil)
	if err != nil {
		return nil, err
	}
	byType := make([]dto.MovementTypeStatsDTO, 0, len(stats))
	for _, s := range stats {
		byType = append(byType, dto.MovementTypeStatsDTO{Type: s.Type, Count: s.Count, Quantity: s.Quantity})
	}
	return &dto.MovementStatsResponse{Today: today, Week: week, ByType: byType}, nil
}

func todayRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
