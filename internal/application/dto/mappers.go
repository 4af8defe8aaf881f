package dto

import "github.com/jhoicas/paintstock-api/internal/domain/entity"

// NewProductResponse convierte la entidad a su representación de API.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		Status:       p.Status,
		Supplier:     p.Supplier,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewMovementResponse convierte la entidad a su representación de API.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		ProductCode:   m.ProductCode,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Reason:        m.Reason,
		Notes:         m.Notes,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		OccurredAt:    m.OccurredAt,
	}
}
