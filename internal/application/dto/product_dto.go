package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// MinStock por defecto es 5 si no se envía. Status no se acepta: es derivado.
type CreateProductRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	MinStock    *int64          `json:"min_stock"`
	Supplier    string          `json:"supplier"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// Si Stock viene y difiere del actual, el caso de uso registra un movimiento
// de ajuste en la misma transacción.
type UpdateProductRequest struct {
	Code        *string          `json:"code"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"category_id"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock"`
	MinStock    *int64           `json:"min_stock"`
	Supplier    *string          `json:"supplier"`
}

// ProductResponse representación de un producto en la API.
type ProductResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock"`
	MinStock     int64           `json:"min_stock"`
	Status       string          `json:"status"`
	Supplier     string          `json:"supplier,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  PageMeta          `json:"meta"`
}
