package dto

import "github.com/jhoicas/paintstock-api/internal/domain"

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// PageMeta metadatos de paginación (páginas con base 1).
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPageMeta calcula los metadatos de una página. Un límite menor a 1 se
// trata como 1 para que el cálculo de páginas nunca divida por cero.
func NewPageMeta(page, limit int, total int64) PageMeta {
	if limit < 1 {
		limit = 1
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
