package entity

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Límites de longitud para categorías.
const (
	MaxCategoryNameLen        = 50
	MaxCategoryDescriptionLen = 200
)

// Category representa una categoría de productos. Name es único
// (comparación case-insensitive sobre la forma normalizada).
type Category struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeName devuelve la clave de comparación case-insensitive
// para nombres de categoría (NFC + minúsculas + trim).
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}
