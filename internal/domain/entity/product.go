package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Estados derivados del stock. Status nunca lo fija el caller: se recalcula
// con inventory.ComputeStatus antes de cada persistencia.
const (
	StatusNormal     = "normal"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
)

// DefaultMinStock umbral de reposición por defecto cuando el caller no lo envía.
const DefaultMinStock = 5

// Límites de longitud de los campos de texto.
const (
	MaxNameLen        = 100
	MaxCodeLen        = 20
	MaxDescriptionLen = 500
)

// Product representa un producto del inventario.
// Code es la clave de negocio inmutable (se almacena en mayúsculas).
// Stock solo cambia a través del orquestador de movimientos; Status es derivado.
type Product struct {
	ID          string
	Code        string
	Name        string
	Description string
	CategoryID  string
	Price       decimal.Decimal
	Stock       int64
	MinStock    int64
	Status      string
	Supplier    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CategoryName denormalizado en lecturas (JOIN con categories); no se persiste.
	CategoryName string
}

// NormalizeCode normaliza un código de producto a su forma canónica:
// NFC + mayúsculas + sin espacios en los extremos. La unicidad de códigos
// se evalúa siempre sobre esta forma.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFC.String(code)))
}
