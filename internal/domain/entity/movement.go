package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn         = "in"
	MovementTypeOut        = "out"
	MovementTypeAdjustment = "adjustment"
)

// Motivos de negocio de un movimiento.
const (
	ReasonPurchase            = "purchase"
	ReasonSale                = "sale"
	ReasonReturn              = "return"
	ReasonInventoryAdjustment = "inventory_adjustment"
	ReasonDamaged             = "damaged"
	ReasonTransfer            = "transfer"
	ReasonInitialInventory    = "initial_inventory"
)

// MaxNotesLen longitud máxima de las observaciones de un movimiento.
const MaxNotesLen = 300

// Movement es una entrada del libro de movimientos: registro inmutable de una
// transición de stock. PreviousStock y NewStock capturan el antes y el después
// en el momento de la transición; Quantity es siempre la magnitud del cambio
// (|NewStock - PreviousStock|), nunca con signo.
// Una vez escrito, un movimiento no se actualiza ni se elimina.
type Movement struct {
	ID            string
	ProductID     string
	Type          string
	Quantity      int64
	Reason        string
	Notes         string
	PreviousStock int64
	NewStock      int64
	OccurredAt    time.Time
	CreatedAt     time.Time

	// Denormalizados en lecturas (JOIN con products); no se persisten.
	ProductName string
	ProductCode string
}

// ValidMovementType indica si el tipo pertenece al conjunto permitido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjustment:
		return true
	}
	return false
}

// ValidReason indica si el motivo pertenece al conjunto permitido.
func ValidReason(r string) bool {
	switch r {
	case ReasonPurchase, ReasonSale, ReasonReturn, ReasonInventoryAdjustment,
		ReasonDamaged, ReasonTransfer, ReasonInitialInventory:
		return true
	}
	return false
}
