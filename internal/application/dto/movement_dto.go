package dto

import "time"

// ApplyMovementRequest entrada para registrar un movimiento de stock sobre un
// producto. Para in/out, Quantity (> 0) es la magnitud del cambio. Para
// adjustment, el caller envía TargetStock (stock absoluto deseado) y Quantity
// se ignora: el sistema registra |target - actual|.
type ApplyMovementRequest struct {
	Type        string `json:"type"`
	Quantity    int64  `json:"quantity"`
	TargetStock *int64 `json:"target_stock"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
}

// MovementResponse representación de una entrada del libro de movimientos.
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name,omitempty"`
	ProductCode   string    `json:"product_code,omitempty"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	Reason        string    `json:"reason"`
	Notes         string    `json:"notes,omitempty"`
	PreviousStock int64     `json:"previous_stock"`
	NewStock      int64     `json:"new_stock"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ApplyMovementResponse producto actualizado junto con el movimiento registrado.
type ApplyMovementResponse struct {
	Product  ProductResponse  `json:"product"`
	Movement MovementResponse `json:"movement"`
}

// MovementListResponse página de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Meta  PageMeta           `json:"meta"`
}

// MovementTypeStatsDTO agregado por tipo de movimiento.
type MovementTypeStatsDTO struct {
	Type     string `json:"type"`
	Count    int64  `json:"count"`
	Quantity int64  `json:"quantity"`
}

// MovementStatsResponse estadísticas del libro de movimientos.
type MovementStatsResponse struct {
	Today  int64                  `json:"today"`
	Week   int64                  `json:"week"`
	ByType []MovementTypeStatsDTO `json:"by_type"`
}
