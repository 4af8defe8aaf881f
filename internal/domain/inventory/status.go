// Package inventory contiene la lógica pura del inventario: derivación del
// estado de stock, sin dependencias de persistencia ni de transporte.
package inventory

import "github.com/jhoicas/paintstock-api/internal/domain/entity"

// ComputeStatus deriva el estado de un producto a partir del stock actual y
// el umbral mínimo. Partición exacta de tres vías:
//
//	stock == 0              -> out_of_stock
//	0 < stock <= minStock   -> low_stock
//	stock > minStock        -> normal
//
// Se invoca de forma explícita antes de cada persistencia del producto
// (no es un hook implícito del guardado), de modo que el invariante es
// verificable de forma aislada.
func ComputeStatus(stock, minStock int64) string {
	switch {
	case stock == 0:
		return entity.StatusOutOfStock
	case stock <= minStock:
		return entity.StatusLowStock
	default:
		return entity.StatusNormal
	}
}
