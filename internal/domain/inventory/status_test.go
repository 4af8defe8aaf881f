package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/inventory"
)

func TestComputeStatus_Particion(t *testing.T) {
	cases := []struct {
		name     string
		stock    int64
		minStock int64
		want     string
	}{
		{"stock cero", 0, 5, entity.StatusOutOfStock},
		{"stock cero con minimo cero", 0, 0, entity.StatusOutOfStock},
		{"stock igual al minimo", 5, 5, entity.StatusLowStock},
		{"stock por debajo del minimo", 3, 5, entity.StatusLowStock},
		{"stock uno con minimo cero", 1, 0, entity.StatusNormal},
		{"stock justo sobre el minimo", 6, 5, entity.StatusNormal},
		{"stock holgado", 100, 5, entity.StatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.ComputeStatus(tc.stock, tc.minStock))
		})
	}
}

// La partición debe ser exhaustiva y excluyente para cualquier par válido.
func TestComputeStatus_ParticionExacta(t *testing.T) {
	for stock := int64(0); stock <= 20; stock++ {
		for minStock := int64(0); minStock <= 20; minStock++ {
			got := inventory.ComputeStatus(stock, minStock)
			switch {
			case stock == 0:
				assert.Equal(t, entity.StatusOutOfStock, got, "stock=%d min=%d", stock, minStock)
			case stock <= minStock:
				assert.Equal(t, entity.StatusLowStock, got, "stock=%d min=%d", stock, minStock)
			default:
				assert.Equal(t, entity.StatusNormal, got, "stock=%d min=%d", stock, minStock)
			}
		}
	}
}
