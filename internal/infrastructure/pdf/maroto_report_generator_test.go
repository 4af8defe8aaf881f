package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paintstock-api/internal/application/analytics"
	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/infrastructure/pdf"
)

func TestGenerateInventoryPDF(t *testing.T) {
	products := []*entity.Product{
		{
			Code: "PIN-001", Name: "Pintura Látex Blanca 4L",
			Price: decimal.RequireFromString("18.50"),
			Stock: 30, MinStock: 10, Status: entity.StatusNormal,
		},
		{
			Code: "ACC-002", Name: "Lija al Agua Grano 220",
			Price: decimal.RequireFromString("0.60"),
			Stock: 4, MinStock: 20, Status: entity.StatusLowStock,
		},
		{
			Code: "PIN-004", Name: "Pintura Exterior Teja 20L",
			Price: decimal.RequireFromString("74.00"),
			Stock: 0, MinStock: 3, Status: entity.StatusOutOfStock,
		},
	}

	gen := pdf.NewMarotoReportGenerator()
	out, err := gen.GenerateInventoryPDF(context.Background(), &analytics.InventoryReportData{
		GeneratedAt:    time.Now(),
		TotalProducts:  int64(len(products)),
		InventoryValue: decimal.RequireFromString("557.40"),
		Products:       products,
		Critical:       products[1:],
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateInventoryPDF_SinProductos(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()
	out, err := gen.GenerateInventoryPDF(context.Background(), &analytics.InventoryReportData{
		GeneratedAt:    time.Now(),
		InventoryValue: decimal.Zero,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
