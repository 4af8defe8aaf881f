package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/paintstock-api/internal/application/dto"
)

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantLimit int
		wantPages int
	}{
		{name: "página exacta", page: 1, limit: 10, total: 20, wantLimit: 10, wantPages: 2},
		{name: "última página parcial", page: 2, limit: 10, total: 21, wantLimit: 10, wantPages: 3},
		{name: "sin resultados", page: 1, limit: 10, total: 0, wantLimit: 10, wantPages: 0},
		{name: "límite cero no divide por cero", page: 1, limit: 0, total: 7, wantLimit: 1, wantPages: 7},
		{name: "límite negativo", page: 1, limit: -3, total: 2, wantLimit: 1, wantPages: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := dto.NewPageMeta(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.page, meta.Page)
			assert.Equal(t, tc.wantLimit, meta.Limit)
			assert.Equal(t, tc.total, meta.Total)
			assert.Equal(t, tc.wantPages, meta.TotalPages)
		})
	}
}
