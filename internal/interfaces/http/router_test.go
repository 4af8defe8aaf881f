package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paintstock-api/internal/application/analytics"
	"github.com/jhoicas/paintstock-api/internal/application/inventory"
	"github.com/jhoicas/paintstock-api/internal/application/usecase"
	"github.com/jhoicas/paintstock-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/paintstock-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/paintstock-api/internal/interfaces/http"
	"github.com/jhoicas/paintstock-api/pkg/logger"
)

// buildTestApp monta la API completa sobre el almacén en memoria, con el
// middleware de logging de peticiones en la cadena igual que en producción.
func buildTestApp() *fiber.App {
	store := memory.NewStore()
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "production", Level: "error"})))
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(store, store.Products(), store.Categories()),
		CategoryUC: usecase.NewCategoryUseCase(store.Categories(), store.Products()),
		MovementUC: inventory.NewMovementUseCase(store, store.Movements()),
		DashboardUC: analytics.NewDashboardUseCase(
			store.Dashboard(), store.Movements(), store.Products(),
			infrapdf.NewMarotoReportGenerator(),
		),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "cuerpo no JSON: %s", raw)
	}
	return resp, decoded
}

func TestAPI_FlujoDeInventario(t *testing.T) {
	app := buildTestApp()

	resp, cat := doJSON(t, app, fiber.MethodPost, "/api/categories", fiber.Map{"name": "Pinturas"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	catID := cat["id"].(string)

	resp, product := doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"code":        "PIN-001",
		"name":        "Pintura Látex Blanca 4L",
		"category_id": catID,
		"price":       "18.50",
		"stock":       10,
		"min_stock":   5,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	productID := product["id"].(string)
	assert.Equal(t, "normal", product["status"])

	// Salida mayor que el stock: 409 y el stock no cambia.
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/products/"+productID+"/movement", fiber.Map{
		"type": "out", "quantity": 99, "reason": "sale",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/products/"+productID+"/movement", fiber.Map{
		"type": "out", "quantity": 8, "reason": "sale",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	updated := body["product"].(map[string]any)
	assert.Equal(t, float64(2), updated["stock"])
	assert.Equal(t, "low_stock", updated["status"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/movements/product/"+productID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	items := body["items"].([]any)
	require.Len(t, items, 2, "stock inicial + salida")

	movementID := items[0].(map[string]any)["id"].(string)
	resp, body = doJSON(t, app, fiber.MethodGet, "/api/movements/"+movementID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "out", body["type"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/movements/no-existe", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total_products"])

	// El resumen semanal responde un arreglo: un único día con el alta y la venta.
	req := httptest.NewRequest(fiber.MethodGet, "/api/dashboard/stats/weekly", nil)
	wres, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, wres.StatusCode)
	var weekly []map[string]any
	require.NoError(t, json.NewDecoder(wres.Body).Decode(&weekly))
	require.Len(t, weekly, 1)
	assert.Equal(t, float64(10), weekly[0]["in"])
	assert.Equal(t, float64(8), weekly[0]["out"])
}

func TestAPI_Errores(t *testing.T) {
	app := buildTestApp()

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/products/no-existe", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/categories", fiber.Map{"name": ""})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	require.NotEmpty(t, body["errors"])

	_, _ = doJSON(t, app, fiber.MethodPost, "/api/categories", fiber.Map{"name": "Pinturas"})
	resp, body = doJSON(t, app, fiber.MethodPost, "/api/categories", fiber.Map{"name": "PINTURAS"})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", body["code"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/movements?from=ayer", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestAPI_EliminarCategoriaEnUso(t *testing.T) {
	app := buildTestApp()

	_, cat := doJSON(t, app, fiber.MethodPost, "/api/categories", fiber.Map{"name": "Pinturas"})
	catID := cat["id"].(string)
	_, _ = doJSON(t, app, fiber.MethodPost, "/api/products", fiber.Map{
		"code": "PIN-001", "name": "Pintura", "category_id": catID,
	})

	resp, body := doJSON(t, app, fiber.MethodDelete, "/api/categories/"+catID, nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CATEGORY_IN_USE", body["code"])
}
