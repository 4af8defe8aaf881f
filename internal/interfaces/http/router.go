package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/paintstock-api/internal/application/analytics"
	"github.com/jhoicas/paintstock-api/internal/application/inventory"
	"github.com/jhoicas/paintstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	MovementUC  *inventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	movementHandler := NewMovementHandler(deps.MovementUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/movement", movementHandler.Apply)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	movements := api.Group("/movements")
	movements.Get("/", movementHandler.List)
	// Las rutas fijas van antes que la paramétrica para que el router no las capture.
	movements.Get("/today", movementHandler.Today)
	movements.Get("/stats", movementHandler.Stats)
	movements.Get("/product/:productId", movementHandler.ListByProduct)
	movements.Get("/:id", movementHandler.GetByID)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Get)
	api.Get("/dashboard/stats/weekly", dashboardHandler.WeeklyStats)
	api.Get("/reports/inventory", dashboardHandler.InventoryReport)
}
