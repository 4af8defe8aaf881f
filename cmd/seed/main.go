// seed puebla la base de datos con datos de demostración de una tienda de
// pinturas: categorías, productos y un historial de movimientos de las últimas
// semanas. Pensado para entornos de desarrollo; los códigos de producto son
// fijos, así que ejecutarlo dos veces falla por duplicado.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/paintstock-api/internal/domain/entity"
	"github.com/jhoicas/paintstock-api/internal/domain/inventory"
	"github.com/jhoicas/paintstock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/paintstock-api/pkg/config"
	"github.com/jhoicas/paintstock-api/pkg/logger"
)

type seedProduct struct {
	code         string
	name         string
	description  string
	category     string
	price        string
	initialStock int64
	minStock     int64
	supplier     string
}

// seedMovement asiento retroactivo. Para adjustment, quantity es el stock
// objetivo del conteo, igual que en la API.
type seedMovement struct {
	code     string
	typ      string
	quantity int64
	reason   string
	notes    string
	daysAgo  int
}

var categories = []entity.Category{
	{Name: "Pinturas", Description: "Pinturas de interior y exterior", Active: true},
	{Name: "Brochas y Rodillos", Description: "Herramientas de aplicación", Active: true},
	{Name: "Accesorios", Description: "Cintas, lijas y complementos", Active: true},
}

var products = []seedProduct{
	{"PIN-001", "Pintura Látex Blanca 4L", "Látex lavable para interiores", "Pinturas", "18.50", 30, 10, "Pinturas del Norte"},
	{"PIN-002", "Pintura Látex Gris Perla 4L", "Látex lavable para interiores", "Pinturas", "19.90", 18, 10, "Pinturas del Norte"},
	{"PIN-003", "Esmalte Sintético Negro 1L", "Esmalte brillante para metal y madera", "Pinturas", "9.75", 30, 5, "Coloranda"},
	{"PIN-004", "Pintura Exterior Teja 20L", "Acrílica resistente a la intemperie", "Pinturas", "74.00", 5, 3, "Coloranda"},
	{"BRO-001", "Brocha Cerda Natural 3\"", "Brocha profesional mango de madera", "Brochas y Rodillos", "4.20", 68, 15, "Herratec"},
	{"BRO-002", "Rodillo Antigota 9\"", "Rodillo de felpa con repuesto", "Brochas y Rodillos", "6.80", 18, 12, "Herratec"},
	{"ACC-001", "Cinta de Enmascarar 24mm", "Rollo de 40m", "Accesorios", "1.90", 130, 30, "Herratec"},
	{"ACC-002", "Lija al Agua Grano 220", "Pliego 23x28cm", "Accesorios", "0.60", 10, 20, "Abrasivos Sur"},
}

var movements = []seedMovement{
	{"PIN-004", entity.MovementTypeOut, 5, entity.ReasonSale, "Pedido obra Av. Central", 15},
	{"PIN-001", entity.MovementTypeOut, 6, entity.ReasonSale, "Venta mostrador", 12},
	{"ACC-002", entity.MovementTypeAdjustment, 4, entity.ReasonInventoryAdjustment, "Conteo físico mensual", 10},
	{"BRO-002", entity.MovementTypeOut, 6, entity.ReasonSale, "Venta mostrador", 9},
	{"PIN-002", entity.MovementTypeOut, 10, entity.ReasonSale, "Pedido obra Av. Central", 8},
	{"ACC-001", entity.MovementTypeIn, 50, entity.ReasonPurchase, "Reposición proveedor", 7},
	{"PIN-003", entity.MovementTypeOut, 2, entity.ReasonDamaged, "Envases golpeados en bodega", 6},
	{"PIN-001", entity.MovementTypeOut, 4, entity.ReasonSale, "Venta mostrador", 5},
	{"BRO-001", entity.MovementTypeOut, 8, entity.ReasonSale, "Venta mostrador", 4},
	{"PIN-001", entity.MovementTypeIn, 20, entity.ReasonPurchase, "Reposición proveedor", 3},
	{"PIN-003", entity.MovementTypeOut, 3, entity.ReasonSale, "Venta mostrador", 2},
	{"ACC-001", entity.MovementTypeOut, 30, entity.ReasonSale, "Venta mostrador", 1},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)

	now := time.Now()
	categoryIDs := make(map[string]string)
	for _, c := range categories {
		c.ID = uuid.New().String()
		c.CreatedAt = now.AddDate(0, 0, -30)
		c.UpdatedAt = c.CreatedAt
		if err := categoryRepo.Create(&c); err != nil {
			log.Fatal().Err(err).Str("category", c.Name).Msg("crear categoría")
		}
		categoryIDs[c.Name] = c.ID
	}
	log.Info().Int("count", len(categories)).Msg("categorías creadas")

	// Los productos se crean con su stock inicial y el asiento
	// initial_inventory correspondiente; el historial retroactivo se replica
	// después y al final cada producto se actualiza con el stock resultante.
	seeded := make(map[string]*entity.Product)
	for _, sp := range products {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			log.Fatal().Err(err).Str("code", sp.code).Msg("precio inválido")
		}
		createdAt := now.AddDate(0, 0, -25)
		p := &entity.Product{
			ID:          uuid.New().String(),
			Code:        entity.NormalizeCode(sp.code),
			Name:        sp.name,
			Description: sp.description,
			CategoryID:  categoryIDs[sp.category],
			Price:       price,
			Stock:       sp.initialStock,
			MinStock:    sp.minStock,
			Status:      inventory.ComputeStatus(sp.initialStock, sp.minStock),
			Supplier:    sp.supplier,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("code", p.Code).Msg("crear producto")
		}
		seeded[p.Code] = p

		if sp.initialStock > 0 {
			m := &entity.Movement{
				ID:            uuid.New().String(),
				ProductID:     p.ID,
				Type:          entity.MovementTypeIn,
				Quantity:      sp.initialStock,
				Reason:        entity.ReasonInitialInventory,
				Notes:         "Stock inicial del producto",
				PreviousStock: 0,
				NewStock:      sp.initialStock,
				OccurredAt:    createdAt,
				CreatedAt:     createdAt,
			}
			if err := movementRepo.Create(m); err != nil {
				log.Fatal().Err(err).Str("code", p.Code).Msg("crear movimiento inicial")
			}
		}
	}
	log.Info().Int("count", len(products)).Msg("productos creados")

	created := 0
	for _, sm := range movements {
		p := seeded[entity.NormalizeCode(sm.code)]
		prev := p.Stock
		var next int64
		switch sm.typ {
		case entity.MovementTypeIn:
			next = prev + sm.quantity
		case entity.MovementTypeOut:
			if sm.quantity > prev {
				log.Fatal().Str("code", p.Code).Msg("historial descuadrado: salida mayor que el stock")
			}
			next = prev - sm.quantity
		case entity.MovementTypeAdjustment:
			next = sm.quantity
		}
		qty := next - prev
		if qty < 0 {
			qty = -qty
		}
		occurredAt := now.AddDate(0, 0, -sm.daysAgo)
		m := &entity.Movement{
			ID:            uuid.New().String(),
			ProductID:     p.ID,
			Type:          sm.typ,
			Quantity:      qty,
			Reason:        sm.reason,
			Notes:         sm.notes,
			PreviousStock: prev,
			NewStock:      next,
			OccurredAt:    occurredAt,
			CreatedAt:     occurredAt,
		}
		if err := movementRepo.Create(m); err != nil {
			log.Fatal().Err(err).Str("code", p.Code).Msg("crear movimiento")
		}
		p.Stock = next
		p.UpdatedAt = occurredAt
		created++
	}
	log.Info().Int("count", created).Msg("movimientos históricos creados")

	for _, p := range seeded {
		p.Status = inventory.ComputeStatus(p.Stock, p.MinStock)
		if err := productRepo.Update(p); err != nil {
			log.Fatal().Err(err).Str("code", p.Code).Msg("actualizar stock final")
		}
	}
	log.Info().Msg("seed completado")
}
