package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/paintstock-api/internal/application/dto"
	"github.com/jhoicas/paintstock-api/internal/application/inventory"
	"github.com/jhoicas/paintstock-api/internal/domain"
	"github.com/jhoicas/paintstock-api/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Apply godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica una transición de stock (in/out/adjustment) y registra
// @Description  el asiento correspondiente en el libro, de forma atómica.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ApplyMovementRequest  true  "Movimiento a aplicar"
// @Success      201   {object}  dto.ApplyMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movement [post]
func (h *MovementHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ApplyMovement(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Param        product  query  string  false  "ID de producto"
// @Param        type     query  string  false  "Tipo de movimiento"  Enums(in, out, adjustment)
// @Param        from     query  string  false  "Desde (RFC 3339)"
// @Param        to       query  string  false  "Hasta (RFC 3339)"
// @Param        page     query  int     false  "Página (base 1)"  default(1)
// @Param        limit    query  int     false  "Tamaño de página" default(20)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	filter := repository.MovementFilter{
		ProductID: c.Query("product"),
		Type:      c.Query("type"),
	}
	var err error
	if filter.From, err = parseTimeQuery(c, "from"); err != nil {
		return writeError(c, err)
	}
	if filter.To, err = parseTimeQuery(c, "to"); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(filter, page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Consultar un movimiento
// @Tags         movements
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Historial de movimientos de un producto
// @Tags         movements
// @Produce      json
// @Param        productId  path   string  true   "ID del producto"
// @Param        page       query  int     false  "Página (base 1)"  default(1)
// @Param        limit      query  int     false  "Tamaño de página" default(20)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements/product/{productId} [get]
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	out, err := h.uc.ListByProduct(c.Params("productId"), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Today godoc
// @Summary      Movimientos del día en curso
// @Tags         movements
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements/today [get]
func (h *MovementHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas del libro de movimientos
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.MovementStatsResponse
// @Router       /api/movements/stats [get]
func (h *MovementHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "fecha inválida, se espera RFC 3339")
	}
	return &t, nil
}
