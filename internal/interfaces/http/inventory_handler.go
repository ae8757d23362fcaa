package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/application/inventory"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

// InventoryHandler movimientos y conciliación del libro de inventario (solo staff).
type InventoryHandler struct {
	apply     *inventory.ApplyMovementUseCase
	reconcile *inventory.ReconcileUseCase
	movRepo   repository.InventoryMovementRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	apply *inventory.ApplyMovementUseCase,
	reconcile *inventory.ReconcileUseCase,
	movRepo repository.InventoryMovementRepository,
) *InventoryHandler {
	return &InventoryHandler{apply: apply, reconcile: reconcile, movRepo: movRepo}
}

// ApplyMovement godoc
// @Summary      Aplicar movimiento de inventario (IN, OUT, ADJUST)
// @Description  OUT recorta en cero sin rechazar; ADJUST fija el stock absoluto.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementRequest  true  "product_id, variation_id (opcional), type, quantity, reason"
// @Success      201   {object}  dto.ApplyMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) ApplyMovement(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	newStock, err := h.apply.Apply(c.Context(), inventory.MovementInput{
		ProductID:   in.ProductID,
		VariationID: in.VariationID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		UserID:      GetUserID(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser IN/OUT/ADJUST, quantity >= 0 y reason no vacío"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o variación no encontrado"})
		}
		if errors.Is(err, domain.ErrStockUntracked) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_UNTRACKED", Message: "el producto no lleva control de stock"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ApplyMovementResponse{
		ProductID:   in.ProductID,
		VariationID: in.VariationID,
		Stock:       newStock,
	})
}

// ListMovements godoc
// @Summary      Listar el libro de movimientos (dataset exclusivo de staff)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product   query  string  false  "ID de producto"
// @Param        type      query  string  false  "IN, OUT o ADJUST"
// @Param        min_date  query  string  false  "YYYY-MM-DD"
// @Param        max_date  query  string  false  "YYYY-MM-DD"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	criteria, err := listing.ParseMovementCriteria(c.Queries(), GetRole(c))
	if err != nil {
		if handled, resp := filterError(c, err); handled {
			return resp
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	limit, offset := pageParams(c)
	list, err := h.movRepo.List(criteria, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			VariationID: m.VariationID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Reason:      m.Reason,
			UserID:      m.UserID,
			CreatedAt:   m.CreatedAt,
		})
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.NewPage(limit, offset, len(items)),
	})
}

// Reconcile godoc
// @Summary      Conciliar el libro contra el stock vivo de un objetivo
// @Description  Con repair=true escribe el stock recalculado; si no, una divergencia sale como 409.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "product_id, variation_id (opcional), repair"
// @Success      200   {object}  inventory.ReconcileReport
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  inventory.ReconcileReport
// @Router       /api/inventory/reconcile [post]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	report, err := h.reconcile.Reconcile(c.Context(), in.ProductID, in.VariationID, in.Repair)
	if err != nil {
		var cErr *domain.ConsistencyError
		if errors.As(err, &cErr) {
			// Divergencia detectada sin reparar: el reporte completo acompaña el 409.
			return c.Status(fiber.StatusConflict).JSON(report)
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o variación no encontrado"})
		}
		if errors.Is(err, domain.ErrStockUntracked) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_UNTRACKED", Message: "el producto no lleva control de stock"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}
