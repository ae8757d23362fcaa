package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/application/usecase"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
)

// FinanceHandler registro de ingresos y gastos (solo staff).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar transacción financiera
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "type (INCOME/EXPENSE), amount, description"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/transactions [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser INCOME/EXPENSE, amount positivo y description no vacía"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener transacción
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/transactions/{id} [get]
func (h *FinanceHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar transacciones con filtros (dataset exclusivo de staff)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  false  "INCOME o EXPENSE"
// @Param        min_amount  query  string  false  "Monto mínimo"
// @Param        max_amount  query  string  false  "Monto máximo"
// @Param        min_date    query  string  false  "YYYY-MM-DD"
// @Param        max_date    query  string  false  "YYYY-MM-DD"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/finance/transactions [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	criteria, err := listing.ParseTransactionCriteria(c.Queries(), GetRole(c))
	if err != nil {
		if handled, resp := filterError(c, err); handled {
			return resp
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(criteria, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar transacción
// @Tags         finance
// @Security     Bearer
// @Param        id  path  int  true  "ID de la transacción"
// @Success      204
// @Router       /api/finance/transactions/{id} [delete]
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
