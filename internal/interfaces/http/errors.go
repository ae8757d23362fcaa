package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/access"
)

// filterError mapea errores de validación de filtros: un PermissionError sale como
// 403 nombrando los parámetros ofensores; un parámetro malformado como 400.
// Devuelve false si el error no es de filtros.
func filterError(c *fiber.Ctx, err error) (bool, error) {
	var permErr *access.PermissionError
	if errors.As(err, &permErr) {
		return true, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN_FILTER", Message: permErr.Error()})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return true, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return false, nil
}

// pageParams lee limit/offset con defaults y cotas.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
