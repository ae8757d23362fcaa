package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/application/usecase"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
)

// CRMHandler etiquetas, perfiles e interacciones de clientes (solo staff).
type CRMHandler struct {
	uc *usecase.CRMUseCase
}

// NewCRMHandler construye el handler.
func NewCRMHandler(uc *usecase.CRMUseCase) *CRMHandler {
	return &CRMHandler{uc: uc}
}

// CreateTag godoc
// @Summary      Crear etiqueta de segmentación
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTagRequest  true  "name, color"
// @Success      201   {object}  dto.TagResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/crm/tags [post]
func (h *CRMHandler) CreateTag(c *fiber.Ctx) error {
	var in dto.CreateTagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateTag(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la etiqueta ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTags godoc
// @Summary      Listar etiquetas
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TagResponse
// @Router       /api/crm/tags [get]
func (h *CRMHandler) ListTags(c *fiber.Ctx) error {
	out, err := h.uc.ListTags()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteTag godoc
// @Summary      Eliminar etiqueta
// @Tags         crm
// @Security     Bearer
// @Param        id  path  int  true  "ID de la etiqueta"
// @Success      204
// @Router       /api/crm/tags/{id} [delete]
func (h *CRMHandler) DeleteTag(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.DeleteTag(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetProfile godoc
// @Summary      Obtener perfil CRM de un cliente (se crea si no existe)
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Param        userId  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/profiles/{userId} [get]
func (h *CRMHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.Params("userId"))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListProfiles godoc
// @Summary      Listar perfiles CRM
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.ProfileResponse
// @Router       /api/crm/profiles [get]
func (h *CRMHandler) ListProfiles(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListProfiles(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Editar notas internas y etiquetas de un perfil
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        userId  path  string  true  "ID del cliente"
// @Param        body    body  dto.UpdateProfileRequest  true  "internal_notes, tag_ids"
// @Success      200  {object}  dto.ProfileResponse
// @Router       /api/crm/profiles/{userId} [put]
func (h *CRMHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProfile(c.Params("userId"), in)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RefreshMetrics godoc
// @Summary      Recalcular métricas del perfil desde las órdenes pagadas
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Param        userId  path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ProfileResponse
// @Router       /api/crm/profiles/{userId}/refresh [post]
func (h *CRMHandler) RefreshMetrics(c *fiber.Ctx) error {
	out, err := h.uc.RefreshMetrics(c.Params("userId"))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateInteraction godoc
// @Summary      Registrar una interacción con un cliente
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInteractionRequest  true  "profile_id, type, subject, description"
// @Success      201   {object}  dto.InteractionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/crm/interactions [post]
func (h *CRMHandler) CreateInteraction(c *fiber.Ctx) error {
	var in dto.CreateInteractionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateInteraction(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "subject es requerido y type debe ser conocido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListInteractions godoc
// @Summary      Listar interacciones de un perfil
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Param        profileId  path   int  true   "ID del perfil"
// @Param        limit      query  int  false  "Límite"   default(20)
// @Param        offset     query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.InteractionResponse
// @Router       /api/crm/profiles/{profileId}/interactions [get]
func (h *CRMHandler) ListInteractions(c *fiber.Ctx) error {
	profileID, err := strconv.ParseInt(c.Params("profileId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "profileId inválido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListInteractions(profileID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
