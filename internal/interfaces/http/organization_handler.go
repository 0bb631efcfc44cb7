package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mantenimiento-pro/internal/application/dto"
	"github.com/tu-usuario/mantenimiento-pro/internal/application/usecase"
)

// OrganizationHandler maneja las peticiones HTTP para organizaciones.
type OrganizationHandler struct {
	uc *usecase.OrganizationUseCase
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear organización
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrganizationRequest  true  "Datos de la organización"
// @Success      201   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/organizations [post]
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener organización por ID
// @Tags         organizations
// @Produce      json
// @Param        id   path  string  true  "ID de la organización"
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/{id} [get]
func (h *OrganizationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "organización no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar organizaciones
// @Tags         organizations
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.OrganizationListResponse
// @Router       /api/organizations [get]
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
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
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
