package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mantenimiento-pro/internal/application/dto"
	appparts "github.com/tu-usuario/mantenimiento-pro/internal/application/parts"
	"github.com/tu-usuario/mantenimiento-pro/internal/application/usecase"
	"github.com/tu-usuario/mantenimiento-pro/internal/domain"
)

// PartHandler maneja las peticiones HTTP para repuestos (protegido).
// La creación pasa siempre por el coordinador crear-o-fusionar.
type PartHandler struct {
	upsertUC  *appparts.UpsertPartUseCase
	importUC  *appparts.ImportPartsUseCase
	compactUC *appparts.CompactPartsUseCase
	crudUC    *usecase.PartUseCase
	supplier  *usecase.SupplierUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(
	upsertUC *appparts.UpsertPartUseCase,
	importUC *appparts.ImportPartsUseCase,
	compactUC *appparts.CompactPartsUseCase,
	crudUC *usecase.PartUseCase,
	supplier *usecase.SupplierUseCase,
) *PartHandler {
	return &PartHandler{
		upsertUC:  upsertUC,
		importUC:  importUC,
		compactUC: compactUC,
		crudUC:    crudUC,
		supplier:  supplier,
	}
}

// CreateOrMerge godoc
// @Summary      Crear o fusionar repuesto
// @Description  Si un repuesto existente coincide por SKU, legacy_id o nombre+descripción,
//
//	los campos entrantes se fusionan sobre él (el stock se suma); si no, se crea uno nuevo.
//
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartInputRequest  true  "Datos del repuesto"
// @Success      201   {object}  dto.PartUpsertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts [post]
func (h *PartHandler) CreateOrMerge(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.PartInputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.upsertUC.CreateOrMergeFromRequest(c.Context(), companyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.expandSupplier(&out.Part)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Import godoc
// @Summary      Importar lote de repuestos
// @Description  Procesa los ítems en orden aplicando crear-o-fusionar a cada uno.
//
//	Un ítem fallido se registra y NO aborta el lote (created+merged+failed == total).
//
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportPartsRequest  true  "Ítems a importar, en orden"
// @Success      200   {object}  dto.ImportPartsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/parts/import [post]
func (h *PartHandler) Import(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.ImportPartsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items no puede estar vacío"})
	}
	out := h.importUC.ImportFromRequest(c.Context(), companyID, in)
	return c.JSON(out)
}

// Compact godoc
// @Summary      Compactar repuestos duplicados (mantenimiento, solo admin)
// @Description  Recorre todo el dataset de la organización, agrupa duplicados por SKU y
//
//	por nombre+descripción, pliega cada grupo en el registro más antiguo y borra el resto.
//	Idempotente: una segunda ejecución devuelve groups_processed = 0.
//
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompactPartsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/parts/compact [post]
func (h *PartHandler) Compact(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.compactUC.CompactFromRequest(c.Context(), companyID)
	if err != nil {
		// Solo falla la llamada completa si el listado inicial falló
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener repuesto por ID
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.PartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.crudUC.GetByID(c.Context(), companyID, id)
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
	}
	h.expandSupplier(out)
	return c.JSON(out)
}

// List godoc
// @Summary      Listar repuestos
// @Tags         parts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PartListResponse
// @Router       /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
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
	out, err := h.crudUC.List(c.Context(), companyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar repuesto (sobrescritura de campos, no fusión)
// @Tags         parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del repuesto"
// @Param        body  body  dto.UpdatePartRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.crudUC.Update(c.Context(), companyID, id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
	}
	h.expandSupplier(out)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar repuesto
// @Tags         parts
// @Security     Bearer
// @Param        id  path  string  true  "ID del repuesto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.crudUC.Delete(c.Context(), companyID, id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// expandSupplier adjunta el proveedor referenciado, si existe. La expansión de la
// relación es asunto del caller, no del motor de fusión; un fallo aquí no rompe la respuesta.
func (h *PartHandler) expandSupplier(p *dto.PartResponse) {
	if p == nil || p.SupplierID == "" {
		return
	}
	supplier, err := h.supplier.GetByID(p.CompanyID, p.SupplierID)
	if err != nil || supplier == nil {
		return
	}
	p.Supplier = supplier
}
