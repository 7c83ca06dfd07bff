package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/documents"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

// DocumentHandler maneja las peticiones HTTP de documentos comerciales:
// cotizaciones, proformas y facturas (protegido).
type DocumentHandler struct {
	uc *documents.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *documents.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear documento (cotización, proforma o factura)
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "Cabecera y líneas"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" || in.Type == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id, type y al menos una línea son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene el documento con sus líneas.
// GET /api/documents/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar documentos con filtros
// @Tags         documents
// @Produce      json
// @Param        type        query  string  false  "quotation | proforma | invoice"
// @Param        status      query  string  false  "Estado"
// @Param        customer_id query  string  false  "Cliente"
// @Param        from        query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        to          query  string  false  "YYYY-MM-DD (inclusivo)"
// @Success      200  {object}  dto.DocumentListResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var in dto.ListDocumentsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(GetCompanyID(c), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza cabecera y/o líneas. Solo documentos en borrador.
// PUT /api/documents/:id
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus cambia el estado del documento según su ciclo de vida.
// El estado "converted" nunca se asigna por esta vía; solo la conversión lo hace.
// PATCH /api/documents/:id/status
func (h *DocumentHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.ChangeStatus(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un documento. Solo borradores.
// DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return RespondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NextNumber devuelve el próximo número del consecutivo sin consumirlo.
// GET /api/documents/next-number?type=quotation
func (h *DocumentHandler) NextNumber(c *fiber.Ctx) error {
	docType := c.Query("type")
	if docType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type es requerido"})
	}
	out, err := h.uc.NextNumber(GetCompanyID(c), docType)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// PDF genera el PDF del documento y lo devuelve como adjunto.
// GET /api/documents/:id/pdf
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.GeneratePDF(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return RespondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
