package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/conversion"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

// ConversionHandler maneja la conversión de documentos:
// cotización → proforma/factura, proforma → factura (protegido).
type ConversionHandler struct {
	wf *conversion.Workflow
}

// NewConversionHandler construye el handler.
func NewConversionHandler(wf *conversion.Workflow) *ConversionHandler {
	return &ConversionHandler{wf: wf}
}

// Preview godoc
// @Summary      Previsualizar una conversión sin ejecutarla
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Documento origen"
// @Param        body  body  dto.ConvertDocumentRequest true  "Tipo destino y líneas opcionales"
// @Success      200   {object}  dto.ConversionPreviewResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/convert/preview [post]
func (h *ConversionHandler) Preview(c *fiber.Ctx) error {
	var in dto.ConvertDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TargetType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "target_type es requerido"})
	}
	out, err := h.wf.Preview(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// Convert godoc
// @Summary      Convertir un documento (consume consecutivo, marca el origen)
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Documento origen"
// @Param        body  body  dto.ConvertDocumentRequest true  "Tipo destino, líneas opcionales, register_stock"
// @Success      201   {object}  dto.ConversionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/convert [post]
func (h *ConversionHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TargetType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "target_type es requerido"})
	}
	out, err := h.wf.Convert(c.Context(), GetCompanyID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
