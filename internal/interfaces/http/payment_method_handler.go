package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// PaymentMethodHandler maneja las peticiones HTTP de métodos de pago (protegido).
type PaymentMethodHandler struct {
	uc *usecase.PaymentMethodUseCase
}

// NewPaymentMethodHandler construye el handler.
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

// Create crea un método de pago.
// POST /api/payment-methods
func (h *PaymentMethodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista los métodos de pago. Con ?active=true solo los activos.
// GET /api/payment-methods
func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	onlyActive := c.Query("active") == "true"
	out, err := h.uc.List(GetCompanyID(c), onlyActive)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un método de pago (nombre, estado activo).
// PUT /api/payment-methods/:id
func (h *PaymentMethodHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un método de pago.
// DELETE /api/payment-methods/:id
func (h *PaymentMethodHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return RespondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
