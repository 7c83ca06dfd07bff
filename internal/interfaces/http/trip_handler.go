package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// TripHandler maneja las peticiones HTTP de viajes de transporte (protegido).
type TripHandler struct {
	uc *usecase.TripUseCase
}

// NewTripHandler construye el handler.
func NewTripHandler(uc *usecase.TripUseCase) *TripHandler {
	return &TripHandler{uc: uc}
}

// Create registra un viaje con sus ingresos y gastos.
// POST /api/trips
func (h *TripHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTripRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un viaje.
// GET /api/trips/:id
func (h *TripHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// List lista viajes con filtro opcional de fechas (inclusivo).
// GET /api/trips?from=YYYY-MM-DD&to=YYYY-MM-DD&limit=&offset=
func (h *TripHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.List(GetCompanyID(c), c.Query("from"), c.Query("to"), page)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un viaje.
// PUT /api/trips/:id
func (h *TripHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTripRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un viaje.
// DELETE /api/trips/:id
func (h *TripHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return RespondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
