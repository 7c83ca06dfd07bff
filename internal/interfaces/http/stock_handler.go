package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// StockHandler maneja las peticiones HTTP de movimientos de stock (protegido).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Register registra un movimiento manual (entrada, salida o ajuste).
// POST /api/stock/movements
func (h *StockHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateStockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista movimientos con filtro opcional de fechas (inclusivo).
// GET /api/stock/movements?from=YYYY-MM-DD&to=YYYY-MM-DD&limit=&offset=
func (h *StockHandler) List(c *fiber.Ctx) error {
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

// ListByDocument lista los movimientos generados por un documento (p. ej. la
// salida de stock de una factura nacida por conversión).
// GET /api/documents/:id/stock-movements
func (h *StockHandler) ListByDocument(c *fiber.Ctx) error {
	out, err := h.uc.ListByDocument(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return RespondError(c, err)
	}
	return c.JSON(out)
}
