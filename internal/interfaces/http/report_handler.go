package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
)

// ReportHandler maneja los reportes P&L (protegido).
// Con ?format=csv la respuesta es un adjunto CSV en vez de JSON.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TradingPL godoc
// @Summary      P&L comercial: ingresos, COGS y margen por mes y producto
// @Tags         reports
// @Produce      json
// @Param        from    query  string  false  "YYYY-MM-DD (default: primer día del mes)"
// @Param        to      query  string  false  "YYYY-MM-DD (default: hoy)"
// @Param        format  query  string  false  "csv para exportar"
// @Success      200  {object}  dto.TradingPLResponse
// @Router       /api/reports/trading-pl [get]
func (h *ReportHandler) TradingPL(c *fiber.Ctx) error {
	var in dto.ReportPeriodRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.TradingPL(GetCompanyID(c), in)
	if err != nil {
		return RespondError(c, err)
	}
	if in.Format == "csv" {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="trading_pl_`+out.From+`_`+out.To+`.csv"`)
		if err := reports.WriteTradingCSV(c.Response().BodyWriter(), *out); err != nil {
			return RespondError(c, err)
		}
		return nil
	}
	return c.JSON(out)
}

// TransportPL godoc
// @Summary      P&L de transporte: ingresos y gastos de viajes por mes y vehículo
// @Tags         reports
// @Produce      json
// @Param        from    query  string  false  "YYYY-MM-DD (default: primer día del mes)"
// @Param        to      query  string  false  "YYYY-MM-DD (default: hoy)"
// @Param        format  query  string  false  "csv para exportar"
// @Success      200  {object}  dto.TransportPLResponse
// @Router       /api/reports/transport-pl [get]
func (h *ReportHandler) TransportPL(c *fiber.Ctx) error {
	var in dto.ReportPeriodRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.TransportPL(GetCompanyID(c), in)
	if err != nil {
		return RespondError(c, err)
	}
	if in.Format == "csv" {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="transport_pl_`+out.From+`_`+out.To+`.csv"`)
		if err := reports.WriteTransportCSV(c.Response().BodyWriter(), *out); err != nil {
			return RespondError(c, err)
		}
		return nil
	}
	return c.JSON(out)
}
