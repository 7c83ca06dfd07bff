package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/conversion"
	"github.com/jhoicas/Gestion-api/internal/application/documents"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC       *usecase.CompanyUseCase
	CustomerUC      *usecase.CustomerUseCase
	SupplierUC      *usecase.SupplierUseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	TripUC          *usecase.TripUseCase
	StockUC         *usecase.StockUseCase
	DocumentUC      *documents.DocumentUseCase
	ConversionWF    *conversion.Workflow
	ReportUC        *reports.ReportUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Alta de empresa (público: bootstrap del tenant)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Post("/companies", companyHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	adminOrManager := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Empresa del token: lectura y ajustes
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", adminOnly, companyHandler.Update)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOrManager, customerHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOrManager, supplierHandler.Delete)

	// Payment methods
	paymentMethods := protected.Group("/payment-methods")
	pmHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	paymentMethods.Post("/", adminOrManager, pmHandler.Create)
	paymentMethods.Get("/", pmHandler.List)
	paymentMethods.Put("/:id", adminOrManager, pmHandler.Update)
	paymentMethods.Delete("/:id", adminOnly, pmHandler.Delete)

	// Documents: cotizaciones, proformas y facturas
	docs := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	docs.Post("/", documentHandler.Create)
	docs.Get("/", documentHandler.List)
	docs.Get("/next-number", documentHandler.NextNumber)
	docs.Get("/:id", documentHandler.GetByID)
	docs.Put("/:id", documentHandler.Update)
	docs.Delete("/:id", adminOrManager, documentHandler.Delete)
	docs.Patch("/:id/status", documentHandler.ChangeStatus)
	docs.Get("/:id/pdf", documentHandler.PDF)

	// Conversión de documentos
	conversionHandler := NewConversionHandler(deps.ConversionWF)
	docs.Post("/:id/convert/preview", conversionHandler.Preview)
	docs.Post("/:id/convert", conversionHandler.Convert)

	// Stock
	stockHandler := NewStockHandler(deps.StockUC)
	stock := protected.Group("/stock")
	stock.Post("/movements", stockHandler.Register)
	stock.Get("/movements", stockHandler.List)
	docs.Get("/:id/stock-movements", stockHandler.ListByDocument)

	// Trips (transporte)
	trips := protected.Group("/trips")
	tripHandler := NewTripHandler(deps.TripUC)
	trips.Post("/", tripHandler.Create)
	trips.Get("/", tripHandler.List)
	trips.Get("/:id", tripHandler.GetByID)
	trips.Put("/:id", tripHandler.Update)
	trips.Delete("/:id", adminOrManager, tripHandler.Delete)

	// Reportes P&L
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/trading-pl", adminOrManager, reportHandler.TradingPL)
	reportsGroup.Get("/transport-pl", adminOrManager, reportHandler.TransportPL)
}
