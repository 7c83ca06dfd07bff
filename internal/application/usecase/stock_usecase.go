package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// StockUseCase casos de uso de movimientos manuales de stock.
// Las salidas por facturación nacen en el flujo de conversión, no aquí.
type StockUseCase struct {
	repo repository.StockMovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockMovementRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Register registra un movimiento manual (entrada, salida o ajuste).
// La cantidad siempre es positiva; el signo lo aporta el tipo.
func (uc *StockUseCase) Register(companyID, userID string, in dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut && in.Type != entity.MovementTypeAdjust {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	movement := &entity.StockMovement{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		Date:      date,
		CreatedAt: now,
		CreatedBy: userID,
	}
	if err := uc.repo.Create(movement); err != nil {
		return nil, err
	}
	return entityToStockMovementResponse(movement), nil
}

// List lista movimientos de la empresa, opcionalmente acotados por fechas.
func (uc *StockUseCase) List(companyID, fromStr, toStr string, page dto.PageRequest) (*dto.StockMovementListResponse, error) {
	page.DefaultPage()
	var from, to *time.Time
	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		from = &parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		to = &parsed
	}
	list, err := uc.repo.ListByCompany(companyID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *entityToStockMovementResponse(m))
	}
	return &dto.StockMovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListByDocument lista los movimientos generados por un documento
// (las salidas de una factura nacida por conversión).
func (uc *StockUseCase) ListByDocument(companyID, documentID string) ([]dto.StockMovementResponse, error) {
	list, err := uc.repo.ListByDocument(documentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		if m.CompanyID != companyID {
			continue
		}
		items = append(items, *entityToStockMovementResponse(m))
	}
	return items, nil
}

func entityToStockMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	return &dto.StockMovementResponse{
		ID:         m.ID,
		CompanyID:  m.CompanyID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		DocumentID: m.DocumentID,
		Notes:      m.Notes,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}
