package conversion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/documents"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/lifecycle"
	"github.com/jhoicas/Gestion-api/internal/domain/numbering"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos
// que participan en una conversión. Bloqueo del origen, consecutivo del
// destino, inserción de destino y líneas, movimientos de stock y marca
// de convertido ocurren todo-o-nada: ningún fallo parcial deja un
// destino huérfano ni un origen sin marcar.
type TxRunner interface {
	RunConversion(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		seqRepo repository.SequenceRepository,
		stockRepo repository.StockMovementRepository,
	) error) error
}

// Workflow convierte documentos: cotización→proforma, cotización→factura,
// proforma→factura.
type Workflow struct {
	txRunner     TxRunner
	docRepo      repository.DocumentRepository
	customerRepo repository.CustomerRepository
	templates    documents.NumberingTemplates
}

// NewWorkflow construye el flujo de conversión.
func NewWorkflow(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	customerRepo repository.CustomerRepository,
	templates documents.NumberingTemplates,
) *Workflow {
	return &Workflow{
		txRunner:     txRunner,
		docRepo:      docRepo,
		customerRepo: customerRepo,
		templates:    templates,
	}
}

// validateSource comprueba que el documento puede convertirse al tipo destino.
func validateSource(src *entity.Document, companyID, targetType string) error {
	if src == nil {
		return domain.ErrNotFound
	}
	if src.CompanyID != companyID {
		return domain.ErrForbidden
	}
	if src.Status == entity.StatusConverted || src.ConvertedToID != "" {
		return domain.ErrAlreadyConverted
	}
	if !lifecycle.CanConvertTo(src.Type, targetType) {
		return domain.ErrInvalidConversion
	}
	if !lifecycle.CanConvert(src.Type, src.Status) {
		return domain.ErrInvalidTransition
	}
	return nil
}

// buildTargetItems arma las líneas del destino: la lista de la petición
// reemplaza por completo a las del origen si viene; si no, se copian tal cual.
func buildTargetItems(targetID string, src []*entity.DocumentItem, override []dto.DocumentItemRequest) ([]*entity.DocumentItem, error) {
	if override != nil {
		return documents.BuildItems(targetID, override)
	}
	items := make([]*entity.DocumentItem, 0, len(src))
	for _, it := range src {
		copied := *it
		copied.ID = uuid.New().String()
		copied.DocumentID = targetID
		items = append(items, &copied)
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return items, nil
}

// typeLabel nombre legible de un tipo de documento para los avisos del preview.
func typeLabel(docType string) string {
	switch docType {
	case entity.DocTypeQuotation:
		return "cotización"
	case entity.DocTypeProforma:
		return "proforma"
	case entity.DocTypeInvoice:
		return "factura"
	}
	return docType
}

// Preview calcula qué ocurrirá al confirmar la conversión, sin ejecutarla:
// líneas y totales resultantes más una lista legible de efectos.
func (w *Workflow) Preview(companyID, sourceID string, in dto.ConvertDocumentRequest) (*dto.ConversionPreviewResponse, error) {
	src, err := w.docRepo.GetByID(sourceID)
	if err != nil {
		return nil, err
	}
	if err := validateSource(src, companyID, in.TargetType); err != nil {
		return nil, err
	}
	srcItems, err := w.docRepo.GetItems(sourceID)
	if err != nil {
		return nil, err
	}
	items, err := buildTargetItems("preview", srcItems, in.Items)
	if err != nil {
		return nil, err
	}
	subtotal, tax, total := documents.SumTotals(items)

	effects := []string{
		fmt.Sprintf("Se creará una %s con %d líneas por un total de %s", typeLabel(in.TargetType), len(items), total.StringFixed(2)),
		fmt.Sprintf("La %s %s quedará marcada como convertida y no podrá editarse", typeLabel(src.Type), src.Number),
	}
	if in.Items != nil {
		effects = append(effects, "Las líneas enviadas reemplazarán por completo a las del documento origen")
	}
	if in.TargetType == entity.DocTypeInvoice && in.RegisterStock {
		effects = append(effects, "Se registrarán salidas de stock por cada línea con producto")
	}

	var customerName string
	if customer, err := w.customerRepo.GetByID(src.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}

	return &dto.ConversionPreviewResponse{
		SourceID:     src.ID,
		SourceNumber: src.Number,
		SourceType:   src.Type,
		CustomerName: customerName,
		TargetType:   in.TargetType,
		ItemCount:    len(items),
		Subtotal:     subtotal,
		TaxAmount:    tax,
		TotalAmount:  total,
		Effects:      effects,
	}, nil
}

// Convert ejecuta la conversión en una sola transacción:
//  1. bloquea el origen (FOR UPDATE) y revalida que siga convertible,
//  2. asigna el consecutivo del destino,
//  3. inserta el destino (estado "sent") con sus líneas,
//  4. registra salidas de stock si el destino es factura y se pidió,
//  5. marca el origen como convertido apuntando al destino.
//
// Dos conversiones concurrentes del mismo origen quedan serializadas por
// el bloqueo de fila; la segunda ve el origen ya convertido y falla.
func (w *Workflow) Convert(ctx context.Context, companyID, userID, sourceID string, in dto.ConvertDocumentRequest) (*dto.ConversionResponse, error) {
	var (
		src     *entity.Document
		target  *entity.Document
		items   []*entity.DocumentItem
		created time.Time
	)

	err := w.txRunner.RunConversion(ctx, func(
		docRepo repository.DocumentRepository,
		seqRepo repository.SequenceRepository,
		stockRepo repository.StockMovementRepository,
	) error {
		var err error
		src, err = docRepo.GetByIDForUpdate(sourceID)
		if err != nil {
			return err
		}
		if err := validateSource(src, companyID, in.TargetType); err != nil {
			return err
		}
		srcItems, err := docRepo.GetItems(sourceID)
		if err != nil {
			return err
		}

		created = time.Now()
		targetID := uuid.New().String()
		items, err = buildTargetItems(targetID, srcItems, in.Items)
		if err != nil {
			return err
		}
		subtotal, tax, total := documents.SumTotals(items)

		seq, err := seqRepo.Next(companyID, in.TargetType, created.Year())
		if err != nil {
			return err
		}
		number, err := numbering.Format(w.templates.For(in.TargetType), created, seq)
		if err != nil {
			return err
		}

		notes := in.Notes
		if notes == "" {
			notes = src.Notes
		}
		target = &entity.Document{
			ID:              targetID,
			CompanyID:       companyID,
			CustomerID:      src.CustomerID,
			Type:            in.TargetType,
			Number:          number,
			Date:            created,
			Status:          entity.StatusSent,
			Subtotal:        subtotal,
			TaxAmount:       tax,
			TotalAmount:     total,
			Notes:           notes,
			PaymentMethodID: src.PaymentMethodID,
			SourceID:        src.ID,
			CreatedAt:       created,
			UpdatedAt:       created,
		}
		if err := docRepo.Create(target); err != nil {
			return err
		}
		for _, it := range items {
			if err := docRepo.CreateItem(it); err != nil {
				return err
			}
		}

		if in.TargetType == entity.DocTypeInvoice && in.RegisterStock {
			for _, it := range items {
				if it.ProductID == "" {
					continue
				}
				mov := &entity.StockMovement{
					ID:         uuid.New().String(),
					CompanyID:  companyID,
					ProductID:  it.ProductID,
					Type:       entity.MovementTypeOut,
					Quantity:   it.Quantity,
					DocumentID: target.ID,
					Notes:      "Salida por factura " + number,
					Date:       created,
					CreatedAt:  created,
					CreatedBy:  userID,
				}
				if err := stockRepo.Create(mov); err != nil {
					return err
				}
			}
		}

		return docRepo.UpdateStatus(src.ID, src.Status, entity.StatusConverted, target.ID, created)
	})
	if err != nil {
		return nil, err
	}

	src.Status = entity.StatusConverted
	src.ConvertedToID = target.ID
	src.UpdatedAt = created
	return &dto.ConversionResponse{
		Source: *documents.ToResponse(src, nil),
		Target: *documents.ToResponse(target, items),
	}, nil
}
