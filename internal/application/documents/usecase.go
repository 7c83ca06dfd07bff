package documents

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/lifecycle"
	"github.com/jhoicas/Gestion-api/internal/domain/numbering"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos
// de documentos y consecutivos. Asignar el número y persistir cabecera
// y líneas es todo-o-nada: un fallo a mitad no consume el consecutivo.
type TxRunner interface {
	RunDocument(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

// NumberingTemplates plantillas de numeración por tipo de documento.
// Vacío usa la plantilla por defecto de internal/domain/numbering.
type NumberingTemplates struct {
	Quotation string
	Proforma  string
	Invoice   string
}

// For devuelve la plantilla efectiva para un tipo de documento.
func (t NumberingTemplates) For(docType string) string {
	var tpl string
	switch docType {
	case entity.DocTypeQuotation:
		tpl = t.Quotation
	case entity.DocTypeProforma:
		tpl = t.Proforma
	case entity.DocTypeInvoice:
		tpl = t.Invoice
	}
	if tpl == "" {
		return numbering.DefaultTemplate(docType)
	}
	return tpl
}

// PDFGenerator renderiza un documento comercial como PDF.
type PDFGenerator interface {
	GenerateDocumentPDF(doc *entity.Document, items []*entity.DocumentItem,
		company *entity.Company, customer *entity.Customer) ([]byte, error)
}

// DocumentUseCase casos de uso del ciclo de vida de documentos comerciales:
// creación con número consecutivo, consulta, edición de borradores,
// transiciones de estado y eliminación.
type DocumentUseCase struct {
	txRunner     TxRunner
	docRepo      repository.DocumentRepository
	seqRepo      repository.SequenceRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	pmRepo       repository.PaymentMethodRepository
	pdfGen       PDFGenerator
	templates    NumberingTemplates
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	seqRepo repository.SequenceRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	pmRepo repository.PaymentMethodRepository,
	pdfGen PDFGenerator,
	templates NumberingTemplates,
) *DocumentUseCase {
	return &DocumentUseCase{
		txRunner:     txRunner,
		docRepo:      docRepo,
		seqRepo:      seqRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		pmRepo:       pmRepo,
		pdfGen:       pdfGen,
		templates:    templates,
	}
}

// BuildItems valida las líneas de una petición y las convierte en entidades
// con descuento, impuesto y total recalculados. Devuelve domain.ErrInvalidInput
// ante cantidades no positivas, precios negativos o porcentajes fuera de 0–100.
func BuildItems(documentID string, reqs []dto.DocumentItemRequest) ([]*entity.DocumentItem, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	hundred := decimal.NewFromInt(100)
	items := make([]*entity.DocumentItem, 0, len(reqs))
	for _, req := range reqs {
		if req.Description == "" {
			return nil, domain.ErrInvalidInput
		}
		if !req.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if req.UnitPrice.LessThan(decimal.Zero) || req.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if req.DiscountPercentage.LessThan(decimal.Zero) || req.DiscountPercentage.GreaterThan(hundred) {
			return nil, domain.ErrInvalidInput
		}
		if req.TaxPercentage.LessThan(decimal.Zero) || req.TaxPercentage.GreaterThan(hundred) {
			return nil, domain.ErrInvalidInput
		}
		item := &entity.DocumentItem{
			ID:                 uuid.New().String(),
			DocumentID:         documentID,
			ProductID:          req.ProductID,
			Description:        req.Description,
			Quantity:           req.Quantity,
			UnitPrice:          req.UnitPrice,
			UnitCost:           req.UnitCost,
			DiscountPercentage: req.DiscountPercentage,
			TaxPercentage:      req.TaxPercentage,
		}
		item.Recalculate()
		items = append(items, item)
	}
	return items, nil
}

// SumTotals acumula subtotal, impuesto y total de un conjunto de líneas.
// El subtotal es la base gravable (bruto menos descuento).
func SumTotals(items []*entity.DocumentItem) (subtotal, tax, total decimal.Decimal) {
	for _, it := range items {
		base := it.Quantity.Mul(it.UnitPrice).Sub(it.DiscountAmount)
		subtotal = subtotal.Add(base)
		tax = tax.Add(it.TaxAmount)
		total = total.Add(it.LineTotal)
	}
	return subtotal.Round(2), tax.Round(2), total.Round(2)
}

// Create crea un documento en borrador con su número consecutivo asignado.
// El número nunca llega en la petición; lo entrega el consecutivo de la
// empresa dentro de la misma transacción que inserta cabecera y líneas.
func (uc *DocumentUseCase) Create(ctx context.Context, companyID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if in.Type != entity.DocTypeQuotation && in.Type != entity.DocTypeProforma && in.Type != entity.DocTypeInvoice {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.PaymentMethodID != "" {
		pm, err := uc.pmRepo.GetByID(in.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		if pm == nil || pm.CompanyID != companyID {
			return nil, domain.ErrForeignKey
		}
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	doc := &entity.Document{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		CustomerID:      in.CustomerID,
		Type:            in.Type,
		Date:            date,
		ValidUntil:      in.ValidUntil,
		DueDate:         in.DueDate,
		Status:          entity.StatusDraft,
		Notes:           in.Notes,
		PaymentMethodID: in.PaymentMethodID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	items, err := BuildItems(doc.ID, in.Items)
	if err != nil {
		return nil, err
	}
	doc.Subtotal, doc.TaxAmount, doc.TotalAmount = SumTotals(items)

	err = uc.txRunner.RunDocument(ctx, func(docRepo repository.DocumentRepository, seqRepo repository.SequenceRepository) error {
		seq, err := seqRepo.Next(companyID, doc.Type, date.Year())
		if err != nil {
			return err
		}
		number, err := numbering.Format(uc.templates.For(doc.Type), date, seq)
		if err != nil {
			return err
		}
		doc.Number = number
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, it := range items {
			if err := docRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToResponse(doc, items)
	resp.CustomerName = customer.Name
	return resp, nil
}

// GetByID obtiene un documento con sus líneas. Verifica pertenencia a la empresa.
func (uc *DocumentUseCase) GetByID(companyID, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.docRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(doc, items)
	if customer, err := uc.customerRepo.GetByID(doc.CustomerID); err == nil && customer != nil {
		resp.CustomerName = customer.Name
	}
	return resp, nil
}

// List lista documentos de la empresa con filtros por tipo, estado,
// cliente y rango de fechas (inclusive, formato YYYY-MM-DD).
func (uc *DocumentUseCase) List(companyID string, in dto.ListDocumentsRequest) (*dto.DocumentListResponse, error) {
	in.DefaultPage()
	filter := repository.DocumentFilter{
		Type:       in.Type,
		Status:     in.Status,
		CustomerID: in.CustomerID,
	}
	if in.From != "" {
		from, err := time.Parse("2006-01-02", in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &from
	}
	if in.To != "" {
		to, err := time.Parse("2006-01-02", in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// fin de día para que el rango sea inclusivo sobre timestamps
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}
	list, err := uc.docRepo.ListByCompany(companyID, filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, doc := range list {
		items = append(items, *ToResponse(doc, nil))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Update edita cabecera y/o líneas de un documento. Solo los borradores
// son editables; un documento ya enviado devuelve domain.ErrConflict.
// Items nil conserva las líneas; una lista las reemplaza y recalcula totales.
func (uc *DocumentUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if doc.Status != entity.StatusDraft {
		return nil, domain.ErrConflict
	}

	if in.CustomerID != nil && *in.CustomerID != doc.CustomerID {
		customer, err := uc.customerRepo.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || customer.CompanyID != companyID {
			return nil, domain.ErrForeignKey
		}
		doc.CustomerID = *in.CustomerID
	}
	if in.PaymentMethodID != nil {
		if *in.PaymentMethodID != "" {
			pm, err := uc.pmRepo.GetByID(*in.PaymentMethodID)
			if err != nil {
				return nil, err
			}
			if pm == nil || pm.CompanyID != companyID {
				return nil, domain.ErrForeignKey
			}
		}
		doc.PaymentMethodID = *in.PaymentMethodID
	}
	if in.Date != nil {
		doc.Date = *in.Date
	}
	if in.ValidUntil != nil {
		doc.ValidUntil = in.ValidUntil
	}
	if in.DueDate != nil {
		doc.DueDate = in.DueDate
	}
	if in.Notes != nil {
		doc.Notes = *in.Notes
	}

	var items []*entity.DocumentItem
	if in.Items != nil {
		items, err = BuildItems(doc.ID, in.Items)
		if err != nil {
			return nil, err
		}
		doc.Subtotal, doc.TaxAmount, doc.TotalAmount = SumTotals(items)
	}
	doc.UpdatedAt = time.Now()

	err = uc.txRunner.RunDocument(ctx, func(docRepo repository.DocumentRepository, _ repository.SequenceRepository) error {
		if err := docRepo.UpdateHeader(doc); err != nil {
			return err
		}
		if items != nil {
			return docRepo.ReplaceItems(doc.ID, items)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items, err = uc.docRepo.GetItems(doc.ID)
		if err != nil {
			return nil, err
		}
	}
	return ToResponse(doc, items), nil
}

// ChangeStatus transiciona el estado de un documento según la tabla del
// ciclo de vida. El estado "converted" solo lo asigna el flujo de
// conversión, nunca una transición manual. La actualización usa guarda
// optimista: si otro actor cambió el estado, devuelve domain.ErrConflict.
func (uc *DocumentUseCase) ChangeStatus(companyID, id string, in dto.ChangeStatusRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Status == entity.StatusConverted {
		return nil, domain.ErrInvalidTransition
	}
	if err := lifecycle.Transition(doc.Type, doc.Status, in.Status); err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.docRepo.UpdateStatus(id, doc.Status, in.Status, "", now); err != nil {
		return nil, err
	}
	doc.Status = in.Status
	doc.UpdatedAt = now
	return ToResponse(doc, nil), nil
}

// Delete elimina un documento en borrador junto con sus líneas.
// Documentos con número ya circulado (no-borrador) no se eliminan.
func (uc *DocumentUseCase) Delete(companyID, id string) error {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if doc.CompanyID != companyID {
		return domain.ErrForbidden
	}
	if doc.Status != entity.StatusDraft {
		return domain.ErrConflict
	}
	return uc.docRepo.Delete(id)
}

// NextNumber previsualiza el próximo número de un tipo de documento.
// Es orientativo: el número definitivo se asigna al crear, dentro de
// la transacción, y puede diferir bajo concurrencia.
func (uc *DocumentUseCase) NextNumber(companyID, docType string) (*dto.NextNumberResponse, error) {
	if docType != entity.DocTypeQuotation && docType != entity.DocTypeProforma && docType != entity.DocTypeInvoice {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	current, err := uc.seqRepo.Current(companyID, docType, now.Year())
	if err != nil {
		return nil, err
	}
	number, err := numbering.Format(uc.templates.For(docType), now, current+1)
	if err != nil {
		return nil, err
	}
	return &dto.NextNumberResponse{Type: docType, Number: number}, nil
}

// GeneratePDF renderiza el documento como PDF con los datos de la
// empresa y el cliente.
func (uc *DocumentUseCase) GeneratePDF(companyID, id string) ([]byte, string, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}
	if doc.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}
	items, err := uc.docRepo.GetItems(id)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", err
	}
	customer, err := uc.customerRepo.GetByID(doc.CustomerID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.pdfGen.GenerateDocumentPDF(doc, items, company, customer)
	if err != nil {
		return nil, "", err
	}
	return pdf, doc.Number + ".pdf", nil
}

// ToResponse convierte un documento y sus líneas al DTO de respuesta.
func ToResponse(doc *entity.Document, items []*entity.DocumentItem) *dto.DocumentResponse {
	if doc == nil {
		return nil
	}
	resp := &dto.DocumentResponse{
		ID:              doc.ID,
		CompanyID:       doc.CompanyID,
		CustomerID:      doc.CustomerID,
		Type:            doc.Type,
		Number:          doc.Number,
		Date:            doc.Date,
		ValidUntil:      doc.ValidUntil,
		DueDate:         doc.DueDate,
		Status:          doc.Status,
		Subtotal:        doc.Subtotal,
		TaxAmount:       doc.TaxAmount,
		TotalAmount:     doc.TotalAmount,
		Notes:           doc.Notes,
		PaymentMethodID: doc.PaymentMethodID,
		SourceID:        doc.SourceID,
		ConvertedToID:   doc.ConvertedToID,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.DocumentItemResponse{
			ID:                 it.ID,
			ProductID:          it.ProductID,
			Description:        it.Description,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice,
			UnitCost:           it.UnitCost,
			DiscountPercentage: it.DiscountPercentage,
			DiscountAmount:     it.DiscountAmount,
			TaxPercentage:      it.TaxPercentage,
			TaxAmount:          it.TaxAmount,
			LineTotal:          it.LineTotal,
		})
	}
	return resp
}
