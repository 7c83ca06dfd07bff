package documents_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/documents"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocRepo struct {
	docs  map[string]*entity.Document
	items map[string][]*entity.DocumentItem
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{
		docs:  make(map[string]*entity.Document),
		items: make(map[string][]*entity.DocumentItem),
	}
}

func (f *fakeDocRepo) Create(doc *entity.Document) error {
	for _, d := range f.docs {
		if d.CompanyID == doc.CompanyID && d.Type == doc.Type && d.Number == doc.Number {
			return domain.ErrDuplicate
		}
	}
	copied := *doc
	f.docs[doc.ID] = &copied
	return nil
}

func (f *fakeDocRepo) CreateItem(item *entity.DocumentItem) error {
	copied := *item
	f.items[item.DocumentID] = append(f.items[item.DocumentID], &copied)
	return nil
}

func (f *fakeDocRepo) GetByID(id string) (*entity.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	copied := *doc
	return &copied, nil
}

func (f *fakeDocRepo) GetByIDForUpdate(id string) (*entity.Document, error) {
	return f.GetByID(id)
}

func (f *fakeDocRepo) GetItems(documentID string) ([]*entity.DocumentItem, error) {
	return f.items[documentID], nil
}

func (f *fakeDocRepo) ListByCompany(companyID string, filter repository.DocumentFilter, limit, offset int) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.docs {
		if d.CompanyID != companyID {
			continue
		}
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" && d.CustomerID != filter.CustomerID {
			continue
		}
		if filter.From != nil && d.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && d.Date.After(*filter.To) {
			continue
		}
		copied := *d
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeDocRepo) UpdateHeader(doc *entity.Document) error {
	if _, ok := f.docs[doc.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *doc
	f.docs[doc.ID] = &copied
	return nil
}

func (f *fakeDocRepo) UpdateStatus(id, expected, next, convertedToID string, updatedAt time.Time) error {
	doc, ok := f.docs[id]
	if !ok || doc.Status != expected {
		return domain.ErrConflict
	}
	doc.Status = next
	if convertedToID != "" {
		doc.ConvertedToID = convertedToID
	}
	doc.UpdatedAt = updatedAt
	return nil
}

func (f *fakeDocRepo) ReplaceItems(documentID string, items []*entity.DocumentItem) error {
	f.items[documentID] = nil
	for _, it := range items {
		copied := *it
		f.items[documentID] = append(f.items[documentID], &copied)
	}
	return nil
}

func (f *fakeDocRepo) Delete(id string) error {
	delete(f.docs, id)
	delete(f.items, id)
	return nil
}

type fakeSeqRepo struct {
	counters map[string]int64
}

func newFakeSeqRepo() *fakeSeqRepo { return &fakeSeqRepo{counters: make(map[string]int64)} }

func (f *fakeSeqRepo) key(companyID, docType string, year int) string {
	return companyID + "/" + docType + "/" + time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}

func (f *fakeSeqRepo) Next(companyID, docType string, year int) (int64, error) {
	k := f.key(companyID, docType, year)
	f.counters[k]++
	return f.counters[k], nil
}

func (f *fakeSeqRepo) Current(companyID, docType string, year int) (int64, error) {
	return f.counters[f.key(companyID, docType, year)], nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(c *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(id string) error          { return nil }

type fakeCompanyRepo struct{ companies map[string]*entity.Company }

func (f *fakeCompanyRepo) Create(c *entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}
func (f *fakeCompanyRepo) Update(c *entity.Company) error { return nil }

type fakePMRepo struct{ methods map[string]*entity.PaymentMethod }

func (f *fakePMRepo) Create(m *entity.PaymentMethod) error { return nil }
func (f *fakePMRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	return f.methods[id], nil
}
func (f *fakePMRepo) ListByCompany(companyID string, onlyActive bool) ([]*entity.PaymentMethod, error) {
	return nil, nil
}
func (f *fakePMRepo) Update(m *entity.PaymentMethod) error { return nil }
func (f *fakePMRepo) Delete(id string) error               { return nil }

// fakeTxRunner ejecuta el callback directamente con los fakes, sin transacción real.
type fakeTxRunner struct {
	docRepo *fakeDocRepo
	seqRepo *fakeSeqRepo
}

func (f *fakeTxRunner) RunDocument(_ context.Context, fn func(
	docRepo repository.DocumentRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	return fn(f.docRepo, f.seqRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA  = "00000000-0000-0000-0000-0000000000aa"
	companyB  = "00000000-0000-0000-0000-0000000000bb"
	custAlice = "00000000-0000-0000-0000-000000000c01"
	custAjena = "00000000-0000-0000-0000-000000000c02"
)

type testEnv struct {
	uc      *documents.DocumentUseCase
	docRepo *fakeDocRepo
	seqRepo *fakeSeqRepo
}

func newTestEnv() *testEnv {
	docRepo := newFakeDocRepo()
	seqRepo := newFakeSeqRepo()
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		custAlice: {ID: custAlice, CompanyID: companyA, Name: "Alice SA"},
		custAjena: {ID: custAjena, CompanyID: companyB, Name: "Otra Empresa"},
	}}
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		companyA: {ID: companyA, Name: "Gestión Demo", Currency: "EUR"},
	}}
	uc := documents.NewDocumentUseCase(
		&fakeTxRunner{docRepo: docRepo, seqRepo: seqRepo},
		docRepo, seqRepo, customers, companies, &fakePMRepo{}, nil,
		documents.NumberingTemplates{},
	)
	return &testEnv{uc: uc, docRepo: docRepo, seqRepo: seqRepo}
}

func quotationRequest() dto.CreateDocumentRequest {
	return dto.CreateDocumentRequest{
		CustomerID: custAlice,
		Type:       entity.DocTypeQuotation,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Items: []dto.DocumentItemRequest{
			{Description: "Servicio de instalación", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
			{Description: "Desplazamiento", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Crear un documento asigna número consecutivo y calcula totales desde las líneas.
func TestCreate_AsignaNumeroYTotales(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)

	assert.Equal(t, "Q-2025-0001", resp.Number)
	assert.Equal(t, entity.StatusDraft, resp.Status)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal: %s", resp.Subtotal)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(250)))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "Alice SA", resp.CustomerName)
}

// Los consecutivos son independientes por tipo de documento.
func TestCreate_ConsecutivoPorTipo(t *testing.T) {
	env := newTestEnv()

	q1, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)
	q2, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)

	inv := quotationRequest()
	inv.Type = entity.DocTypeInvoice
	i1, err := env.uc.Create(context.Background(), companyA, inv)
	require.NoError(t, err)

	assert.Equal(t, "Q-2025-0001", q1.Number)
	assert.Equal(t, "Q-2025-0002", q2.Number)
	assert.Equal(t, "INV-2025-0001", i1.Number)
}

// El impuesto se aplica sobre la base ya descontada.
func TestCreate_DescuentoEImpuesto(t *testing.T) {
	env := newTestEnv()

	req := quotationRequest()
	req.Items = []dto.DocumentItemRequest{{
		Description:        "Producto con IVA",
		Quantity:           decimal.NewFromInt(10),
		UnitPrice:          decimal.NewFromInt(100),
		DiscountPercentage: decimal.NewFromInt(10),
		TaxPercentage:      decimal.NewFromInt(21),
	}}
	resp, err := env.uc.Create(context.Background(), companyA, req)
	require.NoError(t, err)

	// bruto 1000, descuento 100, base 900, IVA 189, total 1089
	require.Len(t, resp.Items, 1)
	it := resp.Items[0]
	assert.True(t, it.DiscountAmount.Equal(decimal.NewFromInt(100)), "descuento: %s", it.DiscountAmount)
	assert.True(t, it.TaxAmount.Equal(decimal.NewFromInt(189)), "impuesto: %s", it.TaxAmount)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(900)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(1089)))
	assert.True(t, resp.TotalAmount.Equal(resp.Subtotal.Add(resp.TaxAmount)), "total == subtotal + impuesto")
}

// Cantidades no positivas o porcentajes fuera de rango se rechazan.
func TestCreate_LineasInvalidas(t *testing.T) {
	env := newTestEnv()

	cases := map[string]dto.DocumentItemRequest{
		"cantidad cero":       {Description: "x", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(1)},
		"cantidad negativa":   {Description: "x", Quantity: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(1)},
		"precio negativo":     {Description: "x", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(-5)},
		"descuento excesivo":  {Description: "x", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1), DiscountPercentage: decimal.NewFromInt(101)},
		"sin descripción":     {Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		"impuesto fuera rango": {Description: "x", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1), TaxPercentage: decimal.NewFromInt(150)},
	}
	for name, item := range cases {
		req := quotationRequest()
		req.Items = []dto.DocumentItemRequest{item}
		_, err := env.uc.Create(context.Background(), companyA, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

// Crear contra un cliente de otra empresa está prohibido.
func TestCreate_ClienteDeOtraEmpresa(t *testing.T) {
	env := newTestEnv()

	req := quotationRequest()
	req.CustomerID = custAjena
	_, err := env.uc.Create(context.Background(), companyA, req)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Consultar un documento de otra empresa está prohibido.
func TestGetByID_OtraEmpresa(t *testing.T) {
	env := newTestEnv()
	created, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)

	_, err = env.uc.GetByID(companyB, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Solo los borradores se pueden editar.
func TestUpdate_SoloBorradores(t *testing.T) {
	env := newTestEnv()
	created, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)

	_, err = env.uc.ChangeStatus(companyA, created.ID, dto.ChangeStatusRequest{Status: entity.StatusSent})
	require.NoError(t, err)

	notes := "cambio tardío"
	_, err = env.uc.Update(context.Background(), companyA, created.ID, dto.UpdateDocumentRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Reemplazar las líneas recalcula los totales del documento.
func TestUpdate_ReemplazaLineas(t *testing.T) {
	env := newTestEnv()
	created, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)

	resp, err := env.uc.Update(context.Background(), companyA, created.ID, dto.UpdateDocumentRequest{
		Items: []dto.DocumentItemRequest{
			{Description: "Única línea", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(40)},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(120)), "subtotal: %s", resp.Subtotal)
	assert.Equal(t, created.Number, resp.Number, "el número no cambia al editar")
}

// Transición válida del ciclo de vida: draft → sent.
func TestChangeStatus_TransicionValida(t *testing.T) {
	env := newTestEnv()
	created, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)

	resp, err := env.uc.ChangeStatus(companyA, created.ID, dto.ChangeStatusRequest{Status: entity.StatusSent})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSent, resp.Status)
}

// Transición inválida: draft → paid no existe para cotizaciones.
func TestChangeStatus_TransicionInvalida(t *testing.T) {
	env := newTestEnv()
	created, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)

	_, err = env.uc.ChangeStatus(companyA, created.ID, dto.ChangeStatusRequest{Status: entity.StatusPaid})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// "converted" solo lo asigna el flujo de conversión, nunca a mano.
func TestChangeStatus_ConvertedProhibidoManual(t *testing.T) {
	env := newTestEnv()
	created, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)

	_, err = env.uc.ChangeStatus(companyA, created.ID, dto.ChangeStatusRequest{Status: entity.StatusSent})
	require.NoError(t, err)
	_, err = env.uc.ChangeStatus(companyA, created.ID, dto.ChangeStatusRequest{Status: entity.StatusConverted})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Eliminar solo borradores; un documento enviado ya circuló.
func TestDelete_SoloBorradores(t *testing.T) {
	env := newTestEnv()
	created, err := env.uc.Create(context.Background(), companyA, quotationRequest())
	require.NoError(t, err)

	_, err = env.uc.ChangeStatus(companyA, created.ID, dto.ChangeStatusRequest{Status: entity.StatusSent})
	require.NoError(t, err)
	assert.ErrorIs(t, env.uc.Delete(companyA, created.ID), domain.ErrConflict)
}

// La vista previa del próximo número no consume el consecutivo.
func TestNextNumber_NoConsume(t *testing.T) {
	env := newTestEnv()

	n1, err := env.uc.NextNumber(companyA, entity.DocTypeQuotation)
	require.NoError(t, err)
	n2, err := env.uc.NextNumber(companyA, entity.DocTypeQuotation)
	require.NoError(t, err)
	assert.Equal(t, n1.Number, n2.Number)

	// misma fecha que la vista previa para que el año del consecutivo coincida
	req := quotationRequest()
	req.Date = time.Now()
	created, err := env.uc.Create(context.Background(), companyA, req)
	require.NoError(t, err)
	assert.Equal(t, n1.Number, created.Number, "la vista previa anticipa el número real")
}

// Los filtros de listado parsean fechas inclusivas.
func TestList_FiltroFechas(t *testing.T) {
	env := newTestEnv()

	req := quotationRequest()
	req.Date = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	_, err := env.uc.Create(context.Background(), companyA, req)
	require.NoError(t, err)

	list, err := env.uc.List(companyA, dto.ListDocumentsRequest{From: "2025-03-10", To: "2025-03-10"})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1, "el día exacto entra en la ventana inclusiva")

	list, err = env.uc.List(companyA, dto.ListDocumentsRequest{From: "2025-03-11"})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	_, err = env.uc.List(companyA, dto.ListDocumentsRequest{From: "no-es-fecha"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
