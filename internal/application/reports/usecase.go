package reports

import (
	"fmt"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const (
	reportFetchLimit = 5000 // techo de filas cargadas por reporte
	itemFetchWorkers = 8    // lecturas de líneas en paralelo
)

// ReportUseCase arma los reportes de P&L leyendo de los repositorios y
// delegando la agregación en las funciones puras de este paquete.
type ReportUseCase struct {
	docRepo  repository.DocumentRepository
	tripRepo repository.TripRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(docRepo repository.DocumentRepository, tripRepo repository.TripRepository) *ReportUseCase {
	return &ReportUseCase{docRepo: docRepo, tripRepo: tripRepo}
}

// parsePeriod interpreta la ventana de la petición. Sin "from" arranca
// el primer día del mes en curso; sin "to" cierra hoy a las 23:59:59.
func parsePeriod(in dto.ReportPeriodRequest) (start, end time.Time, err error) {
	now := time.Now()
	if in.From == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	} else {
		start, err = time.Parse("2006-01-02", in.From)
		if err != nil {
			return start, end, domain.ErrInvalidInput
		}
	}
	if in.To == "" {
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	} else {
		end, err = time.Parse("2006-01-02", in.To)
		if err != nil {
			return start, end, domain.ErrInvalidInput
		}
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	if end.Before(start) {
		return start, end, domain.ErrInvalidInput
	}
	return start, end, nil
}

// TradingPL calcula el P&L comercial de la empresa en la ventana pedida.
// Las líneas de cada factura se leen en paralelo (acotado) antes de
// entregar todo al agregador puro.
func (uc *ReportUseCase) TradingPL(companyID string, in dto.ReportPeriodRequest) (*dto.TradingPLResponse, error) {
	start, end, err := parsePeriod(in)
	if err != nil {
		return nil, err
	}
	filter := repository.DocumentFilter{Type: entity.DocTypeInvoice, From: &start, To: &end}
	docs, err := uc.docRepo.ListByCompany(companyID, filter, reportFetchLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("trading pl: listar facturas: %w", err)
	}

	type itemsResult struct {
		idx   int
		items []*entity.DocumentItem
		err   error
	}
	resultCh := make(chan itemsResult, len(docs))
	sem := make(chan struct{}, itemFetchWorkers)
	for i, doc := range docs {
		go func(idx int, documentID string) {
			sem <- struct{}{}
			defer func() { <-sem }()
			items, err := uc.docRepo.GetItems(documentID)
			resultCh <- itemsResult{idx: idx, items: items, err: err}
		}(i, doc.ID)
	}

	invoices := make([]Invoice, len(docs))
	for range docs {
		res := <-resultCh
		if res.err != nil {
			return nil, fmt.Errorf("trading pl: líneas de factura: %w", res.err)
		}
		invoices[res.idx] = Invoice{Document: docs[res.idx], Items: res.items}
	}

	resp := CalculateTradingPLMetrics(invoices, start, end)
	return &resp, nil
}

// TransportPL calcula el P&L de transporte de la empresa en la ventana pedida.
func (uc *ReportUseCase) TransportPL(companyID string, in dto.ReportPeriodRequest) (*dto.TransportPLResponse, error) {
	start, end, err := parsePeriod(in)
	if err != nil {
		return nil, err
	}
	trips, err := uc.tripRepo.ListByCompany(companyID, &start, &end, reportFetchLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("transport pl: listar viajes: %w", err)
	}
	resp := CalculateTransportPLMetrics(trips, start, end)
	return &resp, nil
}
