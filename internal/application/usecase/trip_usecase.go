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

// TripUseCase casos de uso de viajes de transporte.
type TripUseCase struct {
	repo repository.TripRepository
}

// NewTripUseCase construye el caso de uso.
func NewTripUseCase(repo repository.TripRepository) *TripUseCase {
	return &TripUseCase{repo: repo}
}

// Create registra un viaje. Montos negativos se rechazan; los ausentes
// quedan en cero y no afectan el P&L.
func (uc *TripUseCase) Create(companyID string, in dto.CreateTripRequest) (*dto.TripResponse, error) {
	for _, amount := range []decimal.Decimal{in.Revenue, in.FuelCost, in.DriverCost, in.MaintenanceCost, in.OtherExpenses} {
		if amount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	trip := &entity.TransportTrip{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		VehicleID:       in.VehicleID,
		VehiclePlate:    in.VehiclePlate,
		DriverName:      in.DriverName,
		Origin:          in.Origin,
		Destination:     in.Destination,
		Date:            date,
		Revenue:         in.Revenue,
		FuelCost:        in.FuelCost,
		DriverCost:      in.DriverCost,
		MaintenanceCost: in.MaintenanceCost,
		OtherExpenses:   in.OtherExpenses,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(trip); err != nil {
		return nil, err
	}
	return entityToTripResponse(trip), nil
}

// GetByID obtiene un viaje, verificando que pertenezca a la empresa.
func (uc *TripUseCase) GetByID(companyID, id string) (*dto.TripResponse, error) {
	trip, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	return entityToTripResponse(trip), nil
}

// List lista viajes de la empresa, opcionalmente acotados por fechas
// (YYYY-MM-DD, inclusivas).
func (uc *TripUseCase) List(companyID, fromStr, toStr string, page dto.PageRequest) (*dto.TripListResponse, error) {
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
	items := make([]dto.TripResponse, 0, len(list))
	for _, trip := range list {
		items = append(items, *entityToTripResponse(trip))
	}
	return &dto.TripListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza los campos presentes de un viaje.
func (uc *TripUseCase) Update(companyID, id string, in dto.UpdateTripRequest) (*dto.TripResponse, error) {
	trip, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.VehiclePlate != nil {
		trip.VehiclePlate = *in.VehiclePlate
	}
	if in.DriverName != nil {
		trip.DriverName = *in.DriverName
	}
	if in.Origin != nil {
		trip.Origin = *in.Origin
	}
	if in.Destination != nil {
		trip.Destination = *in.Destination
	}
	if in.Date != nil {
		trip.Date = *in.Date
	}
	for field, value := range map[*decimal.Decimal]*decimal.Decimal{
		&trip.Revenue:         in.Revenue,
		&trip.FuelCost:        in.FuelCost,
		&trip.DriverCost:      in.DriverCost,
		&trip.MaintenanceCost: in.MaintenanceCost,
		&trip.OtherExpenses:   in.OtherExpenses,
	} {
		if value == nil {
			continue
		}
		if value.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		*field = *value
	}
	if in.Notes != nil {
		trip.Notes = *in.Notes
	}
	trip.UpdatedAt = time.Now()
	if err := uc.repo.Update(trip); err != nil {
		return nil, err
	}
	return entityToTripResponse(trip), nil
}

// Delete elimina un viaje de la empresa.
func (uc *TripUseCase) Delete(companyID, id string) error {
	if _, err := uc.getOwned(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *TripUseCase) getOwned(companyID, id string) (*entity.TransportTrip, error) {
	trip, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, domain.ErrNotFound
	}
	if trip.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return trip, nil
}

func entityToTripResponse(t *entity.TransportTrip) *dto.TripResponse {
	expenses := t.FuelCost.Add(t.DriverCost).Add(t.MaintenanceCost).Add(t.OtherExpenses)
	return &dto.TripResponse{
		ID:              t.ID,
		CompanyID:       t.CompanyID,
		VehicleID:       t.VehicleID,
		VehiclePlate:    t.VehiclePlate,
		DriverName:      t.DriverName,
		Origin:          t.Origin,
		Destination:     t.Destination,
		Date:            t.Date,
		Revenue:         t.Revenue,
		FuelCost:        t.FuelCost,
		DriverCost:      t.DriverCost,
		MaintenanceCost: t.MaintenanceCost,
		OtherExpenses:   t.OtherExpenses,
		Profit:          t.Revenue.Sub(expenses).Round(2),
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
