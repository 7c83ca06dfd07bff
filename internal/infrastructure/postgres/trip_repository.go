package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.TripRepository = (*TripRepo)(nil)

// TripRepo implementación de TripRepository (usable con pool o tx).
type TripRepo struct {
	q Querier
}

// NewTripRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTripRepository(q Querier) *TripRepo {
	return &TripRepo{q: q}
}

const tripColumns = `id, company_id, vehicle_id, vehicle_plate, driver_name, origin, destination,
	date, revenue, fuel_cost, driver_cost, maintenance_cost, other_expenses, notes, created_at, updated_at`

// Create persiste un viaje.
func (r *TripRepo) Create(trip *entity.TransportTrip) error {
	query := `
		INSERT INTO transport_trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		trip.ID, trip.CompanyID, trip.VehicleID, trip.VehiclePlate, trip.DriverName,
		trip.Origin, trip.Destination, trip.Date, trip.Revenue, trip.FuelCost,
		trip.DriverCost, trip.MaintenanceCost, trip.OtherExpenses, trip.Notes,
		trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// GetByID obtiene un viaje por ID.
func (r *TripRepo) GetByID(id string) (*entity.TransportTrip, error) {
	query := `SELECT ` + tripColumns + ` FROM transport_trips WHERE id = $1`
	var t entity.TransportTrip
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.VehicleID, &t.VehiclePlate, &t.DriverName,
		&t.Origin, &t.Destination, &t.Date, &t.Revenue, &t.FuelCost,
		&t.DriverCost, &t.MaintenanceCost, &t.OtherExpenses, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return &t, nil
}

// ListByCompany lista viajes de la empresa, opcionalmente acotados por fecha.
func (r *TripRepo) ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.TransportTrip, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + tripColumns + ` FROM transport_trips WHERE company_id = $1`)
	args := []any{companyID}
	if from != nil {
		args = append(args, *from)
		sb.WriteString(" AND date >= $" + strconv.Itoa(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		sb.WriteString(" AND date <= $" + strconv.Itoa(len(args)))
	}
	args = append(args, limit, offset)
	sb.WriteString(fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransportTrip
	for rows.Next() {
		var t entity.TransportTrip
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.VehicleID, &t.VehiclePlate, &t.DriverName,
			&t.Origin, &t.Destination, &t.Date, &t.Revenue, &t.FuelCost,
			&t.DriverCost, &t.MaintenanceCost, &t.OtherExpenses, &t.Notes,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza un viaje.
func (r *TripRepo) Update(trip *entity.TransportTrip) error {
	query := `
		UPDATE transport_trips
		SET vehicle_id = $2, vehicle_plate = $3, driver_name = $4, origin = $5, destination = $6,
		    date = $7, revenue = $8, fuel_cost = $9, driver_cost = $10, maintenance_cost = $11,
		    other_expenses = $12, notes = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		trip.ID, trip.VehicleID, trip.VehiclePlate, trip.DriverName, trip.Origin, trip.Destination,
		trip.Date, trip.Revenue, trip.FuelCost, trip.DriverCost, trip.MaintenanceCost,
		trip.OtherExpenses, trip.Notes, trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update trip: %w", err)
	}
	return nil
}

// Delete elimina un viaje por ID.
func (r *TripRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transport_trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}
