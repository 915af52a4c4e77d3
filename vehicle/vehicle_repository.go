package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vehicleColumns = `id, owner_id, COALESCE(name, ''), COALESCE(make, ''), COALESCE(model, ''),
            COALESCE(year, 0), COALESCE(location, ''), price_per_day, status, created_at`

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) InsertVehicle(ctx context.Context, vehicle Vehicle) (Vehicle, error) {
	sql := `
            INSERT INTO ridesharex.vehicle(
            id, owner_id, name, make, model, year, location, price_per_day, status)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            RETURNING created_at;
        `

	err := r.pool.QueryRow(ctx, sql,
		vehicle.ID,
		vehicle.OwnerID,
		vehicle.Name,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.Location,
		vehicle.PricePerDay,
		vehicle.Status,
	).Scan(&vehicle.CreatedAt)

	if err != nil {
		return Vehicle{}, fmt.Errorf("failed to insert vehicle: %w", err)
	}

	return vehicle, nil
}

func (r *Repository) GetVehicleByID(ctx context.Context, id string) (Vehicle, error) {
	sql := `SELECT ` + vehicleColumns + ` FROM ridesharex.vehicle WHERE id=$1;`

	vehicle, err := scanVehicle(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Vehicle{}, ErrVehicleNotFound
	}

	if err != nil {
		return Vehicle{}, fmt.Errorf("failed to fetch vehicle with id %v: %w", id, err)
	}

	return vehicle, nil
}

func (r *Repository) GetVehiclesForOwner(ctx context.Context, ownerID string) ([]Vehicle, error) {
	sql := `SELECT ` + vehicleColumns + `
            FROM ridesharex.vehicle
            WHERE owner_id=$1
            ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, sql, ownerID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles for owner '%v': %w", ownerID, err)
	}

	defer rows.Close()

	var vehicles []Vehicle

	for rows.Next() {
		vehicle, err := scanVehicle(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning vehicle row: %w", err)
		}

		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicle rows: %w", err)
	}

	return vehicles, nil
}

func (r *Repository) SetVehicleStatus(ctx context.Context, id string, status Status) error {
	sql := `
            UPDATE ridesharex.vehicle
            SET status=$1
            WHERE id=$2;
        `

	tag, err := r.pool.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update vehicle '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

func scanVehicle(row pgx.Row) (Vehicle, error) {
	var vehicle Vehicle

	err := row.Scan(
		&vehicle.ID,
		&vehicle.OwnerID,
		&vehicle.Name,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Location,
		&vehicle.PricePerDay,
		&vehicle.Status,
		&vehicle.CreatedAt,
	)

	return vehicle, err
}
