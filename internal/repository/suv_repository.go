package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/baherjr/OODB-Project/internal/model"
)

// SUVRepo encapsulates all database queries for the suvs subtype table.
type SUVRepo struct {
	db *sql.DB
}

func NewSUVRepo(db *sql.DB) *SUVRepo { return &SUVRepo{db: db} }

const suvCols = `id, vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status,
	body_type, fuel_type, transmission, mileage, engine_size,
	seating_capacity, cargo_capacity, ground_clearance, awd_4wd`

func (r *SUVRepo) scan(row *sql.Row) (*model.SUV, error) {
	var s model.SUV
	err := row.Scan(&s.ID, &s.VehicleID, &s.Make, &s.Model, &s.Year, &s.VIN,
		&s.PurchasePrice, &s.Price, &s.DateAcquired, &s.Status,
		&s.BodyType, &s.FuelType, &s.Transmission, &s.Mileage, &s.EngineSize,
		&s.SeatingCapacity, &s.CargoCapacity, &s.GroundClearance, &s.AWD4WD)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts an SUV row and populates its auto-increment ID.
func (r *SUVRepo) Create(ctx context.Context, s *model.SUV) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO suvs (vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status,
		 body_type, fuel_type, transmission, mileage, engine_size,
		 seating_capacity, cargo_capacity, ground_clearance, awd_4wd)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.VehicleID, s.Make, s.Model, s.Year, s.VIN, s.PurchasePrice, s.Price, s.DateAcquired, s.Status,
		s.BodyType, s.FuelType, s.Transmission, s.Mileage, s.EngineSize,
		s.SeatingCapacity, s.CargoCapacity, s.GroundClearance, s.AWD4WD)
	if err != nil {
		if isDuplicate(err) {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID fetches an SUV by its numeric id or returns ErrNotFound.
func (r *SUVRepo) GetByID(ctx context.Context, id uint64) (*model.SUV, error) {
	return r.scan(r.db.QueryRowContext(ctx, "SELECT "+suvCols+" FROM suvs WHERE id = ?", id))
}

// List returns all SUVs ordered by id.
func (r *SUVRepo) List(ctx context.Context) ([]*model.SUV, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+suvCols+" FROM suvs ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.SUV{}
	for rows.Next() {
		var s model.SUV
		if err := rows.Scan(&s.ID, &s.VehicleID, &s.Make, &s.Model, &s.Year, &s.VIN,
			&s.PurchasePrice, &s.Price, &s.DateAcquired, &s.Status,
			&s.BodyType, &s.FuelType, &s.Transmission, &s.Mileage, &s.EngineSize,
			&s.SeatingCapacity, &s.CargoCapacity, &s.GroundClearance, &s.AWD4WD); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Update overwrites every column with the submitted values and returns the
// refreshed row, or ErrNotFound when the id is unknown.
func (r *SUVRepo) Update(ctx context.Context, s *model.SUV) (*model.SUV, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE suvs SET vehicle_id = ?, make = ?, model = ?, year = ?, vin = ?, purchase_price = ?,
		 price = ?, date_acquired = ?, status = ?, body_type = ?, fuel_type = ?, transmission = ?,
		 mileage = ?, engine_size = ?, seating_capacity = ?, cargo_capacity = ?,
		 ground_clearance = ?, awd_4wd = ? WHERE id = ?`,
		s.VehicleID, s.Make, s.Model, s.Year, s.VIN, s.PurchasePrice, s.Price, s.DateAcquired, s.Status,
		s.BodyType, s.FuelType, s.Transmission, s.Mileage, s.EngineSize,
		s.SeatingCapacity, s.CargoCapacity, s.GroundClearance, s.AWD4WD, s.ID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, s.ID)
}

// Delete removes an SUV and returns the deleted row, or ErrNotFound.
func (r *SUVRepo) Delete(ctx context.Context, id uint64) (*model.SUV, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM suvs WHERE id = ?", id); err != nil {
		return nil, err
	}
	return s, nil
}
