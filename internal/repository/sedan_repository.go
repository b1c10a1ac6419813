package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/baherjr/OODB-Project/internal/model"
)

// SedanRepo encapsulates all database queries for the sedans subtype table.
type SedanRepo struct {
	db *sql.DB
}

func NewSedanRepo(db *sql.DB) *SedanRepo { return &SedanRepo{db: db} }

const sedanCols = `id, vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status,
	body_type, fuel_type, transmission, mileage, engine_size, luxury_level`

func (r *SedanRepo) scan(row *sql.Row) (*model.Sedan, error) {
	var s model.Sedan
	err := row.Scan(&s.ID, &s.VehicleID, &s.Make, &s.Model, &s.Year, &s.VIN,
		&s.PurchasePrice, &s.Price, &s.DateAcquired, &s.Status,
		&s.BodyType, &s.FuelType, &s.Transmission, &s.Mileage, &s.EngineSize, &s.LuxuryLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a sedan row and populates its auto-increment ID.
func (r *SedanRepo) Create(ctx context.Context, s *model.Sedan) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sedans (vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status,
		 body_type, fuel_type, transmission, mileage, engine_size, luxury_level)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.VehicleID, s.Make, s.Model, s.Year, s.VIN, s.PurchasePrice, s.Price, s.DateAcquired, s.Status,
		s.BodyType, s.FuelType, s.Transmission, s.Mileage, s.EngineSize, s.LuxuryLevel)
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

// GetByID fetches a sedan by its numeric id or returns ErrNotFound.
func (r *SedanRepo) GetByID(ctx context.Context, id uint64) (*model.Sedan, error) {
	return r.scan(r.db.QueryRowContext(ctx, "SELECT "+sedanCols+" FROM sedans WHERE id = ?", id))
}

// List returns all sedans ordered by id.
func (r *SedanRepo) List(ctx context.Context) ([]*model.Sedan, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+sedanCols+" FROM sedans ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Sedan{}
	for rows.Next() {
		var s model.Sedan
		if err := rows.Scan(&s.ID, &s.VehicleID, &s.Make, &s.Model, &s.Year, &s.VIN,
			&s.PurchasePrice, &s.Price, &s.DateAcquired, &s.Status,
			&s.BodyType, &s.FuelType, &s.Transmission, &s.Mileage, &s.EngineSize, &s.LuxuryLevel); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Update overwrites every column with the submitted values and returns the
// refreshed row, or ErrNotFound when the id is unknown.
func (r *SedanRepo) Update(ctx context.Context, s *model.Sedan) (*model.Sedan, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sedans SET vehicle_id = ?, make = ?, model = ?, year = ?, vin = ?, purchase_price = ?,
		 price = ?, date_acquired = ?, status = ?, body_type = ?, fuel_type = ?, transmission = ?,
		 mileage = ?, engine_size = ?, luxury_level = ? WHERE id = ?`,
		s.VehicleID, s.Make, s.Model, s.Year, s.VIN, s.PurchasePrice, s.Price, s.DateAcquired, s.Status,
		s.BodyType, s.FuelType, s.Transmission, s.Mileage, s.EngineSize, s.LuxuryLevel, s.ID)
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

// Delete removes a sedan and returns the deleted row, or ErrNotFound.
func (r *SedanRepo) Delete(ctx context.Context, id uint64) (*model.Sedan, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sedans WHERE id = ?", id); err != nil {
		return nil, err
	}
	return s, nil
}
