package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/baherjr/OODB-Project/internal/model"
)

// CarRepo encapsulates all database queries for the cars subtype table.
// Subtype tables are denormalized: they repeat the vehicle columns alongside
// their category-specific attributes and keep their own auto-increment id.
type CarRepo struct {
	db *sql.DB
}

func NewCarRepo(db *sql.DB) *CarRepo { return &CarRepo{db: db} }

const carCols = `id, vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status,
	body_type, fuel_type, transmission, mileage, engine_size`

func (r *CarRepo) scan(row *sql.Row) (*model.Car, error) {
	var c model.Car
	err := row.Scan(&c.ID, &c.VehicleID, &c.Make, &c.Model, &c.Year, &c.VIN,
		&c.PurchasePrice, &c.Price, &c.DateAcquired, &c.Status,
		&c.BodyType, &c.FuelType, &c.Transmission, &c.Mileage, &c.EngineSize)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a car row and populates its auto-increment ID.
func (r *CarRepo) Create(ctx context.Context, c *model.Car) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO cars (vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status,
		 body_type, fuel_type, transmission, mileage, engine_size)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.VehicleID, c.Make, c.Model, c.Year, c.VIN, c.PurchasePrice, c.Price, c.DateAcquired, c.Status,
		c.BodyType, c.FuelType, c.Transmission, c.Mileage, c.EngineSize)
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
	c.ID = uint64(id)
	return nil
}

// GetByID fetches a car by its numeric id or returns ErrNotFound.
func (r *CarRepo) GetByID(ctx context.Context, id uint64) (*model.Car, error) {
	return r.scan(r.db.QueryRowContext(ctx, "SELECT "+carCols+" FROM cars WHERE id = ?", id))
}

// List returns all cars ordered by id.
func (r *CarRepo) List(ctx context.Context) ([]*model.Car, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+carCols+" FROM cars ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Car{}
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(&c.ID, &c.VehicleID, &c.Make, &c.Model, &c.Year, &c.VIN,
			&c.PurchasePrice, &c.Price, &c.DateAcquired, &c.Status,
			&c.BodyType, &c.FuelType, &c.Transmission, &c.Mileage, &c.EngineSize); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update overwrites every column with the submitted values and returns the
// refreshed row, or ErrNotFound when the id is unknown.
func (r *CarRepo) Update(ctx context.Context, c *model.Car) (*model.Car, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cars SET vehicle_id = ?, make = ?, model = ?, year = ?, vin = ?, purchase_price = ?,
		 price = ?, date_acquired = ?, status = ?, body_type = ?, fuel_type = ?, transmission = ?,
		 mileage = ?, engine_size = ? WHERE id = ?`,
		c.VehicleID, c.Make, c.Model, c.Year, c.VIN, c.PurchasePrice, c.Price, c.DateAcquired, c.Status,
		c.BodyType, c.FuelType, c.Transmission, c.Mileage, c.EngineSize, c.ID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, c.ID)
}

// Delete removes a car and returns the deleted row, or ErrNotFound.
func (r *CarRepo) Delete(ctx context.Context, id uint64) (*model.Car, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM cars WHERE id = ?", id); err != nil {
		return nil, err
	}
	return c, nil
}
