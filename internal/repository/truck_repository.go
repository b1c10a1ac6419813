package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/baherjr/OODB-Project/internal/model"
)

// TruckRepo encapsulates all database queries for the trucks subtype table.
type TruckRepo struct {
	db *sql.DB
}

func NewTruckRepo(db *sql.DB) *TruckRepo { return &TruckRepo{db: db} }

const truckCols = `id, vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status,
	body_type, fuel_type, transmission, mileage, engine_size,
	bed_length, towing_capacity, payload_capacity, cab_type`

func (r *TruckRepo) scan(row *sql.Row) (*model.Truck, error) {
	var t model.Truck
	err := row.Scan(&t.ID, &t.VehicleID, &t.Make, &t.Model, &t.Year, &t.VIN,
		&t.PurchasePrice, &t.Price, &t.DateAcquired, &t.Status,
		&t.BodyType, &t.FuelType, &t.Transmission, &t.Mileage, &t.EngineSize,
		&t.BedLength, &t.TowingCapacity, &t.PayloadCapacity, &t.CabType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a truck row and populates its auto-increment ID.
func (r *TruckRepo) Create(ctx context.Context, t *model.Truck) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO trucks (vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status,
		 body_type, fuel_type, transmission, mileage, engine_size,
		 bed_length, towing_capacity, payload_capacity, cab_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.VehicleID, t.Make, t.Model, t.Year, t.VIN, t.PurchasePrice, t.Price, t.DateAcquired, t.Status,
		t.BodyType, t.FuelType, t.Transmission, t.Mileage, t.EngineSize,
		t.BedLength, t.TowingCapacity, t.PayloadCapacity, t.CabType)
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
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a truck by its numeric id or returns ErrNotFound.
func (r *TruckRepo) GetByID(ctx context.Context, id uint64) (*model.Truck, error) {
	return r.scan(r.db.QueryRowContext(ctx, "SELECT "+truckCols+" FROM trucks WHERE id = ?", id))
}

// List returns all trucks ordered by id.
func (r *TruckRepo) List(ctx context.Context) ([]*model.Truck, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+truckCols+" FROM trucks ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Truck{}
	for rows.Next() {
		var t model.Truck
		if err := rows.Scan(&t.ID, &t.VehicleID, &t.Make, &t.Model, &t.Year, &t.VIN,
			&t.PurchasePrice, &t.Price, &t.DateAcquired, &t.Status,
			&t.BodyType, &t.FuelType, &t.Transmission, &t.Mileage, &t.EngineSize,
			&t.BedLength, &t.TowingCapacity, &t.PayloadCapacity, &t.CabType); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Update overwrites every column with the submitted values and returns the
// refreshed row, or ErrNotFound when the id is unknown.
func (r *TruckRepo) Update(ctx context.Context, t *model.Truck) (*model.Truck, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE trucks SET vehicle_id = ?, make = ?, model = ?, year = ?, vin = ?, purchase_price = ?,
		 price = ?, date_acquired = ?, status = ?, body_type = ?, fuel_type = ?, transmission = ?,
		 mileage = ?, engine_size = ?, bed_length = ?, towing_capacity = ?,
		 payload_capacity = ?, cab_type = ? WHERE id = ?`,
		t.VehicleID, t.Make, t.Model, t.Year, t.VIN, t.PurchasePrice, t.Price, t.DateAcquired, t.Status,
		t.BodyType, t.FuelType, t.Transmission, t.Mileage, t.EngineSize,
		t.BedLength, t.TowingCapacity, t.PayloadCapacity, t.CabType, t.ID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, t.ID); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, t.ID)
}

// Delete removes a truck and returns the deleted row, or ErrNotFound.
func (r *TruckRepo) Delete(ctx context.Context, id uint64) (*model.Truck, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM trucks WHERE id = ?", id); err != nil {
		return nil, err
	}
	return t, nil
}
