package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/baherjr/OODB-Project/internal/model"
)

// VehicleRepo encapsulates all database queries for the vehicles table.
type VehicleRepo struct {
	db *sql.DB
}

func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{db: db} }

const vehicleCols = "vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status, created_at, updated_at"

func scanVehicle(row *sql.Row) (*model.Vehicle, error) {
	var v model.Vehicle
	err := row.Scan(&v.VehicleID, &v.Make, &v.Model, &v.Year, &v.VIN,
		&v.PurchasePrice, &v.Price, &v.DateAcquired, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create assigns the next V-prefixed identifier and inserts the vehicle, both
// inside one transaction so the counter increment and the insert commit or
// roll back together. On success v.VehicleID is populated.
func (r *VehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id, err := NextID(ctx, tx, ClassVehicle)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO vehicles (vehicle_id, make, model, year, vin, purchase_price, price, date_acquired, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, v.Make, v.Model, v.Year, v.VIN, v.PurchasePrice, v.Price, v.DateAcquired, v.Status)
	if err != nil {
		if isDuplicate(err) {
			err = ErrConflict
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	v.VehicleID = id
	return nil
}

// GetByID fetches a vehicle or returns ErrNotFound.
func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*model.Vehicle, error) {
	v, err := scanVehicle(r.db.QueryRowContext(ctx,
		"SELECT "+vehicleCols+" FROM vehicles WHERE vehicle_id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, err
}

// List returns vehicles, optionally filtered by status. An empty status or
// the "All" sentinel means no filter.
func (r *VehicleRepo) List(ctx context.Context, status string) ([]*model.Vehicle, error) {
	q := "SELECT " + vehicleCols + " FROM vehicles"
	var args []any
	if status != "" && status != "All" {
		q += " WHERE status = ?"
		args = append(args, status)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Vehicle{}
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.VehicleID, &v.Make, &v.Model, &v.Year, &v.VIN,
			&v.PurchasePrice, &v.Price, &v.DateAcquired, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Update overwrites every mutable column with the submitted values. Partial
// updates are not merged; callers resubmit the full record. Returns
// ErrNotFound when no row matches.
func (r *VehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET make = ?, model = ?, year = ?, vin = ?, purchase_price = ?,
		 price = ?, date_acquired = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE vehicle_id = ?`,
		v.Make, v.Model, v.Year, v.VIN, v.PurchasePrice, v.Price, v.DateAcquired, v.Status, v.VehicleID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Row may exist with identical values; distinguish from a true miss.
		if _, getErr := r.GetByID(ctx, v.VehicleID); getErr != nil {
			return getErr
		}
	}
	return nil
}

// Delete removes a vehicle or returns ErrNotFound. Retired identifiers are
// never reissued; the counter row is left untouched.
func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM vehicles WHERE vehicle_id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
