package repository

import (
	"context"
	"database/sql"

	"github.com/baherjr/OODB-Project/internal/model"
)

// VehiclePartRepo encapsulates queries for the vehicle_parts join table.
type VehiclePartRepo struct {
	db *sql.DB
}

func NewVehiclePartRepo(db *sql.DB) *VehiclePartRepo { return &VehiclePartRepo{db: db} }

// Create links a part to a vehicle. InstalledDate may be nil. A duplicate
// link returns ErrConflict; a reference to a missing vehicle or part
// surfaces as a foreign key error from the driver.
func (r *VehiclePartRepo) Create(ctx context.Context, vp *model.VehiclePart) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicle_parts (vehicle_id, part_id, quantity, installed_date)
		 VALUES (?, ?, ?, ?)`,
		vp.VehicleID, vp.PartID, vp.Quantity, vp.InstalledDate)
	if isDuplicate(err) {
		return ErrConflict
	}
	return err
}

// ListByVehicle returns the parts linked to one vehicle.
func (r *VehiclePartRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]*model.VehiclePart, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT vehicle_id, part_id, quantity, installed_date FROM vehicle_parts WHERE vehicle_id = ?",
		vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.VehiclePart{}
	for rows.Next() {
		var vp model.VehiclePart
		if err := rows.Scan(&vp.VehicleID, &vp.PartID, &vp.Quantity, &vp.InstalledDate); err != nil {
			return nil, err
		}
		out = append(out, &vp)
	}
	return out, rows.Err()
}
