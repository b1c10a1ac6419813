package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/baherjr/OODB-Project/internal/model"
)

// PartRepo encapsulates all database queries for the parts table.
type PartRepo struct {
	db *sql.DB
}

func NewPartRepo(db *sql.DB) *PartRepo { return &PartRepo{db: db} }

const partCols = "part_id, name, description, category, part_number, price, quantity_in_stock, reorder_threshold, reorder_quantity, supplier_id"

// Create inserts a part under its client-supplied identifier. A colliding
// part_id returns ErrConflict.
func (r *PartRepo) Create(ctx context.Context, p *model.Part) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO parts (part_id, name, description, category, part_number, price,
		 quantity_in_stock, reorder_threshold, reorder_quantity, supplier_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PartID, p.Name, p.Description, p.Category, p.PartNumber, p.Price,
		p.QuantityInStock, p.ReorderThreshold, p.ReorderQuantity, p.SupplierID)
	if isDuplicate(err) {
		return ErrConflict
	}
	return err
}

// GetByID fetches a part or returns ErrNotFound.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*model.Part, error) {
	var p model.Part
	err := r.db.QueryRowContext(ctx,
		"SELECT "+partCols+" FROM parts WHERE part_id = ?", id).
		Scan(&p.PartID, &p.Name, &p.Description, &p.Category, &p.PartNumber, &p.Price,
			&p.QuantityInStock, &p.ReorderThreshold, &p.ReorderQuantity, &p.SupplierID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every part.
func (r *PartRepo) List(ctx context.Context) ([]*model.Part, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+partCols+" FROM parts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Part{}
	for rows.Next() {
		var p model.Part
		if err := rows.Scan(&p.PartID, &p.Name, &p.Description, &p.Category, &p.PartNumber, &p.Price,
			&p.QuantityInStock, &p.ReorderThreshold, &p.ReorderQuantity, &p.SupplierID); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update overwrites every mutable column with the submitted values. Returns
// ErrNotFound when no row matches.
func (r *PartRepo) Update(ctx context.Context, p *model.Part) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE parts SET name = ?, description = ?, category = ?, part_number = ?, price = ?,
		 quantity_in_stock = ?, reorder_threshold = ?, reorder_quantity = ?, supplier_id = ?
		 WHERE part_id = ?`,
		p.Name, p.Description, p.Category, p.PartNumber, p.Price,
		p.QuantityInStock, p.ReorderThreshold, p.ReorderQuantity, p.SupplierID, p.PartID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Row may exist with identical values; distinguish from a true miss.
		if _, getErr := r.GetByID(ctx, p.PartID); getErr != nil {
			return getErr
		}
	}
	return nil
}

// Delete removes a part or returns ErrNotFound.
func (r *PartRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM parts WHERE part_id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
