package repository

import (
	"context"
	"database/sql"

	"github.com/baherjr/OODB-Project/internal/model"
)

// SaleRepo encapsulates all database queries for the sales table. Sales are
// insert-only: once recorded they are never updated or deleted here.
type SaleRepo struct {
	db *sql.DB
}

func NewSaleRepo(db *sql.DB) *SaleRepo { return &SaleRepo{db: db} }

const saleCols = "sale_id, vehicle_id, customer_id, sale_date, sale_price, payment_method, finance_term, notes"

// Create assigns the next S-prefixed identifier and inserts the sale in one
// transaction. Recording a sale does not touch the vehicle's status; that
// transition stays an explicit vehicle update.
func (r *SaleRepo) Create(ctx context.Context, s *model.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id, err := NextID(ctx, tx, ClassSale)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO sales (sale_id, vehicle_id, customer_id, sale_date, sale_price, payment_method, finance_term, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, s.VehicleID, s.CustomerID, s.SaleDate, s.SalePrice, s.PaymentMethod, s.FinanceTerm, s.Notes)
	if err != nil {
		if isDuplicate(err) {
			err = ErrConflict
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	s.SaleID = id
	return nil
}

// List returns every recorded sale.
func (r *SaleRepo) List(ctx context.Context) ([]*model.Sale, error) {
	return r.query(ctx, "SELECT "+saleCols+" FROM sales")
}

// ListByCustomer returns the sales recorded for one customer.
func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID string) ([]*model.Sale, error) {
	return r.query(ctx, "SELECT "+saleCols+" FROM sales WHERE customer_id = ?", customerID)
}

func (r *SaleRepo) query(ctx context.Context, q string, args ...any) ([]*model.Sale, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Sale{}
	for rows.Next() {
		var s model.Sale
		if err := rows.Scan(&s.SaleID, &s.VehicleID, &s.CustomerID, &s.SaleDate,
			&s.SalePrice, &s.PaymentMethod, &s.FinanceTerm, &s.Notes); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
