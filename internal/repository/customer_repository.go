package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/baherjr/OODB-Project/internal/model"
	"github.com/baherjr/OODB-Project/internal/utils"
)

// CustomerRepo encapsulates all database queries for the customers table.
type CustomerRepo struct {
	db *sql.DB
}

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Create hashes the password, assigns the next C-prefixed identifier and
// inserts the customer in one transaction. A taken email returns
// ErrEmailExists. On success c.CustomerID is populated.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer, password string, cost int) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id, err := NextID(ctx, tx, ClassCustomer)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO customers (customer_id, username, first_name, last_name, email, phone, password_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, c.Username, c.FirstName, c.LastName, c.Email, c.Phone, hash)
	if err != nil {
		if isDuplicate(err) {
			err = ErrEmailExists
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	c.CustomerID = id
	c.PasswordHash = hash
	return nil
}

// GetByEmail fetches a customer by normalized email, hash included, for
// login verification.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var c model.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT customer_id, username, first_name, last_name, email, phone, password_hash
		 FROM customers WHERE email = ? LIMIT 1`, email).
		Scan(&c.CustomerID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID fetches a customer by identifier or returns ErrNotFound.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT customer_id, username, first_name, last_name, email, phone, password_hash
		 FROM customers WHERE customer_id = ? LIMIT 1`, id).
		Scan(&c.CustomerID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update overwrites the customer's profile fields. When newPassword is empty
// the stored hash is kept; otherwise it is replaced. Returns ErrNotFound for
// an unknown identifier and ErrEmailExists when the email collides with
// another customer.
func (r *CustomerRepo) Update(ctx context.Context, c *model.Customer, newPassword string, cost int) error {
	existing, err := r.GetByID(ctx, c.CustomerID)
	if err != nil {
		return err
	}
	hash := existing.PasswordHash
	if newPassword != "" {
		if hash, err = utils.HashPassword(newPassword, cost); err != nil {
			return err
		}
	}
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	_, err = r.db.ExecContext(ctx,
		`UPDATE customers SET username = ?, first_name = ?, last_name = ?, email = ?, phone = ?, password_hash = ?
		 WHERE customer_id = ?`,
		c.Username, c.FirstName, c.LastName, c.Email, c.Phone, hash, c.CustomerID)
	if isDuplicate(err) {
		return ErrEmailExists
	}
	if err != nil {
		return err
	}
	c.PasswordHash = hash
	return nil
}
