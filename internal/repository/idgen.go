package repository

// Sequential identifier generation for the prefixed entity classes.
// Identifiers look like V1, C12, S305: a one-letter class prefix followed by
// a base-10 sequence number that only ever grows. Allocation goes through a
// dedicated id_counters row locked FOR UPDATE inside the same transaction as
// the insert, so two concurrent creations cannot compute the same number.
// The counter is seeded lazily from the highest identifier already stored in
// the entity table, which keeps pre-existing data working without any
// backfill step.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EntityClass describes one identifier space: its prefix and the table and
// column the identifiers live in.
type EntityClass struct {
	Prefix string
	Table  string
	Column string
}

var (
	ClassVehicle  = EntityClass{Prefix: "V", Table: "vehicles", Column: "vehicle_id"}
	ClassCustomer = EntityClass{Prefix: "C", Table: "customers", Column: "customer_id"}
	ClassSale     = EntityClass{Prefix: "S", Table: "sales", Column: "sale_id"}
)

// ParseSequence extracts the numeric part of an identifier like "V12".
// It returns ErrMalformedID when id does not match <prefix><digits>; a
// non-numeric suffix must never coerce into a usable sequence number.
func ParseSequence(class EntityClass, id string) (uint64, error) {
	if !strings.HasPrefix(id, class.Prefix) || len(id) <= len(class.Prefix) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	n, err := strconv.ParseUint(id[len(class.Prefix):], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	return n, nil
}

// FormatID renders a sequence number as an identifier of the given class.
func FormatID(class EntityClass, seq uint64) string {
	return class.Prefix + strconv.FormatUint(seq, 10)
}

// NextID allocates the next identifier for class. It must be called inside
// the transaction that performs the insert; the row lock on id_counters
// holds until that transaction commits. The primary key on the entity table
// remains the final guard: if two transactions still race on an unseeded
// counter, the later insert fails with a duplicate key.
func NextID(ctx context.Context, tx *sql.Tx, class EntityClass) (string, error) {
	var seq uint64
	err := tx.QueryRowContext(ctx,
		"SELECT seq FROM id_counters WHERE entity = ? FOR UPDATE",
		class.Table).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		if seq, err = seedSequence(ctx, tx, class); err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	}
	seq++
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO id_counters (entity, seq) VALUES (?, ?) ON DUPLICATE KEY UPDATE seq = ?",
		class.Table, seq, seq); err != nil {
		return "", err
	}
	return FormatID(class, seq), nil
}

// seedSequence reads the highest identifier already present in the entity
// table. Ordering is by the numeric suffix so that V10 sorts above V9. An
// empty table seeds zero; a malformed stored identifier propagates as
// ErrMalformedID.
func seedSequence(ctx context.Context, tx *sql.Tx, class EntityClass) (uint64, error) {
	q := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY CAST(SUBSTRING(%s, 2) AS UNSIGNED) DESC LIMIT 1",
		class.Column, class.Table, class.Column)
	var last string
	err := tx.QueryRowContext(ctx, q).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return ParseSequence(class, last)
}
