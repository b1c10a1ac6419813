// Package repository contains the data access layer: one repository per
// entity table plus the sequential identifier generator. This file defines
// sentinel errors shared across repositories so that handlers can map
// failure scenarios to HTTP status codes without inspecting driver errors.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a row with the given identifier does not
// exist. Handlers translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering or editing a customer with an
// email that is already taken. Handlers translate this into HTTP 400.
var ErrEmailExists = errors.New("email already registered")

// ErrConflict is returned when an insert collides with an existing primary
// key, for example a client-supplied part id or two concurrent creations
// racing for the same generated identifier.
var ErrConflict = errors.New("conflict")

// ErrMalformedID is returned when a stored identifier does not match the
// <prefix><digits> shape. Legacy rows with corrupted identifiers must fail
// loudly instead of producing a bogus next identifier.
var ErrMalformedID = errors.New("malformed identifier")

// isDuplicate reports whether err is a MySQL duplicate-key error (1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
