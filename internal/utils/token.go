// Package utils provides helpers for signed token handling and password
// hashing.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role values carried by a token. An administrative token has Role set to
// RoleAdmin; a customer token instead carries the customer's identifier.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// ErrInvalidToken is returned by VerifyToken for a malformed token, a bad
// signature, an unexpected signing method or expired claims.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the decoded payload of a credential. Exactly one of the two
// identity shapes is present: {Role: admin, Email} for the administrative
// account, or {CustomerID, Email} for a customer.
type Claims struct {
	jwt.RegisteredClaims
	Role       string `json:"role,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	Email      string `json:"email,omitempty"`
}

// IsAdmin reports whether the claims grant administrative access.
func (c *Claims) IsAdmin() bool { return c.Role == RoleAdmin }

// NewAdminToken issues an HS256 token carrying the administrative role.
func NewAdminToken(secret, email string, ttl time.Duration) (string, error) {
	return signToken(secret, Claims{Role: RoleAdmin, Email: email}, ttl)
}

// NewCustomerToken issues an HS256 token carrying a customer identity.
func NewCustomerToken(secret, customerID, email string, ttl time.Duration) (string, error) {
	return signToken(secret, Claims{CustomerID: customerID, Email: email}, ttl)
}

func signToken(secret string, claims Claims, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyToken parses and validates a token and returns its claims. Any
// failure collapses into ErrInvalidToken; callers never need to distinguish
// why a credential was rejected.
func VerifyToken(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
