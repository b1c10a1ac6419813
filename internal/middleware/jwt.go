// Package middleware provides shared request processing: token validation,
// role enforcement, response caching and rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/utils"
)

// Context keys populated by JWTAuth for downstream middleware and handlers.
const (
	ClaimsKey     = "claims"
	RoleKey       = "role"
	CustomerIDKey = "customer_id"
)

// JWTAuth validates a Bearer token and injects its claims into the request
// context. Requests without a valid token are rejected with 401; protected
// routes should wrap this before any role check.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			claims, err := utils.VerifyToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			role := utils.RoleCustomer
			if claims.IsAdmin() {
				role = utils.RoleAdmin
			} else if claims.CustomerID == "" {
				// Neither shape: a signed token with no identity is useless.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(ClaimsKey, claims)
			c.Set(RoleKey, role)
			c.Set(CustomerIDKey, claims.CustomerID)
			return next(c)
		}
	}
}
