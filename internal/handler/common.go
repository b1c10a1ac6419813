// Package handler contains the HTTP handlers for the dealership API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/middleware"
	"github.com/baherjr/OODB-Project/internal/repository"
	"github.com/baherjr/OODB-Project/internal/utils"
)

const dbTimeout = 5 * time.Second

// reqContext bounds a handler's database work with a timeout.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// currentClaims returns the verified claims stored by the JWT middleware,
// or nil on an unauthenticated route.
func currentClaims(c echo.Context) *utils.Claims {
	cl, _ := c.Get(middleware.ClaimsKey).(*utils.Claims)
	return cl
}

// fail translates repository errors into the API's error contract:
// 404 for unknown identifiers, 400 for uniqueness conflicts, and 500 with
// the underlying message for anything unclassified.
func fail(c echo.Context, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFoundMsg})
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already registered"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duplicate record"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
