package handler

import (
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/baherjr/OODB-Project/internal/middleware"
	"github.com/baherjr/OODB-Project/internal/utils"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// newJSONContext builds an echo context carrying a JSON body, ready to be
// handed to a handler under test.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// asCustomer attaches verified customer claims the way the JWT middleware
// would.
func asCustomer(c echo.Context, customerID string) {
	c.Set(middleware.ClaimsKey, &utils.Claims{CustomerID: customerID, Email: customerID + "@example.com"})
	c.Set(middleware.RoleKey, utils.RoleCustomer)
	c.Set(middleware.CustomerIDKey, customerID)
}

func asAdmin(c echo.Context) {
	c.Set(middleware.ClaimsKey, &utils.Claims{Role: utils.RoleAdmin, Email: "boss@example.com"})
	c.Set(middleware.RoleKey, utils.RoleAdmin)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
