package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baherjr/OODB-Project/internal/config"
	"github.com/baherjr/OODB-Project/internal/repository"
	"github.com/baherjr/OODB-Project/internal/utils"
)

func testCfg() config.Config {
	return config.Config{
		JWTSecret:     "test-secret",
		TokenTTLMin:   60,
		BcryptCost:    4,
		AdminEmail:    "boss@example.com",
		AdminPassword: "top-secret",
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(testCfg(), nil)

	for _, body := range []string{
		`{}`,
		`{"username":"ada","email":"ada@example.com","password":"pw"}`,
		`{"username":"ada","first_name":"Ada","last_name":"Lovelace","password":"pw"}`,
		`{"username":"ada","first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/user/register", body)
		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	h := NewAuthHandler(testCfg(), repository.NewCustomerRepo(db))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT seq FROM id_counters").WithArgs("customers").
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(1))
	mock.ExpectExec("INSERT INTO id_counters").WithArgs("customers", 2, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO customers").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'ada@example.com' for key 'customers.email'"))
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodPost, "/api/user/register",
		`{"username":"ada","first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"pw"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, rec)["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginRejectsMissingFields(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(testCfg(), nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/user/login", `{"email":"ada@example.com"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginAdmin(t *testing.T) {
	t.Parallel()
	cfg := testCfg()
	h := NewAuthHandler(cfg, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/user/login",
		`{"email":"boss@example.com","password":"top-secret"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Welcome Admin", body["message"])

	claims, err := utils.VerifyToken(cfg.JWTSecret, body["token"].(string))
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

func TestLoginAdminCaseInsensitiveEmail(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(testCfg(), nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/user/login",
		`{"email":"Boss@Example.com","password":"top-secret"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUserForbiddenForOtherCustomer(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(testCfg(), nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/user/C2", "")
	c.SetParamNames("id")
	c.SetParamValues("C2")
	asCustomer(c, "C1")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEditUserRejectsMissingFields(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(testCfg(), nil)

	c, rec := newJSONContext(t, http.MethodPut, "/api/user/edit/C1", `{"username":"ada"}`)
	c.SetParamNames("id")
	c.SetParamValues("C1")
	asCustomer(c, "C1")

	require.NoError(t, h.EditUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
