package handler

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baherjr/OODB-Project/internal/repository"
)

func TestListVehiclesRejectsBadStatusFilter(t *testing.T) {
	t.Parallel()
	h := NewVehicleHandler(nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/vehicles?status=parked", "")
	require.NoError(t, h.ListVehicles(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddVehicleRejectsMissingFields(t *testing.T) {
	t.Parallel()
	h := NewVehicleHandler(nil)

	for _, body := range []string{
		`{}`,
		`{"make":"Toyota","model":"Corolla","year":2021}`,
		`{"make":"Toyota","model":"Corolla","vin":"JT123"}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/vehicles/add", body)
		require.NoError(t, h.AddVehicle(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestAddVehicleRejectsBadStatus(t *testing.T) {
	t.Parallel()
	h := NewVehicleHandler(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/vehicles/add",
		`{"make":"Toyota","model":"Corolla","year":2021,"vin":"JT123","status":"parked"}`)
	require.NoError(t, h.AddVehicle(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddVehicleDefaultsStatusInStock(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	h := NewVehicleHandler(repository.NewVehicleRepo(db))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT seq FROM id_counters").WithArgs("vehicles").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT vehicle_id FROM vehicles ORDER BY").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO id_counters").WithArgs("vehicles", 1, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO vehicles").
		WithArgs("V1", "Toyota", "Corolla", 2021, "JT123", 0.0, 0.0, "", "in_stock").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	c, rec := newJSONContext(t, http.MethodPost, "/api/vehicles/add",
		`{"make":"Toyota","model":"Corolla","year":2021,"vin":"JT123"}`)
	require.NoError(t, h.AddVehicle(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "V1", decodeBody(t, rec)["vehicle_id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEditVehicleRejectsBadStatus(t *testing.T) {
	t.Parallel()
	h := NewVehicleHandler(nil)

	c, rec := newJSONContext(t, http.MethodPut, "/api/vehicles/edit/V1",
		`{"make":"Toyota","model":"Corolla","year":2021,"vin":"JT123","status":"parked"}`)
	c.SetParamNames("id")
	c.SetParamValues("V1")
	require.NoError(t, h.EditVehicle(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
