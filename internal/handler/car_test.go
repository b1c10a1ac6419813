package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCarRequiresVehicleID(t *testing.T) {
	t.Parallel()
	h := NewCarHandler(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/cars/add",
		`{"make":"Honda","model":"Civic","year":2022,"body_type":"hatchback"}`)
	require.NoError(t, h.AddCar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCarRejectsNonNumericID(t *testing.T) {
	t.Parallel()
	h := NewCarHandler(nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/cars/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.GetCar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCarRejectsNonNumericID(t *testing.T) {
	t.Parallel()
	h := NewCarHandler(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/cars/delete/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")
	require.NoError(t, h.DeleteCar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
