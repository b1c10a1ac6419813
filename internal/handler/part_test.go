package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPartRejectsMissingFields(t *testing.T) {
	t.Parallel()
	h := NewPartHandler(nil, nil)

	for _, body := range []string{
		`{}`,
		`{"name":"Oil filter"}`,
		`{"part_id":"P-100"}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/parts/add", body)
		require.NoError(t, h.AddPart(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestAddVehiclePartRejectsBadQuantity(t *testing.T) {
	t.Parallel()
	h := NewPartHandler(nil, nil)

	for _, body := range []string{
		`{"vehicle_id":"V1","part_id":"P-100"}`,
		`{"vehicle_id":"V1","part_id":"P-100","quantity":0}`,
		`{"vehicle_id":"V1","part_id":"P-100","quantity":-2}`,
		`{"part_id":"P-100","quantity":1}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/vehicleParts/add", body)
		require.NoError(t, h.AddVehiclePart(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}
