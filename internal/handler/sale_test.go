package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSaleRejectsMissingFields(t *testing.T) {
	t.Parallel()
	h := NewSaleHandler(nil)

	for _, body := range []string{
		`{}`,
		`{"vehicle_id":"V1","customer_id":"C1","sale_date":"2025-06-01"}`,
		`{"vehicle_id":"V1","customer_id":"C1","sale_price":19999.99}`,
		`{"vehicle_id":"V1","sale_date":"2025-06-01","sale_price":19999.99}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/sales/add", body)
		asAdmin(c)
		require.NoError(t, h.AddSale(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestAddSaleRejectsBadPaymentMethod(t *testing.T) {
	t.Parallel()
	h := NewSaleHandler(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/sales/add",
		`{"vehicle_id":"V1","customer_id":"C1","sale_date":"2025-06-01","sale_price":19999.99,"payment_method":"barter"}`)
	asAdmin(c)
	require.NoError(t, h.AddSale(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddSaleFinanceRequiresTerm(t *testing.T) {
	t.Parallel()
	h := NewSaleHandler(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/sales/add",
		`{"vehicle_id":"V1","customer_id":"C1","sale_date":"2025-06-01","sale_price":19999.99,"payment_method":"finance"}`)
	asAdmin(c)
	require.NoError(t, h.AddSale(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddSaleCustomerCannotRecordForOthers(t *testing.T) {
	t.Parallel()
	h := NewSaleHandler(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/sales/add",
		`{"vehicle_id":"V1","customer_id":"C1","sale_date":"2025-06-01","sale_price":19999.99,"payment_method":"cash"}`)
	asCustomer(c, "C2")
	require.NoError(t, h.AddSale(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddSaleRequiresAuthentication(t *testing.T) {
	t.Parallel()
	h := NewSaleHandler(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/sales/add",
		`{"vehicle_id":"V1","customer_id":"C1","sale_date":"2025-06-01","sale_price":19999.99,"payment_method":"cash"}`)
	require.NoError(t, h.AddSale(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
