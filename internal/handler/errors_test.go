package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baherjr/OODB-Project/internal/repository"
)

func TestFailMapsRepositoryErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{repository.ErrNotFound, http.StatusNotFound, "Vehicle not found"},
		{repository.ErrEmailExists, http.StatusBadRequest, "Email already registered"},
		{repository.ErrConflict, http.StatusBadRequest, "duplicate record"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "disk on fire"},
	}
	for _, tc := range cases {
		c, rec := newJSONContext(t, http.MethodGet, "/", "")
		require.NoError(t, fail(c, tc.err, "Vehicle not found"))
		assert.Equal(t, tc.wantCode, rec.Code)
		assert.Equal(t, tc.wantMsg, decodeBody(t, rec)["error"])
	}
}
