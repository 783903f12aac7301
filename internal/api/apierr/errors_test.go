package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/foundry/internal/model"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{model.ErrNotAuthenticated, http.StatusUnauthorized},
		{model.ErrNotAdmin, http.StatusForbidden},
		{model.ErrInvalidCredentials, http.StatusUnauthorized},
		{model.ErrUsernameTaken, http.StatusConflict},
		{model.ErrUsernameTooShort, http.StatusBadRequest},
		{model.ErrPasswordTooShort, http.StatusBadRequest},
		{model.ErrItemNotFound, http.StatusNotFound},
		{model.ErrRecipeNotFound, http.StatusNotFound},
		{model.ErrLobbyItemNotFound, http.StatusNotFound},
		{model.ErrListingNotFound, http.StatusNotFound},
		{model.ErrTableNotFound, http.StatusNotFound},
		{model.ErrNotAtTable, http.StatusNotFound},
		{model.ErrStagingEmpty, http.StatusConflict},
		{model.ErrNotInInventory, http.StatusConflict},
		{model.ErrSelfPurchase, http.StatusConflict},
		{model.ErrNotSeller, http.StatusForbidden},
		{model.ErrWrongTablePassword, http.StatusForbidden},
		{errors.New("disk on fire"), http.StatusInternalServerError},
		{NewInvalidRequestError("bad"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, Status(tt.err))
		})
	}
}

func TestWrappedSentinelIsMapped(t *testing.T) {
	err := fmt.Errorf("pickup: %w", model.ErrLobbyItemNotFound)
	assert.Equal(t, http.StatusNotFound, Status(err))
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, model.ErrSelfPurchase)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, CodeSelfPurchase, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("save foundry_items: connection refused"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, CodeInternalError, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "connection refused")
}
