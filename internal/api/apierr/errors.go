package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/foundry/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeUsernameTooShort   = "USERNAME_TOO_SHORT"
	CodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeRecipeNotFound     = "RECIPE_NOT_FOUND"
	CodeLobbyItemNotFound  = "LOBBY_ITEM_NOT_FOUND"
	CodeListingNotFound    = "LISTING_NOT_FOUND"
	CodeTableNotFound      = "TABLE_NOT_FOUND"
	CodeStagingEmpty       = "STAGING_EMPTY"
	CodeNotInInventory     = "NOT_IN_INVENTORY"
	CodeSelfPurchase       = "SELF_PURCHASE"
	CodeNotSeller          = "NOT_SELLER"
	CodeNotAtTable         = "NOT_AT_TABLE"
	CodeWrongPassword      = "WRONG_TABLE_PASSWORD"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status err maps to
func Status(err error) int {
	return toHTTPError(err).status
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Session
	case errors.Is(err, model.ErrNotAuthenticated):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
	case errors.Is(err, model.ErrNotAdmin):
		return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Only the game master can do this"}}
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, model.ErrUsernameTaken):
		return &httpError{http.StatusConflict, APIError{CodeUsernameTaken, "Username is already taken"}}
	case errors.Is(err, model.ErrUsernameTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodeUsernameTooShort, "Username must be at least 3 characters"}}
	case errors.Is(err, model.ErrPasswordTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodePasswordTooShort, "Password must be at least 4 characters"}}

	// World lookups
	case errors.Is(err, model.ErrItemNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeItemNotFound, "Item not found"}}
	case errors.Is(err, model.ErrRecipeNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRecipeNotFound, "Recipe not found"}}
	case errors.Is(err, model.ErrLobbyItemNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLobbyItemNotFound, "Item is no longer in the lobby"}}
	case errors.Is(err, model.ErrListingNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeListingNotFound, "Listing not found"}}
	case errors.Is(err, model.ErrTableNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTableNotFound, "Table not found"}}
	case errors.Is(err, model.ErrNotAtTable):
		return &httpError{http.StatusNotFound, APIError{CodeNotAtTable, "Player is not at this table"}}

	// World rules
	case errors.Is(err, model.ErrStagingEmpty):
		return &httpError{http.StatusConflict, APIError{CodeStagingEmpty, "Staging is empty"}}
	case errors.Is(err, model.ErrNotInInventory):
		return &httpError{http.StatusConflict, APIError{CodeNotInInventory, "Item is not in your inventory"}}
	case errors.Is(err, model.ErrSelfPurchase):
		return &httpError{http.StatusConflict, APIError{CodeSelfPurchase, "You cannot buy your own listing"}}
	case errors.Is(err, model.ErrNotSeller):
		return &httpError{http.StatusForbidden, APIError{CodeNotSeller, "Only the seller can withdraw a listing"}}
	case errors.Is(err, model.ErrWrongTablePassword):
		return &httpError{http.StatusForbidden, APIError{CodeWrongPassword, "Wrong table password"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a 404 for unmatched routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
