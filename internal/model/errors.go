package model

import "errors"

// Common errors used across the application
var (
	// Storage errors
	ErrKeyNotFound = errors.New("key not found")

	// Identity errors
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 4 characters")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrNotAdmin           = errors.New("game master role required")

	// Catalog errors
	ErrItemNotFound   = errors.New("item not found")
	ErrRecipeNotFound = errors.New("recipe not found")

	// Distribution errors
	ErrLobbyItemNotFound = errors.New("lobby item not found")
	ErrStagingEmpty      = errors.New("staging is empty")

	// Auction errors
	ErrListingNotFound = errors.New("auction listing not found")
	ErrNotInInventory  = errors.New("item is not in inventory")
	ErrSelfPurchase    = errors.New("cannot buy your own listing")
	ErrNotSeller       = errors.New("listing belongs to another player")

	// Table errors
	ErrTableNotFound      = errors.New("table not found")
	ErrNotAtTable         = errors.New("player is not at this table")
	ErrWrongTablePassword = errors.New("wrong table password")
)
