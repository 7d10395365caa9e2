package domain

import "errors"

// Sentinel errors returned by usecases and repositories. Controllers map these
// to HTTP statuses; the messages are the fixed client-facing catalog.
var (
	ErrMissingAuthHeader = errors.New("missing authorization header")
	ErrInvalidToken      = errors.New("invalid or expired token")

	ErrPlayerNotFound     = errors.New("player not found")
	ErrBrokenAccountState = errors.New("broken account state")
	ErrCurrencyMissing    = errors.New("currency catalog missing")

	ErrItemNotFound  = errors.New("item not found")
	ErrItemInactive  = errors.New("item is not active")
	ErrInvalidPrice  = errors.New("invalid item price")
	ErrNotEnoughCash = errors.New("not enough cash")

	ErrInvalidSlot  = errors.New("invalid slot")
	ErrItemNotOwned = errors.New("item not owned")
	ErrInvalidItem  = errors.New("invalid item for slot")

	ErrInvalidUsernameLength = errors.New("invalid username length")
	ErrInvalidUsernameFormat = errors.New("invalid username format")
	ErrUsernameTaken         = errors.New("username already taken")

	ErrInvalidBody          = errors.New("invalid request body")
	ErrInvalidKills         = errors.New("invalid kills value")
	ErrInvalidPlacement     = errors.New("invalid placement value")
	ErrMatchAlreadyRecorded = errors.New("match already recorded")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
