package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrMissingContact     = errors.New("either email or phone number is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Session errors
	ErrNoSession      = errors.New("no active session")
	ErrInvalidSession = errors.New("invalid session")

	// Two-factor errors
	ErrChallengeNotFound = errors.New("verification challenge not found")
	ErrInvalidCode       = errors.New("invalid verification code")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Sport catalog errors
	ErrSportNotFound   = errors.New("sport not found")
	ErrSportInUse      = errors.New("sport has registered players")
	ErrSportsNotSeeded = errors.New("sport catalog not initialized")
)
