package entity

import "errors"

var (
	// ErrInput marks failures caused by bad caller or pick-list input. Not retryable.
	ErrInput = errors.New("invalid input")

	// ErrUpstream marks failures of the osu! API (not found, timeout, transport). Retryable.
	ErrUpstream = errors.New("upstream lookup failed")

	ErrUnknownStage    = wrapInput("unknown stage")
	ErrUnknownCategory = wrapInput("unknown category")
	ErrMalformedPick   = wrapInput("malformed pick list row")
	ErrMissingAuthCode = wrapInput("No code provided")

	// ErrNoPickList is a valid stage whose pool has not been published on this server.
	ErrNoPickList = errors.New("no pick list for stage")

	// ErrCorruptPoolCache is returned by pool cache backends when an artifact exists but cannot be decoded.
	ErrCorruptPoolCache = errors.New("pool cache artifact is corrupt")

	ErrRegistrationExists   = errors.New("player is already registered")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrPlayerNotFound       = errors.New("player has not logged in")
)

type inputError struct{ msg string }

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Unwrap() error { return ErrInput }

func wrapInput(msg string) error {
	return &inputError{msg: msg}
}
