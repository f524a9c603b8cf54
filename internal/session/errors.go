package session

import "errors"

var (
	// ErrEmptyInput is returned for blank input; the caller ignores it silently.
	ErrEmptyInput = errors.New("empty input")

	// ErrSearchInFlight is returned when a search is requested while another runs.
	ErrSearchInFlight = errors.New("a search is already in progress")

	// ErrHistoryEmpty is returned when replacing the last entry of an empty history.
	ErrHistoryEmpty = errors.New("history is empty")
)
