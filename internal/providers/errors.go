package providers

import "errors"

var (
	// ErrNotFound indicates a missing provider or checklist item.
	ErrNotFound = errors.New("provider not found")
	// ErrItemNotFound indicates the checklist item key does not exist for the provider.
	ErrItemNotFound = errors.New("checklist item not found")
	// ErrInvalidInput indicates the request failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
