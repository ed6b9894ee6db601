package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
)

// StoreError is a business rejection raised by the store layer and translated
// from a vendor error code into a fixed human-readable message. Anything the
// gateways cannot translate stays a plain error and is reported generically.
type StoreError struct {
	Code    string
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
