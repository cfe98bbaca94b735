// Package errs provides the error types returned to clients of the ledger
// node and the mapping of ledger errors onto them.
package errs

import (
	"errors"
	"net/http"

	"github.com/ardanlabs/nicecoin/foundation/blockchain/database"
)

// Response is the form used for API responses from failures in the API.
type Response struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Trusted is used to pass an error during the request through the
// application with web specific context.
type Trusted struct {
	Err    error
	Status int
}

// NewTrusted wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewTrusted(err error, status int) error {
	return &Trusted{err, status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (re *Trusted) Error() string {
	return re.Err.Error()
}

// Unwrap provides access to the wrapped ledger error.
func (re *Trusted) Unwrap() error {
	return re.Err
}

// IsTrusted checks if an error of type Trusted exists.
func IsTrusted(err error) bool {
	var re *Trusted
	return errors.As(err, &re)
}

// GetTrusted returns a copy of the Trusted pointer.
func GetTrusted(err error) *Trusted {
	var re *Trusted
	if !errors.As(err, &re) {
		return nil
	}
	return re
}

// FromLedger converts a transaction admission error into a trusted error
// with the status code the client should see. Unknown errors are returned
// as they are.
func FromLedger(err error) error {
	switch {
	case errors.Is(err, database.ErrAuthorization):
		return NewTrusted(err, http.StatusForbidden)

	case errors.Is(err, database.ErrInvalidTransaction):
		return NewTrusted(err, http.StatusUnauthorized)

	case errors.Is(err, database.ErrMissingSignature),
		errors.Is(err, database.ErrMalformedTransaction),
		errors.Is(err, database.ErrAlreadySigned):
		return NewTrusted(err, http.StatusBadRequest)
	}

	return err
}
