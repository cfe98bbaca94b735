package database

import "errors"

// Set of errors returned when signing and admitting transactions.
var (
	ErrAuthorization        = errors.New("you cannot sign transactions for other wallets")
	ErrAlreadySigned        = errors.New("transaction is already signed")
	ErrMissingSignature     = errors.New("there is no signature in this transaction")
	ErrMalformedTransaction = errors.New("transaction is malformed")
	ErrInvalidTransaction   = errors.New("invalid transactions cannot be added to the chain")
)
