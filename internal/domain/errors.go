package domain

import "errors"

var (
	// Account errors
	ErrAccountDoesNotExist = errors.New("account does not exist")
	ErrAccountLocked       = errors.New("account is locked")
	ErrInsufficientFunds   = errors.New("insufficient funds")

	// Booking errors
	ErrBookingLocked        = errors.New("booking is locked")
	ErrInvalidTransaction   = errors.New("invalid transaction")
	ErrInvalidTransition    = errors.New("transaction is not allowed")
	ErrMalformedTransaction = errors.New("malformed transaction")
	ErrUnknownTxType        = errors.New("unknown transaction type")
)
