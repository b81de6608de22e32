package swap

import "errors"

// Validation and execution errors of the swap pipeline. The four
// validation errors are synchronous pre-submission failures; ErrSwapFailed
// is the asynchronous outcome of a submitted transaction. None of them is
// fatal to the session, only to the current attempt.
var (
	// ErrInvalidAmount is returned when the amount is empty or does not
	// parse to a strictly positive number.
	ErrInvalidAmount = errors.New("invalid swap amount")
	// ErrSameCurrency is returned when source and destination currency are
	// identical.
	ErrSameCurrency = errors.New("cannot swap to the same currency")
	// ErrInvalidCurrencies is returned when either currency has no known
	// price.
	ErrInvalidCurrencies = errors.New("invalid currencies selected")
	// ErrInsufficientBalance is returned when the requested amount exceeds
	// the ledger balance of the source currency.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSwapFailed is returned when a submitted transaction fails to
	// settle. Balances are guaranteed untouched.
	ErrSwapFailed = errors.New("swap failed")
)
