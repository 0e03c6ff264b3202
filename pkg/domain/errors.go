package domain

import "errors"

// Common domain errors
var (
	// ErrUnauthorized is returned when no caller identity is present or the
	// caller is not allowed to perform the operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAccountNotFound is returned when the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTransactionNotFound is returned when the referenced transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInsufficientBalance is returned when an account balance cannot cover
	// the requested amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrProvider is returned when the identity provider or the payment
	// processor rejects a request.
	ErrProvider = errors.New("provider error")
	// ErrTransactionAmountMustBePositive is returned for zero or negative amounts.
	ErrTransactionAmountMustBePositive = errors.New("transaction amount must be positive")
)
