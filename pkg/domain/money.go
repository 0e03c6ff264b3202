package domain

import (
	"errors"
	"math"
)

// ErrInvalidAmount is returned when a float amount cannot be represented in cents.
var ErrInvalidAmount = errors.New("invalid amount")

const maxSafeMajor = float64(math.MaxInt64 / 100)

// ToCents converts a major-unit amount (e.g. dollars) to cents.
// NaN, infinities, non-positive values and values that would overflow are rejected.
func ToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	if amount <= 0 {
		return 0, ErrTransactionAmountMustBePositive
	}
	if amount > maxSafeMajor {
		return 0, ErrInvalidAmount
	}
	return int64(math.Round(amount * 100)), nil
}

// FromCents converts cents back to a major-unit float for API responses.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
