package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrCurrencyMismatch indicates that an amount's currency does not match
// the fixed currency of the column, field or price it was assigned to.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrUnsupportedCurrency indicates that no fraction-digit data exists for
// the requested currency code.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrInvalidInput indicates that submitted text could not be parsed into a
// monetary value.
var ErrInvalidInput = errors.New("invalid input")
