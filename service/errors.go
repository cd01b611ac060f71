package service

import "errors"

var (
	// ErrValidation covers missing or non-positive request parameters.
	ErrValidation = errors.New("invalid or missing parameters")

	// ErrLoanNotFound is returned when a loan ID resolves to nothing.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrCustomerNotFound is returned when a customer ID resolves to nothing.
	ErrCustomerNotFound = errors.New("customer not found")
)
