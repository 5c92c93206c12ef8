/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrDivisionByZero is returned when a divisor of zero is supplied
	ErrDivisionByZero = errors.New("division by zero")
	
	// ErrNotFound is returned when a key is not present in a store
	ErrNotFound = errors.New("entry not found")
	
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// DivisionByZeroError records the dividend of a rejected division
type DivisionByZeroError struct {
	Dividend int32
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("cannot divide %d by zero", e.Dividend)
}

func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// NotFoundError represents a lookup of an absent key
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewDivisionByZeroError creates a new DivisionByZeroError
func NewDivisionByZeroError(dividend int32) error {
	return &DivisionByZeroError{Dividend: dividend}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entryType, key string) error {
	return &NotFoundError{Type: entryType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsDivisionByZero checks if an error is a division by zero error
func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
