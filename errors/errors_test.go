/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDivisionByZeroError(t *testing.T) {
	err := NewDivisionByZeroError(42)
	
	// Test error message
	expected := "cannot divide 42 by zero"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	
	// Test Is method
	if !errors.Is(err, ErrDivisionByZero) {
		t.Error("DivisionByZeroError should match ErrDivisionByZero")
	}
	
	// Test helper function
	if !IsDivisionByZero(err) {
		t.Error("IsDivisionByZero should return true for DivisionByZeroError")
	}
	
	var dz *DivisionByZeroError
	if !errors.As(err, &dz) || dz.Dividend != 42 {
		t.Errorf("Expected dividend 42, got %+v", dz)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("user", "123")
	
	expected := `user with key "123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "log_level",
			message:  `unknown level "loud"`,
			expected: `validation failed for field "log_level": unknown level "loud"`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "empty document",
			expected: "validation failed: empty document",
		},
	}
	
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			
			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}
			
			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewDivisionByZeroError(1)
	wrapped := fmt.Errorf("evaluating expression: %w", original)
	
	if !errors.Is(wrapped, ErrDivisionByZero) {
		t.Error("Wrapped DivisionByZeroError should still match ErrDivisionByZero")
	}
	
	if IsNotFound(wrapped) {
		t.Error("Wrapped DivisionByZeroError should not match ErrNotFound")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrDivisionByZero,
		ErrNotFound,
		ErrInvalidInput,
	}
	
	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
