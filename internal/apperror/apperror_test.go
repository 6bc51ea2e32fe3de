package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindsUnwrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"not found", NotFound("store %s not found", "abc"), ErrNotFound},
		{"conflict", Conflict("duplicate record"), ErrConflict},
		{"validation", Validation("quantity cannot be negative"), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.kind)
			}
			for _, other := range []error{ErrNotFound, ErrConflict, ErrValidation} {
				if other != tt.kind && errors.Is(tt.err, other) {
					t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, other)
				}
			}
		})
	}
}

func TestMessageSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("creating store: %w", NotFound("store xyz not found"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("wrapped error lost its kind")
	}
	if got := err.Error(); got != "creating store: store xyz not found" {
		t.Errorf("message = %q", got)
	}
}
