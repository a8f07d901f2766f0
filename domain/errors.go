package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRecipeInput is the only way a recipe calculation can fail.
var ErrInvalidRecipeInput = errors.New("invalid recipe input")

// ErrEmptyQuery is returned by troubleshooting search for a blank query.
var ErrEmptyQuery = errors.New("search query is empty")

// InputError names the offending field. It unwraps to ErrInvalidRecipeInput.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %g)", ErrInvalidRecipeInput, e.Field, e.Reason, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidRecipeInput
}
