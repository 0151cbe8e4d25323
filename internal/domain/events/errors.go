package events

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("event not found")

	// ErrUnclassified no es fatal: el evento se excluye de los agregados.
	ErrUnclassified = errors.New("unclassified event")
)

// UnclassifiedError describe qué campo impidió clasificar un evento.
type UnclassifiedError struct {
	ID    string
	Field string
	Value string
}

func (e *UnclassifiedError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("unclassified event %q: missing %s", e.ID, e.Field)
	}
	return fmt.Sprintf("unclassified event %q: unknown %s %q", e.ID, e.Field, e.Value)
}

func (e *UnclassifiedError) Unwrap() error { return ErrUnclassified }
