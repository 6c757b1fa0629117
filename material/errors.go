package material

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is returned when a handle is zero, was never issued or
	// has already been destroyed.
	ErrInvalidHandle = errors.New("material: invalid handle")

	// ErrInvalidAttributeValue is returned by setters for unknown enum names and
	// out-of-domain values. The material keeps its previous value.
	ErrInvalidAttributeValue = errors.New("material: invalid attribute value")

	// ErrAllocationFailure is returned by Create when the table is full.
	ErrAllocationFailure = errors.New("material: allocation failure")

	// ErrDraftClosed is returned by Draft setters called after Update returned.
	ErrDraftClosed = errors.New("material: draft used outside its update")
)

// AttributeError describes a rejected attribute write.
type AttributeError struct {
	Attribute string
	Value     any
	Reason    string
}

func (e *AttributeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("material: invalid %s %v: %s", e.Attribute, e.Value, e.Reason)
	}
	return fmt.Sprintf("material: invalid %s %v", e.Attribute, e.Value)
}

func (e *AttributeError) Unwrap() error { return ErrInvalidAttributeValue }

func invalid(attribute string, value any, reason string) error {
	return &AttributeError{Attribute: attribute, Value: value, Reason: reason}
}
