// Package chart maps an ordered task dataset onto Gantt geometry:
// categories, colors, axis scales, bar layout and hover tooltips.
package chart

import (
	"errors"
	"fmt"
)

// Lookup errors.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDomainLookup     = errors.New("value not in scale domain")
	ErrStaleScale       = errors.New("scale was built for a different dataset")
)

// Construction errors.
var (
	ErrInvalidPadding = errors.New("band padding must be in [0, 1)")
	ErrInvalidColor   = errors.New("invalid color")
	ErrColorIndex     = errors.New("color index out of range")
	ErrInvalidConfig  = errors.New("invalid chart config")
)

// CategoryNotFoundError is returned when a status is not part of the
// category set it is looked up in.
type CategoryNotFoundError struct {
	Status string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("status %q not in category set", e.Status)
}

func (e *CategoryNotFoundError) Unwrap() error { return ErrCategoryNotFound }

// DomainLookupError is returned when a scale is asked for a value outside
// its domain.
type DomainLookupError struct {
	Scale string // "band" or "row"
	Value string
}

func (e *DomainLookupError) Error() string {
	return fmt.Sprintf("%s scale: %q not in domain", e.Scale, e.Value)
}

func (e *DomainLookupError) Unwrap() error { return ErrDomainLookup }
