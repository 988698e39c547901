package chart

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorEncoder assigns a color to each category index by interpolating
// between two endpoints in HCL space.
type ColorEncoder struct {
	low  colorful.Color
	high colorful.Color
}

// NewColorEncoder parses the two hex endpoints.
func NewColorEncoder(low, high string) (*ColorEncoder, error) {
	lo, err := colorful.Hex(low)
	if err != nil {
		return nil, fmt.Errorf("%w: low endpoint %q", ErrInvalidColor, low)
	}
	hi, err := colorful.Hex(high)
	if err != nil {
		return nil, fmt.Errorf("%w: high endpoint %q", ErrInvalidColor, high)
	}
	return &ColorEncoder{low: lo, high: hi}, nil
}

// Endpoints returns the normalized low and high colors.
func (e *ColorEncoder) Endpoints() (string, string) {
	return e.low.Hex(), e.high.Hex()
}

// Color returns the color of category i out of n.
// Index 0 is the low endpoint and index n-1 the high endpoint; a single
// category resolves to the low endpoint.
func (e *ColorEncoder) Color(i, n int) (string, error) {
	if n <= 0 || i < 0 || i >= n {
		return "", fmt.Errorf("%w: %d of %d", ErrColorIndex, i, n)
	}
	if n == 1 || i == 0 {
		return e.low.Hex(), nil
	}
	if i == n-1 {
		return e.high.Hex(), nil
	}
	t := float64(i) / float64(n-1)
	return e.low.BlendHcl(e.high, t).Clamped().Hex(), nil
}

// ForStatus resolves status through set and returns its color.
func (e *ColorEncoder) ForStatus(set *CategorySet, status string) (string, error) {
	i, err := set.Index(status)
	if err != nil {
		return "", err
	}
	return e.Color(i, set.Len())
}
