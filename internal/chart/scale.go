package chart

import (
	"fmt"
	"math"
	"strconv"
)

// Tick is one axis tick: a label at a pixel position.
type Tick struct {
	Label string
	Pos   float64
}

// BandScale maps categorical values onto equal-width bands of a pixel range.
type BandScale struct {
	domain  []string
	index   map[string]int
	r0, r1  float64
	padding float64
}

// NewBandScale builds a band scale over domain (repeats dropped) spanning
// [r0, r1]. padding is the fraction of each step left empty.
func NewBandScale(domain []string, r0, r1, padding float64) (*BandScale, error) {
	if math.IsNaN(padding) || padding < 0 || padding >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPadding, padding)
	}
	b := &BandScale{index: make(map[string]int), r0: r0, r1: r1, padding: padding}
	b.domain = distinct(domain, b.index)
	return b, nil
}

// Step returns the distance between the starts of adjacent bands.
func (b *BandScale) Step() float64 {
	if len(b.domain) == 0 {
		return 0
	}
	return (b.r1 - b.r0) / float64(len(b.domain))
}

// Bandwidth returns the width shared by every band.
func (b *BandScale) Bandwidth() float64 {
	return b.Step() * (1 - b.padding)
}

// Scale returns the left edge of v's band.
func (b *BandScale) Scale(v string) (float64, error) {
	i, ok := b.index[v]
	if !ok {
		return 0, &DomainLookupError{Scale: "band", Value: v}
	}
	step := b.Step()
	return b.r0 + float64(i)*step + step*b.padding/2, nil
}

// Domain returns the band values in order.
func (b *BandScale) Domain() []string {
	out := make([]string, len(b.domain))
	copy(out, b.domain)
	return out
}

// Range returns the pixel range.
func (b *BandScale) Range() (float64, float64) {
	return b.r0, b.r1
}

// Ticks returns one tick per band at the band center.
func (b *BandScale) Ticks() []Tick {
	ticks := make([]Tick, 0, len(b.domain))
	half := b.Bandwidth() / 2
	for _, v := range b.domain {
		x, _ := b.Scale(v)
		ticks = append(ticks, Tick{Label: v, Pos: x + half})
	}
	return ticks
}

// LinearScale maps a continuous domain onto a continuous range.
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinearScale builds a linear scale. The domain must not be empty.
func NewLinearScale(d0, d1, r0, r1 float64) (*LinearScale, error) {
	if d0 == d1 {
		return nil, fmt.Errorf("%w: empty linear domain [%v, %v]", ErrInvalidConfig, d0, d1)
	}
	return &LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}, nil
}

// Scale maps v from the domain to the range.
func (l *LinearScale) Scale(v float64) float64 {
	return l.r0 + (v-l.d0)*(l.r1-l.r0)/(l.d1-l.d0)
}

// Invert maps a range value back to the domain.
func (l *LinearScale) Invert(r float64) float64 {
	return l.d0 + (r-l.r0)*(l.d1-l.d0)/(l.r1-l.r0)
}

// RowScale stacks rows top-down with a fixed pitch. Its domain is
// [0, count] and its range [top, top+count*pitch].
type RowScale struct {
	count  int
	top    float64
	pitch  float64
	linear *LinearScale // nil when count is 0
}

// NewRowScale builds a row scale for count rows starting at top.
func NewRowScale(count int, top, pitch float64) (*RowScale, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative row count %d", ErrInvalidConfig, count)
	}
	if pitch <= 0 {
		return nil, fmt.Errorf("%w: row height must be positive, got %v", ErrInvalidConfig, pitch)
	}
	r := &RowScale{count: count, top: top, pitch: pitch}
	if count > 0 {
		linear, err := NewLinearScale(0, float64(count), top, top+float64(count)*pitch)
		if err != nil {
			return nil, err
		}
		r.linear = linear
	}
	return r, nil
}

// Len returns the number of rows the scale was built for.
func (r *RowScale) Len() int { return r.count }

// Pitch returns the height of one row.
func (r *RowScale) Pitch() float64 { return r.pitch }

// Extent returns the total height of all rows.
func (r *RowScale) Extent() float64 { return float64(r.count) * r.pitch }

// Scale returns the top of row i.
func (r *RowScale) Scale(i int) (float64, error) {
	if i < 0 || i >= r.count {
		return 0, &DomainLookupError{Scale: "row", Value: strconv.Itoa(i)}
	}
	return r.linear.Scale(float64(i)), nil
}

// Row returns the row containing the vertical position y.
func (r *RowScale) Row(y float64) (int, bool) {
	if r.linear == nil {
		return -1, false
	}
	i := int(math.Floor(r.linear.Invert(y)))
	if i < 0 || i >= r.count {
		return -1, false
	}
	return i, true
}

// Ticks returns one tick per row at the row center, labeled by index.
func (r *RowScale) Ticks() []Tick {
	ticks := make([]Tick, 0, r.count)
	for i := 0; i < r.count; i++ {
		y, _ := r.Scale(i)
		ticks = append(ticks, Tick{Label: strconv.Itoa(i), Pos: y + r.pitch/2})
	}
	return ticks
}
