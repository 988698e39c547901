package chart

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBandScale(t *testing.T) {
	b, err := NewBandScale([]string{"a", "b", "a", "c"}, 0, 300, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := b.Domain(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Domain() = %v, want [a b c]", got)
	}
	if !approx(b.Step(), 100) {
		t.Errorf("Step() = %v, want 100", b.Step())
	}
	if !approx(b.Bandwidth(), 60) {
		t.Errorf("Bandwidth() = %v, want 60", b.Bandwidth())
	}

	want := map[string]float64{"a": 20, "b": 120, "c": 220}
	for v, wantX := range want {
		x, err := b.Scale(v)
		if err != nil {
			t.Fatalf("Scale(%q) unexpected error: %v", v, err)
		}
		if !approx(x, wantX) {
			t.Errorf("Scale(%q) = %v, want %v", v, x, wantX)
		}
	}
}

func TestBandScale_Unknown(t *testing.T) {
	b, _ := NewBandScale([]string{"03/01/2022"}, 0, 100, 0.1)

	_, err := b.Scale("04/01/2022")
	var lookup *DomainLookupError
	if !errors.As(err, &lookup) {
		t.Fatalf("got error %v, want DomainLookupError", err)
	}
	if lookup.Value != "04/01/2022" || lookup.Scale != "band" {
		t.Errorf("got %+v, want band lookup of 04/01/2022", lookup)
	}
	if !errors.Is(err, ErrDomainLookup) {
		t.Error("error should wrap ErrDomainLookup")
	}
}

func TestBandScale_InvalidPadding(t *testing.T) {
	for _, p := range []float64{-0.1, 1, 1.5, math.NaN()} {
		if _, err := NewBandScale([]string{"a"}, 0, 100, p); !errors.Is(err, ErrInvalidPadding) {
			t.Errorf("NewBandScale(padding=%v) error = %v, want ErrInvalidPadding", p, err)
		}
	}
}

func TestBandScale_Empty(t *testing.T) {
	b, err := NewBandScale(nil, 0, 100, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Step() != 0 || b.Bandwidth() != 0 {
		t.Errorf("Step/Bandwidth = %v/%v, want 0/0", b.Step(), b.Bandwidth())
	}
	if len(b.Ticks()) != 0 {
		t.Errorf("Ticks() = %v, want none", b.Ticks())
	}
}

func TestBandScale_ContainedAndDisjoint(t *testing.T) {
	paddings := []float64{0, 0.1, 0.4, 0.9}
	for n := 1; n <= 12; n++ {
		domain := make([]string, n)
		for i := range domain {
			domain[i] = string(rune('a' + i))
		}
		for _, p := range paddings {
			b, err := NewBandScale(domain, 40, 460, p)
			if err != nil {
				t.Fatalf("NewBandScale(n=%d, p=%v) unexpected error: %v", n, p, err)
			}
			prevEnd := math.Inf(-1)
			for _, d := range domain {
				x, err := b.Scale(d)
				if err != nil {
					t.Fatalf("Scale(%q) unexpected error: %v", d, err)
				}
				if x < 40-epsilon {
					t.Errorf("n=%d p=%v: band %q starts at %v before range", n, p, d, x)
				}
				if x+b.Bandwidth() > 460+epsilon {
					t.Errorf("n=%d p=%v: band %q ends at %v past range", n, p, d, x+b.Bandwidth())
				}
				if x < prevEnd-epsilon {
					t.Errorf("n=%d p=%v: band %q overlaps previous band", n, p, d)
				}
				prevEnd = x + b.Bandwidth()
			}
		}
	}
}

func TestBandScale_Ticks(t *testing.T) {
	b, _ := NewBandScale([]string{"x", "y"}, 0, 200, 0.5)
	ticks := b.Ticks()
	if len(ticks) != 2 {
		t.Fatalf("len(Ticks()) = %d, want 2", len(ticks))
	}
	if ticks[0].Label != "x" || !approx(ticks[0].Pos, 50) {
		t.Errorf("ticks[0] = %+v, want {x 50}", ticks[0])
	}
	if ticks[1].Label != "y" || !approx(ticks[1].Pos, 150) {
		t.Errorf("ticks[1] = %+v, want {y 150}", ticks[1])
	}
}

func TestLinearScale(t *testing.T) {
	l, err := NewLinearScale(0, 10, 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.Scale(5); !approx(got, 50) {
		t.Errorf("Scale(5) = %v, want 50", got)
	}
	if got := l.Scale(0); !approx(got, 100) {
		t.Errorf("Scale(0) = %v, want 100", got)
	}
	if got := l.Invert(25); !approx(got, 7.5) {
		t.Errorf("Invert(25) = %v, want 7.5", got)
	}

	if _, err := NewLinearScale(3, 3, 0, 1); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("degenerate domain error = %v, want ErrInvalidConfig", err)
	}
}

func TestRowScale(t *testing.T) {
	r, err := NewRowScale(3, 30, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, want := range []float64{30, 60, 90} {
		got, err := r.Scale(i)
		if err != nil {
			t.Fatalf("Scale(%d) unexpected error: %v", i, err)
		}
		if !approx(got, want) {
			t.Errorf("Scale(%d) = %v, want %v", i, got, want)
		}
	}
	if !approx(r.Extent(), 90) {
		t.Errorf("Extent() = %v, want 90", r.Extent())
	}

	for _, i := range []int{-1, 3} {
		_, err := r.Scale(i)
		var lookup *DomainLookupError
		if !errors.As(err, &lookup) || lookup.Scale != "row" {
			t.Errorf("Scale(%d) error = %v, want row DomainLookupError", i, err)
		}
	}
}

func TestRowScale_StrictlyMonotonic(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100} {
		r, err := NewRowScale(n, 30, 30)
		if err != nil {
			t.Fatalf("NewRowScale(%d) unexpected error: %v", n, err)
		}
		prev := math.Inf(-1)
		for i := 0; i < n; i++ {
			y, _ := r.Scale(i)
			if y <= prev {
				t.Fatalf("n=%d: Scale(%d) = %v not greater than Scale(%d) = %v", n, i, y, i-1, prev)
			}
			prev = y
		}
	}
}

func TestRowScale_Row(t *testing.T) {
	r, _ := NewRowScale(3, 30, 30)
	tests := []struct {
		y      float64
		want   int
		wantOK bool
	}{
		{y: 29.9, want: -1, wantOK: false},
		{y: 30, want: 0, wantOK: true},
		{y: 45, want: 0, wantOK: true},
		{y: 60, want: 1, wantOK: true},
		{y: 119.9, want: 2, wantOK: true},
		{y: 120, want: -1, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := r.Row(tt.y)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Row(%v) = %d, %v, want %d, %v", tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRowScale_Empty(t *testing.T) {
	r, err := NewRowScale(0, 30, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Scale(0); !errors.Is(err, ErrDomainLookup) {
		t.Errorf("Scale(0) error = %v, want ErrDomainLookup", err)
	}
	if _, ok := r.Row(30); ok {
		t.Error("Row(30) on empty scale should miss")
	}
	if len(r.Ticks()) != 0 {
		t.Errorf("Ticks() = %v, want none", r.Ticks())
	}
}

func TestRowScale_Invalid(t *testing.T) {
	if _, err := NewRowScale(-1, 0, 30); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative count error = %v, want ErrInvalidConfig", err)
	}
	if _, err := NewRowScale(2, 0, 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero pitch error = %v, want ErrInvalidConfig", err)
	}
}

func TestRowScale_Ticks(t *testing.T) {
	r, _ := NewRowScale(2, 10, 20)
	ticks := r.Ticks()
	if len(ticks) != 2 {
		t.Fatalf("len(Ticks()) = %d, want 2", len(ticks))
	}
	if ticks[0].Label != "0" || !approx(ticks[0].Pos, 20) {
		t.Errorf("ticks[0] = %+v, want {0 20}", ticks[0])
	}
	if ticks[1].Label != "1" || !approx(ticks[1].Pos, 40) {
		t.Errorf("ticks[1] = %+v, want {1 40}", ticks[1])
	}
}
