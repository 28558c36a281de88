package planner

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeYieldToKg(t *testing.T) {
	t.Parallel()
	cases := []struct {
		qty  float64
		unit string
		want float64
	}{
		{2.5, "kg", 2.5},
		{2.5, "KG", 2.5},
		{2.5, " kg ", 2.5},
		{500, "g", 0.5},
		{500, "grams", 0.5},
		{3, "l", 3},
		{3, "litres", 3},
		{3, "liters", 3},
		{750, "ml", 0.75},
	}
	for _, c := range cases {
		got, err := NormalizeYieldToKg(decimal.NewFromFloat(c.qty), c.unit)
		if err != nil {
			t.Fatalf("normalize %v %q: %v", c.qty, c.unit, err)
		}
		if !got.Equal(decimal.NewFromFloat(c.want)) {
			t.Fatalf("normalize %v %q = %s, want %v", c.qty, c.unit, got, c.want)
		}
	}
}

func TestNormalizeYieldToKg_UnsupportedUnit(t *testing.T) {
	t.Parallel()
	for _, unit := range []string{"units", "pinch", "", "stone"} {
		_, err := NormalizeYieldToKg(decimal.NewFromInt(1), unit)
		if !errors.Is(err, ErrUnsupportedUnit) {
			t.Fatalf("unit %q: expected ErrUnsupportedUnit, got %v", unit, err)
		}
	}
}

// Converting x kg to grams and back must land on the same value.
func TestNormalizeYieldToKg_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{0.001, 0.5, 1, 2.75, 100, 12345.678} {
		kg, err := NormalizeYieldToKg(decimal.NewFromFloat(x), "kg")
		if err != nil {
			t.Fatalf("kg normalize: %v", err)
		}
		back, err := NormalizeYieldToKg(kg.Mul(decimal.NewFromInt(1000)), "g")
		if err != nil {
			t.Fatalf("g normalize: %v", err)
		}
		if !back.Equal(kg) {
			t.Fatalf("round trip %v: got %s, want %s", x, back, kg)
		}
	}
}

func TestGramsOf(t *testing.T) {
	t.Parallel()
	got, ok := gramsOf(decimal.NewFromFloat(1.5), "kg")
	if !ok || !got.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("1.5kg = %s grams (ok=%v), want 1500", got, ok)
	}
	got, ok = gramsOf(decimal.NewFromInt(200), "ml")
	if !ok || !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("200ml = %s grams (ok=%v), want 200", got, ok)
	}
	if _, ok := gramsOf(decimal.NewFromInt(3), "units"); ok {
		t.Fatalf("expected units to carry no mass")
	}
}
