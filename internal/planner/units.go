package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedUnit is returned when a yield unit is not in the conversion
// table. Callers treat it as a data gap (the recipe's yield is unusable),
// never as a reason to abort a plan.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// kgPerUnit maps a lowercase unit string to its factor into kilograms.
// Volume units convert 1:1 with mass (litre = kg): dough and levain are
// water-dense enough that recipes have always been written that way, so the
// table keeps the density=1 assumption on purpose.
var kgPerUnit = map[string]decimal.Decimal{
	"kg":          decimal.NewFromInt(1),
	"kilogram":    decimal.NewFromInt(1),
	"kilograms":   decimal.NewFromInt(1),
	"g":           decimal.NewFromFloat(0.001),
	"gram":        decimal.NewFromFloat(0.001),
	"grams":       decimal.NewFromFloat(0.001),
	"l":           decimal.NewFromInt(1),
	"litre":       decimal.NewFromInt(1),
	"litres":      decimal.NewFromInt(1),
	"liter":       decimal.NewFromInt(1),
	"liters":      decimal.NewFromInt(1),
	"ml":          decimal.NewFromFloat(0.001),
	"millilitre":  decimal.NewFromFloat(0.001),
	"millilitres": decimal.NewFromFloat(0.001),
}

// NormalizeYieldToKg converts a quantity in the given unit to kilograms.
// Pure function; unknown units return ErrUnsupportedUnit.
func NormalizeYieldToKg(quantity decimal.Decimal, unit string) (decimal.Decimal, error) {
	factor, ok := kgPerUnit[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedUnit, unit)
	}
	return quantity.Mul(factor), nil
}

// gramsOf converts a quantity to grams, reporting false for units outside
// the mass/volume table (pieces, pinches and the like contribute no mass).
func gramsOf(quantity decimal.Decimal, unit string) (decimal.Decimal, bool) {
	factor, ok := kgPerUnit[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return decimal.Zero, false
	}
	return quantity.Mul(factor).Mul(decimal.NewFromInt(1000)), true
}
