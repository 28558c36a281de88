package planner

import "github.com/shopspring/decimal"

// ScaledIngredient is one provisioned ingredient line after scaling.
type ScaledIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// scaleInput is everything the scaling ladder can look at for one dough.
type scaleInput struct {
	totalDoughKg  decimal.Decimal
	sheetsNeeded  int
	batchesNeeded int
	recipe        *Recipe
	ingredients   []RecipeIngredient
	yieldKg       decimal.Decimal
	yieldKnown    bool
}

// scaleResult is what the ladder produced: the whole-kilogram (or legacy
// fractional) mass to mix and the scaled ingredient list.
type scaleResult struct {
	totalKg     decimal.Decimal
	ingredients []ScaledIngredient
}

// scaleStrategy is one rung of the fallback ladder. applies is the "can I
// compute this?" guard; only the first applicable rung runs.
type scaleStrategy struct {
	name    string
	applies func(scaleInput) bool
	run     func(scaleInput) scaleResult
}

// scaleLadder is evaluated strictly in order:
//  1. recipe-scaled: known dough mass and a usable recipe yield;
//  2. weight-only: known dough mass, no usable recipe;
//  3. sheet-count: no dough-per-sheet data configured, scale the recipe by
//     the whole-unit count (sheets + batches) instead.
//
// A dough matching no rung (demand but neither mass nor recipe) reports an
// explicit zero, never an error.
var scaleLadder = []scaleStrategy{
	{
		name: "recipe-scaled",
		applies: func(in scaleInput) bool {
			return in.totalDoughKg.IsPositive() && in.recipe != nil && in.yieldKnown && in.yieldKg.IsPositive()
		},
		run: func(in scaleInput) scaleResult {
			factor := in.totalDoughKg.Div(in.yieldKg)
			return scaleResult{
				totalKg:     in.totalDoughKg.Ceil(),
				ingredients: scaleIngredients(in.ingredients, factor),
			}
		},
	},
	{
		name: "weight-only",
		applies: func(in scaleInput) bool {
			return in.totalDoughKg.IsPositive()
		},
		run: func(in scaleInput) scaleResult {
			return scaleResult{totalKg: in.totalDoughKg.Ceil(), ingredients: []ScaledIngredient{}}
		},
	},
	{
		name: "sheet-count",
		applies: func(in scaleInput) bool {
			return in.totalDoughKg.IsZero() && in.sheetsNeeded+in.batchesNeeded > 0 && in.recipe != nil
		},
		run: func(in scaleInput) scaleResult {
			factor := intDecimal(in.sheetsNeeded + in.batchesNeeded)
			scaled := scaleIngredients(in.ingredients, factor)
			if len(scaled) > 0 {
				return scaleResult{totalKg: sumIngredientGrams(scaled).Div(thousand).Round(2), ingredients: scaled}
			}
			totalKg := decimal.Zero
			if in.yieldKnown {
				totalKg = in.yieldKg.Mul(intDecimal(in.sheetsNeeded)).Round(2)
			}
			return scaleResult{totalKg: totalKg, ingredients: scaled}
		},
	},
}

// ScaleDough walks the ladder and returns the first applicable result.
func ScaleDough(in scaleInput) scaleResult {
	for _, s := range scaleLadder {
		if s.applies(in) {
			return s.run(in)
		}
	}
	return scaleResult{totalKg: decimal.Zero, ingredients: []ScaledIngredient{}}
}

// scaleIngredients multiplies every base quantity by factor, rounded to two
// decimal places. Always returns a non-nil slice so reports encode [].
func scaleIngredients(ingredients []RecipeIngredient, factor decimal.Decimal) []ScaledIngredient {
	out := make([]ScaledIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, ScaledIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity.Mul(factor).Round(2).InexactFloat64(),
			Unit:     ing.Unit,
		})
	}
	return out
}

// sumIngredientGrams totals scaled ingredient masses in grams. Units
// outside the mass/volume table add nothing.
func sumIngredientGrams(ingredients []ScaledIngredient) decimal.Decimal {
	sum := decimal.Zero
	for _, ing := range ingredients {
		if g, ok := gramsOf(decimal.NewFromFloat(ing.Quantity), ing.Unit); ok {
			sum = sum.Add(g)
		}
	}
	return sum
}
