package planner

import (
	"testing"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func validDec(f float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(f), Valid: true}
}

func TestCeilDiv(t *testing.T) {
	t.Parallel()
	cases := []struct{ a, b, want int }{
		{30, 12, 3}, // partial sheet consumes a full sheet
		{24, 12, 2},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{120, 50, 3},
	}
	for _, c := range cases {
		if got := ceilDiv(c.a, c.b); got != c.want {
			t.Fatalf("ceilDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

// sheets × products_per_sheet must always cover the ordered products.
func TestCeilDiv_CoversDemand(t *testing.T) {
	t.Parallel()
	for products := 1; products <= 200; products++ {
		for perSheet := 1; perSheet <= 25; perSheet++ {
			sheets := ceilDiv(products, perSheet)
			if sheets*perSheet < products {
				t.Fatalf("%d products at %d/sheet: %d sheets under-covers", products, perSheet, sheets)
			}
			if (sheets-1)*perSheet >= products {
				t.Fatalf("%d products at %d/sheet: %d sheets is one too many", products, perSheet, sheets)
			}
		}
	}
}

func TestCalcDough_Sheets(t *testing.T) {
	t.Parallel()
	style := &LaminationStyle{ID: "s1", BaseDoughID: "d1", Name: "Croissant", ProductsPerSheet: 12}
	d := &doughDemand{
		dough: &BaseDough{ID: "d1", Name: "Viennoiserie"},
		styles: []*styleDemand{{
			style:         style,
			totalProducts: 30,
			products:      []ProductQuantity{{Name: "Croissant", Quantity: 30}},
		}},
	}
	c := calcDough(d)
	if d.styles[0].sheetsNeeded != 3 {
		t.Fatalf("sheetsNeeded = %d, want 3", d.styles[0].sheetsNeeded)
	}
	if c.totalSheets != 3 {
		t.Fatalf("totalSheets = %d, want 3", c.totalSheets)
	}
}

func TestCalcDough_Batches(t *testing.T) {
	t.Parallel()
	d := &doughDemand{
		dough: &BaseDough{
			ID: "d1", Name: "Sourdough",
			UnitsPerBatch: intPtr(50),
			BatchSizeKg:   validDec(10),
		},
		direct:      []ProductQuantity{{Name: "Loaf", Quantity: 120}},
		directUnits: 120,
	}
	c := calcDough(d)
	if c.batchesNeeded == nil || *c.batchesNeeded != 3 {
		t.Fatalf("batchesNeeded = %v, want 3", c.batchesNeeded)
	}
	if !c.directKg.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("directKg = %s, want 30", c.directKg)
	}
}

func TestCalcDough_NoBatchConfig(t *testing.T) {
	t.Parallel()
	d := &doughDemand{
		dough:       &BaseDough{ID: "d1", Name: "Rye"},
		direct:      []ProductQuantity{{Name: "Rye Loaf", Quantity: 40}},
		directUnits: 40,
	}
	c := calcDough(d)
	if c.batchesNeeded != nil {
		t.Fatalf("batchesNeeded = %v, want nil", c.batchesNeeded)
	}
	if !c.directKg.IsZero() {
		t.Fatalf("directKg = %s, want 0", c.directKg)
	}
	if !c.hasDemand(d) {
		t.Fatalf("40 direct units must still count as demand")
	}
}

// Two styles of the same dough both contribute dough_per_sheet_g; kilograms
// must reflect the summed grams plus direct batch mass.
func TestCalcDough_SummedSheetGrams(t *testing.T) {
	t.Parallel()
	croissant := &LaminationStyle{ID: "s1", BaseDoughID: "d1", Name: "Croissant", ProductsPerSheet: 12, DoughPerSheetG: validDec(2400)}
	painChoc := &LaminationStyle{ID: "s2", BaseDoughID: "d1", Name: "Pain au Chocolat", ProductsPerSheet: 10, DoughPerSheetG: validDec(2600)}
	d := &doughDemand{
		dough: &BaseDough{
			ID: "d1", Name: "Viennoiserie",
			UnitsPerBatch: intPtr(20),
			BatchSizeKg:   validDec(5),
		},
		styles: []*styleDemand{
			{style: croissant, totalProducts: 30}, // 3 sheets × 2400g = 7200g
			{style: painChoc, totalProducts: 25},  // 3 sheets × 2600g = 7800g
		},
		direct:      []ProductQuantity{{Name: "Brioche", Quantity: 10}},
		directUnits: 10, // 1 batch × 5kg
	}
	c := calcDough(d)
	if !c.laminationDoughG.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("laminationDoughG = %s, want 15000", c.laminationDoughG)
	}
	if !c.totalDoughKg().Equal(decimal.NewFromInt(20)) {
		t.Fatalf("totalDoughKg = %s, want 20", c.totalDoughKg())
	}
}

func TestCalcDough_ZeroDemandDough(t *testing.T) {
	t.Parallel()
	d := &doughDemand{dough: &BaseDough{ID: "d1", Name: "Spelt"}}
	c := calcDough(d)
	if c.hasDemand(d) {
		t.Fatalf("dough without sheets or direct units must be dropped")
	}
}

func TestBuildDoughDemand_Classification(t *testing.T) {
	t.Parallel()
	doughs := []BaseDough{
		{
			ID: "d1", Name: "Viennoiserie",
			Styles: []LaminationStyle{{ID: "s1", BaseDoughID: "d1", Name: "Croissant", ProductsPerSheet: 12}},
		},
		{ID: "d2", Name: "Sourdough"},
	}
	idx := indexCatalog(doughs)
	products := []Product{
		{ID: "p1", Name: "Croissant", LaminationStyleID: strPtr("s1")},
		{ID: "p2", Name: "Country Loaf", BaseDoughID: strPtr("d2")},
		{ID: "p3", Name: "Ghost", LaminationStyleID: strPtr("missing")}, // dangling ref
		{ID: "p4", Name: "Unconfigured"},                               // no path
	}
	demand := map[string]int{"p1": 24, "p2": 6, "p3": 5, "p4": 7}

	buckets := buildDoughDemand(demand, products, idx)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 dough buckets, got %d", len(buckets))
	}
	for _, b := range buckets {
		switch b.dough.ID {
		case "d1":
			if len(b.styles) != 1 || b.styles[0].totalProducts != 24 {
				t.Fatalf("viennoiserie bucket wrong: %+v", b.styles)
			}
		case "d2":
			if b.directUnits != 6 {
				t.Fatalf("sourdough directUnits = %d, want 6", b.directUnits)
			}
		default:
			t.Fatalf("unexpected dough %s in buckets", b.dough.ID)
		}
	}
}

func TestResolvePath_LaminatedUsesStyleDough(t *testing.T) {
	t.Parallel()
	doughs := []BaseDough{
		{ID: "d1", Name: "Viennoiserie", Styles: []LaminationStyle{{ID: "s1", BaseDoughID: "d1", Name: "Croissant", ProductsPerSheet: 12}}},
		{ID: "d2", Name: "Other"},
	}
	idx := indexCatalog(doughs)

	// even if a base_dough_id is wrongly present, the style path wins and
	// resolves through the style's owning dough
	p := Product{ID: "p1", Name: "Croissant", BaseDoughID: strPtr("d2"), LaminationStyleID: strPtr("s1")}
	res := ResolvePath(p, idx)
	if res.Kind != PathLaminated {
		t.Fatalf("kind = %s, want laminated", res.Kind)
	}
	if res.Dough.ID != "d1" {
		t.Fatalf("effective dough = %s, want d1", res.Dough.ID)
	}
}

func TestResolvePath_Unresolved(t *testing.T) {
	t.Parallel()
	idx := indexCatalog(nil)
	for _, p := range []Product{
		{ID: "p1", Name: "A"},
		{ID: "p2", Name: "B", BaseDoughID: strPtr("missing")},
		{ID: "p3", Name: "C", LaminationStyleID: strPtr("missing")},
	} {
		if res := ResolvePath(p, idx); res.Kind != PathUnresolved {
			t.Fatalf("product %s: kind = %s, want unresolved", p.ID, res.Kind)
		}
	}
}

func TestAggregateDemand(t *testing.T) {
	t.Parallel()
	lines := []OrderLine{
		{ProductID: "p1", Quantity: 10},
		{ProductID: "p1", Quantity: 20},
		{ProductID: "p2", Quantity: 5},
		{ProductID: "p3", Quantity: 0},
	}
	got := AggregateDemand(lines)
	if got["p1"] != 30 || got["p2"] != 5 {
		t.Fatalf("unexpected totals: %v", got)
	}
	if _, ok := got["p3"]; ok {
		t.Fatalf("zero-quantity product must be dropped")
	}
}
