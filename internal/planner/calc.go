package planner

import (
	"sort"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

func intDecimal(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// styleDemand buckets ordered products under one lamination style.
type styleDemand struct {
	style         *LaminationStyle
	products      []ProductQuantity
	totalProducts int
	sheetsNeeded  int
}

// doughDemand buckets everything one base dough must supply: per-style
// laminated demand plus direct products.
type doughDemand struct {
	dough       *BaseDough
	styles      []*styleDemand
	styleIndex  map[string]*styleDemand
	direct      []ProductQuantity
	directUnits int
}

// buildDoughDemand classifies every in-demand product and folds it into
// per-dough buckets. Products are walked in name order so bucket contents
// and bucket discovery are deterministic for identical store state.
func buildDoughDemand(demand map[string]int, products []Product, idx catalogIndex) []*doughDemand {
	ordered := make([]Product, 0, len(products))
	for _, p := range products {
		if demand[p.ID] > 0 {
			ordered = append(ordered, p)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	byDough := make(map[string]*doughDemand)
	var out []*doughDemand

	bucketFor := func(dough *BaseDough) *doughDemand {
		if b, ok := byDough[dough.ID]; ok {
			return b
		}
		b := &doughDemand{dough: dough, styleIndex: make(map[string]*styleDemand)}
		byDough[dough.ID] = b
		out = append(out, b)
		return b
	}

	for _, p := range ordered {
		qty := demand[p.ID]
		res := ResolvePath(p, idx)
		switch res.Kind {
		case PathLaminated:
			b := bucketFor(res.Dough)
			sb, ok := b.styleIndex[res.Style.ID]
			if !ok {
				sb = &styleDemand{style: res.Style}
				b.styleIndex[res.Style.ID] = sb
				b.styles = append(b.styles, sb)
			}
			sb.products = append(sb.products, ProductQuantity{Name: p.Name, Quantity: qty})
			sb.totalProducts += qty
		case PathDirect:
			b := bucketFor(res.Dough)
			b.direct = append(b.direct, ProductQuantity{Name: p.Name, Quantity: qty})
			b.directUnits += qty
		}
	}
	return out
}

// ceilDiv is ceiling division for positive divisors: a partial sheet or
// batch still consumes a whole one.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// doughCalc is the physical requirement of one dough before recipe scaling.
type doughCalc struct {
	totalSheets      int
	laminationDoughG decimal.Decimal
	batchesNeeded    *int
	directKg         decimal.Decimal
}

// calcDough runs the sheet and batch arithmetic for one dough bucket,
// recording sheetsNeeded on each style bucket as it goes.
func calcDough(d *doughDemand) doughCalc {
	var c doughCalc
	for _, sb := range d.styles {
		if sb.style.ProductsPerSheet <= 0 || sb.totalProducts <= 0 {
			continue
		}
		sb.sheetsNeeded = ceilDiv(sb.totalProducts, sb.style.ProductsPerSheet)
		c.totalSheets += sb.sheetsNeeded
		if sb.style.DoughPerSheetG.Valid {
			c.laminationDoughG = c.laminationDoughG.Add(
				sb.style.DoughPerSheetG.Decimal.Mul(intDecimal(sb.sheetsNeeded)))
		}
	}
	if d.directUnits > 0 && d.dough.UnitsPerBatch != nil && *d.dough.UnitsPerBatch > 0 && d.dough.BatchSizeKg.Valid {
		batches := ceilDiv(d.directUnits, *d.dough.UnitsPerBatch)
		c.batchesNeeded = &batches
		c.directKg = d.dough.BatchSizeKg.Decimal.Mul(intDecimal(batches))
	}
	return c
}

// totalDoughKg is the mass the dough must supply: lamination grams across
// all styles plus direct batch kilograms.
func (c doughCalc) totalDoughKg() decimal.Decimal {
	return c.laminationDoughG.Div(thousand).Add(c.directKg)
}

// hasDemand reports whether the dough bucket should appear in the plan at
// all. Direct units without batch configuration still count as demand.
func (c doughCalc) hasDemand(d *doughDemand) bool {
	return c.totalSheets > 0 || d.directUnits > 0
}
