package planner

// AggregateDemand folds order lines into total ordered units per product.
// Products whose total comes out non-positive are dropped here so nothing
// downstream ever sees a zero-demand product.
func AggregateDemand(lines []OrderLine) map[string]int {
	totals := make(map[string]int, len(lines))
	for _, line := range lines {
		totals[line.ProductID] += line.Quantity
	}
	for id, qty := range totals {
		if qty <= 0 {
			delete(totals, id)
		}
	}
	return totals
}
