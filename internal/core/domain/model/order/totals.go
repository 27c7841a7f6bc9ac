package order

import "printshop/internal/core/domain/model/kernel"

// UnassignedKey is the reserved totals bucket for mass consumed by parts that
// have no material selected. It shares the mapping with real material ids so
// aggregation stays a single loop.
const UnassignedKey = "unassigned"

// CostLookup resolves a material id to its price per kilogram. A lookup that
// does not resolve (ok=false) contributes mass but no cost: the material is
// known but its price is not, so expenses stay partial or undefined.
//
// A nil CostLookup is valid and never resolves.
type CostLookup func(materialID kernel.UUID) (pricePerKilo float64, ok bool)

// MaterialTotal is the consumption accumulated for one totals bucket:
// total mass in grams and, where cost data resolved, total cost.
type MaterialTotal struct {
	TotalGrams float64
	TotalCost  float64
}

// Totals is the derived aggregation over an order's piece tree. It is
// recomputed on every composer mutation and persisted with the order as a
// snapshot for listings; the aggregate itself never reads it back as input.
//
// Expenses is nil when no part in the order resolved to a priced material:
// cost data is unknown, not zero, and Profit then equals Revenue.
type Totals struct {
	ByMaterial map[string]MaterialTotal
	Revenue    float64
	Expenses   *float64
	Profit     float64
}

// emptyTotals returns the zero-filled totals of an order with no pieces.
func emptyTotals() Totals {
	return Totals{ByMaterial: map[string]MaterialTotal{}}
}

// computeTotals runs the aggregation over the piece tree.
//
// For every part of every piece, mass = requiredGrams * quantity is bucketed
// by material id, or under UnassignedKey when no material is selected. Cost
// accrues only for buckets whose material resolves through the lookup, at
// mass/1000 * pricePerKilo. Revenue accrues unitPrice * quantity for every
// priced piece; unpriced pieces contribute nothing.
//
// The computation is total: no input produces an error.
func computeTotals(pieces []*Piece, lookup CostLookup) Totals {
	totals := emptyTotals()

	var expensesSum float64
	hasAnyAssigned := false

	for _, piece := range pieces {
		if price, ok := piece.UnitPrice(); ok {
			totals.Revenue += price * float64(piece.quantity)
		}

		for _, part := range piece.parts {
			grams := part.requiredGrams * float64(piece.quantity)

			key := UnassignedKey
			var costPerKilo float64
			resolved := false
			if part.materialID != nil {
				key = part.materialID.String()
				if lookup != nil {
					costPerKilo, resolved = lookup(*part.materialID)
				}
			}

			bucket := totals.ByMaterial[key]
			bucket.TotalGrams += grams
			if resolved {
				cost := grams / 1000 * costPerKilo
				bucket.TotalCost += cost
				expensesSum += cost
				hasAnyAssigned = true
			}
			totals.ByMaterial[key] = bucket
		}
	}

	if hasAnyAssigned {
		totals.Expenses = &expensesSum
		totals.Profit = totals.Revenue - expensesSum
	} else {
		totals.Profit = totals.Revenue
	}

	return totals
}

// copyTotals deep-copies a totals snapshot so getters never alias the
// aggregate's internal state.
func copyTotals(t Totals) Totals {
	out := Totals{
		ByMaterial: make(map[string]MaterialTotal, len(t.ByMaterial)),
		Revenue:    t.Revenue,
		Profit:     t.Profit,
	}
	for key, bucket := range t.ByMaterial {
		out.ByMaterial[key] = bucket
	}
	if t.Expenses != nil {
		expenses := *t.Expenses
		out.Expenses = &expenses
	}
	return out
}
