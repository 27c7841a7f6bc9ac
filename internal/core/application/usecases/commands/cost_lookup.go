package commands

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
)

// loadCostLookup builds the material cost lookup for an order's totals
// recomputation. It loads every material the order's parts reference, plus
// any extra ids about to be assigned, in one query, and resolves only the
// visible ones: a hidden or missing material contributes mass but no cost,
// which moves the order's expenses towards undefined rather than failing
// the edit.
func loadCostLookup(ctx context.Context, repo ports.MaterialRepository, o *order.Order, extra ...kernel.UUID) (order.CostLookup, error) {
	ids := append(referencedMaterialIDs(o), extra...)
	if len(ids) == 0 {
		return nil, nil
	}

	materials, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(materials))
	for _, m := range materials {
		if m.Hidden() {
			continue
		}
		prices[m.ID().String()] = m.PricePerKilo()
	}

	return func(id kernel.UUID) (float64, bool) {
		price, ok := prices[id.String()]
		return price, ok
	}, nil
}

// referencedMaterialIDs collects the distinct material ids assigned to any
// part of the order, in first-seen order.
func referencedMaterialIDs(o *order.Order) []kernel.UUID {
	seen := make(map[string]struct{})
	var ids []kernel.UUID
	for _, piece := range o.Pieces() {
		for _, part := range piece.Parts() {
			id := part.MaterialID()
			if id == nil {
				continue
			}
			if _, ok := seen[id.String()]; ok {
				continue
			}
			seen[id.String()] = struct{}{}
			ids = append(ids, *id)
		}
	}
	return ids
}
