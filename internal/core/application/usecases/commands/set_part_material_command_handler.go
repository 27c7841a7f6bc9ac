package commands

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// SetPartMaterialCommandHandler handles assigning or clearing a part's
// material selection.
type SetPartMaterialCommandHandler struct {
	uowFactory OrderMaterialUoWFactory
}

// NewSetPartMaterialCommandHandler creates a handler for material assignment.
func NewSetPartMaterialCommandHandler(uowFactory OrderMaterialUoWFactory) SetPartMaterialCommandHandler {
	return SetPartMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set part material command. The cost lookup includes
// the material being assigned, so the recomputed totals pick its price up
// immediately.
func (h *SetPartMaterialCommandHandler) Handle(ctx context.Context, cmd SetPartMaterialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var lookup order.CostLookup
	var extra []kernel.UUID
	if id := cmd.MaterialID(); id != nil {
		extra = append(extra, *id)
	}
	lookup, err = loadCostLookup(ctx, uow.MaterialRepository(), o, extra...)
	if err != nil {
		return err
	}

	if err = o.SetPartMaterial(cmd.PieceIndex(), cmd.PartIndex(), cmd.MaterialID(), lookup); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
