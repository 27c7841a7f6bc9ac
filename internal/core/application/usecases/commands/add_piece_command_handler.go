package commands

import (
	"context"
)

// AddPieceCommandHandler handles adding a product piece to an order.
// Loads the product template for the snapshot and the referenced materials
// for the totals recomputation within one transaction.
type AddPieceCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddPieceCommandHandler creates a handler for piece addition operations.
func NewAddPieceCommandHandler(uowFactory UoWFactory) AddPieceCommandHandler {
	return AddPieceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add piece command.
func (h *AddPieceCommandHandler) Handle(ctx context.Context, cmd AddPieceCommand) error {
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

	template, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	lookup, err := loadCostLookup(ctx, uow.MaterialRepository(), o)
	if err != nil {
		return err
	}

	if err = o.AddPiece(template, cmd.Quantity(), lookup); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
