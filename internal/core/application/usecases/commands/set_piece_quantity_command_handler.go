package commands

import (
	"context"
)

// SetPieceQuantityCommandHandler handles changing a piece's quantity.
type SetPieceQuantityCommandHandler struct {
	uowFactory OrderMaterialUoWFactory
}

// NewSetPieceQuantityCommandHandler creates a handler for quantity edits.
func NewSetPieceQuantityCommandHandler(uowFactory OrderMaterialUoWFactory) SetPieceQuantityCommandHandler {
	return SetPieceQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set piece quantity command.
func (h *SetPieceQuantityCommandHandler) Handle(ctx context.Context, cmd SetPieceQuantityCommand) error {
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

	lookup, err := loadCostLookup(ctx, uow.MaterialRepository(), o)
	if err != nil {
		return err
	}

	if err = o.SetPieceQuantity(cmd.PieceIndex(), cmd.Quantity(), lookup); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
