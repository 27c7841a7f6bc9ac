package commands

import (
	"context"
)

// RemovePieceCommandHandler handles removing a piece from an order.
type RemovePieceCommandHandler struct {
	uowFactory OrderMaterialUoWFactory
}

// NewRemovePieceCommandHandler creates a handler for piece removal.
func NewRemovePieceCommandHandler(uowFactory OrderMaterialUoWFactory) RemovePieceCommandHandler {
	return RemovePieceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove piece command.
func (h *RemovePieceCommandHandler) Handle(ctx context.Context, cmd RemovePieceCommand) error {
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

	if err = o.RemovePiece(cmd.PieceIndex(), lookup); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
