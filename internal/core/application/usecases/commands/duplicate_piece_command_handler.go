package commands

import (
	"context"
)

// DuplicatePieceCommandHandler handles duplicating a piece within an order.
type DuplicatePieceCommandHandler struct {
	uowFactory OrderMaterialUoWFactory
}

// NewDuplicatePieceCommandHandler creates a handler for piece duplication.
func NewDuplicatePieceCommandHandler(uowFactory OrderMaterialUoWFactory) DuplicatePieceCommandHandler {
	return DuplicatePieceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duplicate piece command.
func (h *DuplicatePieceCommandHandler) Handle(ctx context.Context, cmd DuplicatePieceCommand) error {
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

	if err = o.DuplicatePiece(cmd.PieceIndex(), lookup); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
