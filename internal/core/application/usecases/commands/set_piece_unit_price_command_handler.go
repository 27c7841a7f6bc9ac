package commands

import (
	"context"
)

// SetPieceUnitPriceCommandHandler handles pricing a piece.
type SetPieceUnitPriceCommandHandler struct {
	uowFactory OrderMaterialUoWFactory
}

// NewSetPieceUnitPriceCommandHandler creates a handler for piece pricing.
func NewSetPieceUnitPriceCommandHandler(uowFactory OrderMaterialUoWFactory) SetPieceUnitPriceCommandHandler {
	return SetPieceUnitPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set piece unit price command.
func (h *SetPieceUnitPriceCommandHandler) Handle(ctx context.Context, cmd SetPieceUnitPriceCommand) error {
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

	if err = o.SetPieceUnitPrice(cmd.PieceIndex(), cmd.Price(), lookup); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
