package commands

import (
	"context"
)

// SetPrintedCountCommandHandler handles printed-progress updates. Progress
// operations never touch totals, so an order-only unit of work suffices.
type SetPrintedCountCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetPrintedCountCommandHandler creates a handler for progress updates.
func NewSetPrintedCountCommandHandler(uowFactory OrderUoWFactory) SetPrintedCountCommandHandler {
	return SetPrintedCountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set printed count command.
func (h *SetPrintedCountCommandHandler) Handle(ctx context.Context, cmd SetPrintedCountCommand) error {
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

	if err = o.SetPrintedCount(cmd.PieceIndex(), cmd.Count()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
