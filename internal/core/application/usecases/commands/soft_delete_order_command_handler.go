package commands

import (
	"context"
)

// SoftDeleteOrderCommandHandler handles hiding an order from listings.
type SoftDeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSoftDeleteOrderCommandHandler creates a handler for the soft delete action.
func NewSoftDeleteOrderCommandHandler(uowFactory OrderUoWFactory) SoftDeleteOrderCommandHandler {
	return SoftDeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the soft delete order command. Hiding an already hidden
// order is a no-op.
func (h *SoftDeleteOrderCommandHandler) Handle(ctx context.Context, cmd SoftDeleteOrderCommand) error {
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

	o.Hide()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
