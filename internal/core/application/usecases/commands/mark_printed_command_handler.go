package commands

import (
	"context"
)

// MarkPrintedCommandHandler handles fast-forwarding an order to Printed.
type MarkPrintedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPrintedCommandHandler creates a handler for the mark printed action.
func NewMarkPrintedCommandHandler(uowFactory OrderUoWFactory) MarkPrintedCommandHandler {
	return MarkPrintedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark printed command.
func (h *MarkPrintedCommandHandler) Handle(ctx context.Context, cmd MarkPrintedCommand) error {
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

	o.MarkPrinted()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
