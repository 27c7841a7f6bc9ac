package commands

import (
	"context"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
)

// MarkDoneCommandHandler handles finishing an order. Setting the status to
// Done and charging the consumed filament to the inventory happen in the
// same transaction.
type MarkDoneCommandHandler struct {
	uowFactory    OrderMaterialUoWFactory
	usageRecorder services.UsageRecorder
}

// NewMarkDoneCommandHandler creates a handler for the mark done action.
func NewMarkDoneCommandHandler(uowFactory OrderMaterialUoWFactory, usageRecorder services.UsageRecorder) MarkDoneCommandHandler {
	return MarkDoneCommandHandler{
		uowFactory:    uowFactory,
		usageRecorder: usageRecorder,
	}
}

// Handle processes the mark done command. An order that is already Done is
// left untouched, so repeating the command never double-charges usage.
func (h *MarkDoneCommandHandler) Handle(ctx context.Context, cmd MarkDoneCommand) error {
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

	if o.Status() == order.Done {
		return uow.Commit(ctx)
	}

	o.MarkDone()

	materialRepo := uow.MaterialRepository()
	materials, err := materialRepo.GetByIDs(ctx, referencedMaterialIDs(o))
	if err != nil {
		return err
	}

	charged, err := h.usageRecorder.RecordOrderUsage(o, materials)
	if err != nil {
		return err
	}

	for _, m := range charged {
		if err = materialRepo.Update(ctx, m); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
