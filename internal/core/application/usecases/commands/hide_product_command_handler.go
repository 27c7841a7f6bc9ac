package commands

import (
	"context"
)

// HideProductCommandHandler handles hiding a product from the catalog.
type HideProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewHideProductCommandHandler creates a handler for the hide product action.
func NewHideProductCommandHandler(uowFactory ProductUoWFactory) HideProductCommandHandler {
	return HideProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hide product command. Hiding an already hidden product
// is a no-op.
func (h *HideProductCommandHandler) Handle(ctx context.Context, cmd HideProductCommand) error {
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

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	p.Hide()

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
