package commands

import (
	"context"
)

// HideMaterialCommandHandler handles hiding a material from the inventory.
type HideMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewHideMaterialCommandHandler creates a handler for the hide material action.
func NewHideMaterialCommandHandler(uowFactory MaterialUoWFactory) HideMaterialCommandHandler {
	return HideMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hide material command. Hiding an already hidden
// material is a no-op.
func (h *HideMaterialCommandHandler) Handle(ctx context.Context, cmd HideMaterialCommand) error {
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

	materialRepo := uow.MaterialRepository()
	m, err := materialRepo.Get(ctx, cmd.MaterialID())
	if err != nil {
		return err
	}

	m.Hide()

	if err = materialRepo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
