package commands

import (
	"context"
)

// SetMaterialSpoolCountCommandHandler handles adjusting a material's spool count.
type SetMaterialSpoolCountCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewSetMaterialSpoolCountCommandHandler creates a handler for the spool count action.
func NewSetMaterialSpoolCountCommandHandler(uowFactory MaterialUoWFactory) SetMaterialSpoolCountCommandHandler {
	return SetMaterialSpoolCountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set material spool count command.
func (h *SetMaterialSpoolCountCommandHandler) Handle(ctx context.Context, cmd SetMaterialSpoolCountCommand) error {
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

	if err = m.SetSpoolsOwned(cmd.SpoolsOwned()); err != nil {
		return err
	}

	if err = materialRepo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
