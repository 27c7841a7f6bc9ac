package commands

import (
	"context"

	"printshop/internal/core/domain/model/material"
)

// CreateMaterialCommandHandler handles registering a material in the inventory.
type CreateMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewCreateMaterialCommandHandler creates a handler for the create material action.
func NewCreateMaterialCommandHandler(uowFactory MaterialUoWFactory) CreateMaterialCommandHandler {
	return CreateMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create material command.
func (h *CreateMaterialCommandHandler) Handle(ctx context.Context, cmd CreateMaterialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := material.NewMaterial(
		cmd.MaterialID(),
		cmd.OwnerID(),
		cmd.Title(),
		cmd.Brand(),
		cmd.Colors(),
		cmd.Types(),
		cmd.URL(),
		cmd.PricePerKilo(),
		cmd.SpoolsOwned(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MaterialRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
