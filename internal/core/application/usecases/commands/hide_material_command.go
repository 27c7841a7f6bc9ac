package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrHideMaterialCommandIsNotConstructed = errors.New(
	"HideMaterialCommand must be created via NewHideMaterialCommand constructor",
)

// HideMaterialCommand represents a request to hide a material from the
// inventory. Orders referencing the material keep their part assignments, but
// its price stops resolving in cost estimates.
type HideMaterialCommand struct { //nolint:recvcheck //using for validation
	materialID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHideMaterialCommand creates a command to hide a material.
func NewHideMaterialCommand(materialID kernel.UUID) (HideMaterialCommand, error) {
	cmd := HideMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaterialID(materialID); err != nil {
		return HideMaterialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HideMaterialCommand) Validate() error {
	return c.guard.Validate(ErrHideMaterialCommandIsNotConstructed)
}

// MaterialID returns the identifier of the material to hide.
func (c HideMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

func (c *HideMaterialCommand) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}

	c.materialID = materialID
	return nil
}
