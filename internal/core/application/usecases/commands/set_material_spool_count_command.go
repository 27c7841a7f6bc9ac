package commands

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrSetMaterialSpoolCountCommandIsNotConstructed = errors.New(
	"SetMaterialSpoolCountCommand must be created via NewSetMaterialSpoolCountCommand constructor",
)

// SetMaterialSpoolCountCommand represents a request to adjust the number of
// spools of a material on hand.
type SetMaterialSpoolCountCommand struct { //nolint:recvcheck //using for validation
	materialID  kernel.UUID
	spoolsOwned int

	guard guard.ConstructorGuard
}

// NewSetMaterialSpoolCountCommand creates a command to adjust the spool count.
func NewSetMaterialSpoolCountCommand(materialID kernel.UUID, spoolsOwned int) (SetMaterialSpoolCountCommand, error) {
	cmd := SetMaterialSpoolCountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMaterialID(materialID),
		cmd.setSpoolsOwned(spoolsOwned),
	); err != nil {
		return SetMaterialSpoolCountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetMaterialSpoolCountCommand) Validate() error {
	return c.guard.Validate(ErrSetMaterialSpoolCountCommandIsNotConstructed)
}

// MaterialID returns the identifier of the material to adjust.
func (c SetMaterialSpoolCountCommand) MaterialID() kernel.UUID {
	return c.materialID
}

// SpoolsOwned returns the new spool count.
func (c SetMaterialSpoolCountCommand) SpoolsOwned() int {
	return c.spoolsOwned
}

func (c *SetMaterialSpoolCountCommand) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}

	c.materialID = materialID
	return nil
}

func (c *SetMaterialSpoolCountCommand) setSpoolsOwned(spoolsOwned int) error {
	if spoolsOwned < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"spools owned",
			fmt.Errorf("%d is negative", spoolsOwned),
		)
	}

	c.spoolsOwned = spoolsOwned
	return nil
}
