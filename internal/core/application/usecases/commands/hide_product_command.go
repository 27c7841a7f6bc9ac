package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrHideProductCommandIsNotConstructed = errors.New(
	"HideProductCommand must be created via NewHideProductCommand constructor",
)

// HideProductCommand represents a request to hide a product from the catalog.
// Pieces already composed from the product keep their snapshots.
type HideProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHideProductCommand creates a command to hide a product.
func NewHideProductCommand(productID kernel.UUID) (HideProductCommand, error) {
	cmd := HideProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return HideProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HideProductCommand) Validate() error {
	return c.guard.Validate(ErrHideProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to hide.
func (c HideProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *HideProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
