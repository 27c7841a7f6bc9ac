package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrMarkDoneCommandIsNotConstructed = errors.New(
	"MarkDoneCommand must be created via NewMarkDoneCommand constructor",
)

// MarkDoneCommand represents a request to finish an order. Besides setting
// the status to Done, finishing charges the order's filament consumption
// against the inventory materials it used.
type MarkDoneCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDoneCommand creates a command to finish an order.
func NewMarkDoneCommand(orderID kernel.UUID) (MarkDoneCommand, error) {
	cmd := MarkDoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkDoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDoneCommand) Validate() error {
	return c.guard.Validate(ErrMarkDoneCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to finish.
func (c MarkDoneCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkDoneCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
