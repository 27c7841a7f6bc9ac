package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrMarkPrintedCommandIsNotConstructed = errors.New(
	"MarkPrintedCommand must be created via NewMarkPrintedCommand constructor",
)

// MarkPrintedCommand represents a request to fast-forward every piece of an
// order to full printed progress and set the status to Printed.
type MarkPrintedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPrintedCommand creates a command to mark an order printed.
func NewMarkPrintedCommand(orderID kernel.UUID) (MarkPrintedCommand, error) {
	cmd := MarkPrintedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkPrintedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPrintedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPrintedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark printed.
func (c MarkPrintedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkPrintedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
