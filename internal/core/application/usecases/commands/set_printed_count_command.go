package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrSetPrintedCountCommandIsNotConstructed = errors.New(
	"SetPrintedCountCommand must be created via NewSetPrintedCountCommand constructor",
)

// SetPrintedCountCommand represents a progress update: how many units of one
// piece have been printed. The count is clamped into range by the aggregate,
// so any integer is accepted here.
type SetPrintedCountCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	pieceIndex int
	count      int

	guard guard.ConstructorGuard
}

// NewSetPrintedCountCommand creates a command to update printed progress.
func NewSetPrintedCountCommand(orderID kernel.UUID, pieceIndex int, count int) (SetPrintedCountCommand, error) {
	cmd := SetPrintedCountCommand{
		count: count,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPieceIndex(pieceIndex),
	); err != nil {
		return SetPrintedCountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPrintedCountCommand) Validate() error {
	return c.guard.Validate(ErrSetPrintedCountCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c SetPrintedCountCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PieceIndex returns the position of the piece to update.
func (c SetPrintedCountCommand) PieceIndex() int {
	return c.pieceIndex
}

// Count returns the new printed count, before clamping.
func (c SetPrintedCountCommand) Count() int {
	return c.count
}

func (c *SetPrintedCountCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetPrintedCountCommand) setPieceIndex(pieceIndex int) error {
	if pieceIndex < 0 {
		return ErrPieceIndexIsInvalid
	}

	c.pieceIndex = pieceIndex
	return nil
}
