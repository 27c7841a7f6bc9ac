package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrRemovePieceCommandIsNotConstructed = errors.New(
	"RemovePieceCommand must be created via NewRemovePieceCommand constructor",
)

// RemovePieceCommand represents a request to remove one piece from an order.
// The surviving pieces keep their printed progress.
type RemovePieceCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	pieceIndex int

	guard guard.ConstructorGuard
}

// NewRemovePieceCommand creates a command to remove a piece.
func NewRemovePieceCommand(orderID kernel.UUID, pieceIndex int) (RemovePieceCommand, error) {
	cmd := RemovePieceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPieceIndex(pieceIndex),
	); err != nil {
		return RemovePieceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePieceCommand) Validate() error {
	return c.guard.Validate(ErrRemovePieceCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c RemovePieceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PieceIndex returns the position of the piece to remove.
func (c RemovePieceCommand) PieceIndex() int {
	return c.pieceIndex
}

func (c *RemovePieceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemovePieceCommand) setPieceIndex(pieceIndex int) error {
	if pieceIndex < 0 {
		return ErrPieceIndexIsInvalid
	}

	c.pieceIndex = pieceIndex
	return nil
}
