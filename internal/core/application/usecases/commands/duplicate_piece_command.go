package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrDuplicatePieceCommandIsNotConstructed = errors.New(
		"DuplicatePieceCommand must be created via NewDuplicatePieceCommand constructor",
	)
	ErrPieceIndexIsInvalid = errors.New("piece index must not be negative")
)

// DuplicatePieceCommand represents a request to deep-copy one piece of an
// order, material selections included. The copy starts with zero progress.
type DuplicatePieceCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	pieceIndex int

	guard guard.ConstructorGuard
}

// NewDuplicatePieceCommand creates a command to duplicate a piece.
func NewDuplicatePieceCommand(orderID kernel.UUID, pieceIndex int) (DuplicatePieceCommand, error) {
	cmd := DuplicatePieceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPieceIndex(pieceIndex),
	); err != nil {
		return DuplicatePieceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DuplicatePieceCommand) Validate() error {
	return c.guard.Validate(ErrDuplicatePieceCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c DuplicatePieceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PieceIndex returns the position of the piece to duplicate.
func (c DuplicatePieceCommand) PieceIndex() int {
	return c.pieceIndex
}

func (c *DuplicatePieceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DuplicatePieceCommand) setPieceIndex(pieceIndex int) error {
	if pieceIndex < 0 {
		return ErrPieceIndexIsInvalid
	}

	c.pieceIndex = pieceIndex
	return nil
}
