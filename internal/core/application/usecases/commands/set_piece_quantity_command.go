package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrSetPieceQuantityCommandIsNotConstructed = errors.New(
	"SetPieceQuantityCommand must be created via NewSetPieceQuantityCommand constructor",
)

// SetPieceQuantityCommand represents a request to change how many units a
// piece covers. Shrinking below the piece's printed count is allowed; the
// count is clamped on the next progress update.
type SetPieceQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	pieceIndex int
	quantity   int

	guard guard.ConstructorGuard
}

// NewSetPieceQuantityCommand creates a command to change a piece's quantity.
func NewSetPieceQuantityCommand(orderID kernel.UUID, pieceIndex int, quantity int) (SetPieceQuantityCommand, error) {
	cmd := SetPieceQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPieceIndex(pieceIndex),
		cmd.setQuantity(quantity),
	); err != nil {
		return SetPieceQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPieceQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetPieceQuantityCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c SetPieceQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PieceIndex returns the position of the piece to edit.
func (c SetPieceQuantityCommand) PieceIndex() int {
	return c.pieceIndex
}

// Quantity returns the new quantity.
func (c SetPieceQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetPieceQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetPieceQuantityCommand) setPieceIndex(pieceIndex int) error {
	if pieceIndex < 0 {
		return ErrPieceIndexIsInvalid
	}

	c.pieceIndex = pieceIndex
	return nil
}

func (c *SetPieceQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
