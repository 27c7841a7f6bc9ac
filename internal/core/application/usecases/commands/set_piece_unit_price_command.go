package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrSetPieceUnitPriceCommandIsNotConstructed = errors.New(
		"SetPieceUnitPriceCommand must be created via NewSetPieceUnitPriceCommand constructor",
	)
	ErrPriceIsInvalid = errors.New("price must not be negative")
)

// SetPieceUnitPriceCommand represents a request to set the selling price of
// one unit of a piece, typically after resolving a variant-priced template.
type SetPieceUnitPriceCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	pieceIndex int
	price      float64

	guard guard.ConstructorGuard
}

// NewSetPieceUnitPriceCommand creates a command to price a piece.
func NewSetPieceUnitPriceCommand(orderID kernel.UUID, pieceIndex int, price float64) (SetPieceUnitPriceCommand, error) {
	cmd := SetPieceUnitPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPieceIndex(pieceIndex),
		cmd.setPrice(price),
	); err != nil {
		return SetPieceUnitPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPieceUnitPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetPieceUnitPriceCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c SetPieceUnitPriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PieceIndex returns the position of the piece to price.
func (c SetPieceUnitPriceCommand) PieceIndex() int {
	return c.pieceIndex
}

// Price returns the new unit price.
func (c SetPieceUnitPriceCommand) Price() float64 {
	return c.price
}

func (c *SetPieceUnitPriceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetPieceUnitPriceCommand) setPieceIndex(pieceIndex int) error {
	if pieceIndex < 0 {
		return ErrPieceIndexIsInvalid
	}

	c.pieceIndex = pieceIndex
	return nil
}

func (c *SetPieceUnitPriceCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
