package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrAddPieceCommandIsNotConstructed = errors.New(
		"AddPieceCommand must be created via NewAddPieceCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddPieceCommand represents a request to add a product piece to an order.
// The piece snapshots the product template at add-time; a variant-priced
// template leaves the piece unpriced until SetPieceUnitPriceCommand.
type AddPieceCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddPieceCommand creates a command to add a piece to an order.
func NewAddPieceCommand(orderID kernel.UUID, productID kernel.UUID, quantity int) (AddPieceCommand, error) {
	cmd := AddPieceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddPieceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPieceCommand) Validate() error {
	return c.guard.Validate(ErrAddPieceCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddPieceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product template to snapshot.
func (c AddPieceCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns how many units the new piece covers.
func (c AddPieceCommand) Quantity() int {
	return c.quantity
}

func (c *AddPieceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddPieceCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddPieceCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
