package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrSetPartMaterialCommandIsNotConstructed = errors.New(
		"SetPartMaterialCommand must be created via NewSetPartMaterialCommand constructor",
	)
	ErrPartIndexIsInvalid = errors.New("part index must not be negative")
)

// SetPartMaterialCommand represents a request to assign a material to one
// part of a piece, or to clear the assignment (nil material id).
type SetPartMaterialCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	pieceIndex int
	partIndex  int
	materialID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetPartMaterialCommand creates a command to change a part's material
// selection. Pass nil to clear the selection.
func NewSetPartMaterialCommand(orderID kernel.UUID, pieceIndex int, partIndex int, materialID *kernel.UUID) (SetPartMaterialCommand, error) {
	cmd := SetPartMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPieceIndex(pieceIndex),
		cmd.setPartIndex(partIndex),
		cmd.setMaterialID(materialID),
	); err != nil {
		return SetPartMaterialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartMaterialCommand) Validate() error {
	return c.guard.Validate(ErrSetPartMaterialCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c SetPartMaterialCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PieceIndex returns the position of the piece holding the part.
func (c SetPartMaterialCommand) PieceIndex() int {
	return c.pieceIndex
}

// PartIndex returns the position of the part within the piece.
func (c SetPartMaterialCommand) PartIndex() int {
	return c.partIndex
}

// MaterialID returns the material to assign, or nil to clear the selection.
func (c SetPartMaterialCommand) MaterialID() *kernel.UUID {
	if c.materialID == nil {
		return nil
	}
	id := *c.materialID
	return &id
}

func (c *SetPartMaterialCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetPartMaterialCommand) setPieceIndex(pieceIndex int) error {
	if pieceIndex < 0 {
		return ErrPieceIndexIsInvalid
	}

	c.pieceIndex = pieceIndex
	return nil
}

func (c *SetPartMaterialCommand) setPartIndex(partIndex int) error {
	if partIndex < 0 {
		return ErrPartIndexIsInvalid
	}

	c.partIndex = partIndex
	return nil
}

func (c *SetPartMaterialCommand) setMaterialID(materialID *kernel.UUID) error {
	if materialID == nil {
		return nil
	}
	if err := materialID.Validate(); err != nil {
		return err
	}

	id := *materialID
	c.materialID = &id
	return nil
}
