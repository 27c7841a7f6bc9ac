package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrCreateMaterialCommandIsNotConstructed = errors.New(
	"CreateMaterialCommand must be created via NewCreateMaterialCommand constructor",
)

// CreateMaterialCommand represents a request to register a filament spool type
// in the inventory.
type CreateMaterialCommand struct { //nolint:recvcheck //using for validation
	materialID   kernel.UUID
	ownerID      string
	title        string
	brand        string
	colors       []string
	types        []string
	url          string
	pricePerKilo float64
	spoolsOwned  int

	guard guard.ConstructorGuard
}

// NewCreateMaterialCommand creates a command to register a material.
// Brand, colors, types and url are optional; price and spool validation is
// left to the aggregate.
func NewCreateMaterialCommand(
	materialID kernel.UUID,
	ownerID string,
	title string,
	brand string,
	colors []string,
	types []string,
	url string,
	pricePerKilo float64,
	spoolsOwned int,
) (CreateMaterialCommand, error) {
	cmd := CreateMaterialCommand{
		brand:        brand,
		url:          url,
		pricePerKilo: pricePerKilo,
		spoolsOwned:  spoolsOwned,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMaterialID(materialID),
		cmd.setOwnerID(ownerID),
		cmd.setTitle(title),
	); err != nil {
		return CreateMaterialCommand{}, err
	}

	cmd.colors = make([]string, len(colors))
	copy(cmd.colors, colors)
	cmd.types = make([]string, len(types))
	copy(cmd.types, types)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrCreateMaterialCommandIsNotConstructed)
}

// MaterialID returns the identifier for the new material.
func (c CreateMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

// OwnerID returns the identifier of the user registering the material.
func (c CreateMaterialCommand) OwnerID() string {
	return c.ownerID
}

// Title returns the material's title.
func (c CreateMaterialCommand) Title() string {
	return c.title
}

// Brand returns the manufacturer name, which may be empty.
func (c CreateMaterialCommand) Brand() string {
	return c.brand
}

// Colors returns the material's color names.
func (c CreateMaterialCommand) Colors() []string {
	out := make([]string, len(c.colors))
	copy(out, c.colors)
	return out
}

// Types returns the material's type tags.
func (c CreateMaterialCommand) Types() []string {
	out := make([]string, len(c.types))
	copy(out, c.types)
	return out
}

// URL returns the reorder link, which may be empty.
func (c CreateMaterialCommand) URL() string {
	return c.url
}

// PricePerKilo returns the price of one kilogram of the material.
func (c CreateMaterialCommand) PricePerKilo() float64 {
	return c.pricePerKilo
}

// SpoolsOwned returns the initial number of spools on hand.
func (c CreateMaterialCommand) SpoolsOwned() int {
	return c.spoolsOwned
}

func (c *CreateMaterialCommand) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}

	c.materialID = materialID
	return nil
}

func (c *CreateMaterialCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateMaterialCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}
