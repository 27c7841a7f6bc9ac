package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/product"
	"printshop/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product template to the
// catalog. Pricing is either a single unit price or named variants; the
// aggregate rejects declaring both.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	ownerID        string
	title          string
	printTimeHours float64
	requirements   []product.PartRequirement
	unitPrice      *float64
	priceVariants  map[string]float64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product template.
func NewCreateProductCommand(
	productID kernel.UUID,
	ownerID string,
	title string,
	printTimeHours float64,
	requirements []product.PartRequirement,
	unitPrice *float64,
	priceVariants map[string]float64,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		printTimeHours: printTimeHours,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setOwnerID(ownerID),
		cmd.setTitle(title),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.requirements = make([]product.PartRequirement, len(requirements))
	copy(cmd.requirements, requirements)

	if unitPrice != nil {
		price := *unitPrice
		cmd.unitPrice = &price
	}
	if len(priceVariants) > 0 {
		cmd.priceVariants = make(map[string]float64, len(priceVariants))
		for name, price := range priceVariants {
			cmd.priceVariants[name] = price
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// OwnerID returns the identifier of the user adding the product.
func (c CreateProductCommand) OwnerID() string {
	return c.ownerID
}

// Title returns the product's title.
func (c CreateProductCommand) Title() string {
	return c.title
}

// PrintTimeHours returns the estimated print time for one unit.
func (c CreateProductCommand) PrintTimeHours() float64 {
	return c.printTimeHours
}

// Requirements returns the product's part requirements.
func (c CreateProductCommand) Requirements() []product.PartRequirement {
	out := make([]product.PartRequirement, len(c.requirements))
	copy(out, c.requirements)
	return out
}

// UnitPrice returns the single unit price, or nil for variant-priced products.
func (c CreateProductCommand) UnitPrice() *float64 {
	if c.unitPrice == nil {
		return nil
	}
	price := *c.unitPrice
	return &price
}

// PriceVariants returns the named price variants.
func (c CreateProductCommand) PriceVariants() map[string]float64 {
	out := make(map[string]float64, len(c.priceVariants))
	for name, price := range c.priceVariants {
		out[name] = price
	}
	return out
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateProductCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}
