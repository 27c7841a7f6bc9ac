package product

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrTitleIsRequired is returned when attempting to create a product without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrOwnerIsRequired is returned when attempting to create a product without an owner.
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("owner id")
	// ErrUnknownPriceVariant is returned when resolving a price variant the product does not declare.
	ErrUnknownPriceVariant = errors.New("unknown price variant")
)

// PartRequirement describes one printed part of a product: a human-readable
// label and the grams of material a single unit of that part consumes.
// It is a value object; orders copy requirements into their own part snapshots.
type PartRequirement struct {
	label string
	grams float64
}

// NewPartRequirement creates a part requirement with validation.
// The label must be non-empty and the required mass must not be negative.
func NewPartRequirement(label string, grams float64) (PartRequirement, error) {
	if label == "" {
		return PartRequirement{}, errs.NewValueIsRequiredError("part label")
	}
	if grams < 0 {
		return PartRequirement{}, errs.NewValueIsInvalidErrorWithCause(
			"required grams",
			fmt.Errorf("%v is negative", grams),
		)
	}
	return PartRequirement{label: label, grams: grams}, nil
}

// Label returns the human-readable name of the part.
func (r PartRequirement) Label() string {
	return r.label
}

// Grams returns the grams of material one unit of the part consumes.
func (r PartRequirement) Grams() float64 {
	return r.grams
}

// Product is the aggregate root for a product template. It carries the part
// requirements and pricing that the order composer snapshots when a piece is
// added to an order.
//
// Pricing is either a single unit price or a map of named variants (for
// example {"small": 5, "large": 9}); a product declares at most one of the
// two forms. A product with neither parts nor any price is still storable,
// but the order composer rejects it as a template.
type Product struct {
	id             kernel.UUID
	ownerID        string
	title          string
	printTimeHours float64
	requirements   []PartRequirement
	unitPrice      *float64
	priceVariants  map[string]float64
	hidden         bool

	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with validation. Exactly one of unitPrice
// and priceVariants may be set; pass nil for the unused form.
//
// Returns a validation error when the id is invalid, the title or owner is
// empty, the print time or any price is negative, or both pricing forms are
// given at once.
func NewProduct(
	id kernel.UUID,
	ownerID string,
	title string,
	printTimeHours float64,
	requirements []PartRequirement,
	unitPrice *float64,
	priceVariants map[string]float64,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOwnerID(ownerID),
		p.setTitle(title),
		p.setPrintTimeHours(printTimeHours),
		p.setRequirements(requirements),
		p.setPricing(unitPrice, priceVariants),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product aggregate from persistent storage,
// including its hidden flag. The restored product behaves identically to one
// created through NewProduct.
func RestoreProduct(
	id kernel.UUID,
	ownerID string,
	title string,
	printTimeHours float64,
	requirements []PartRequirement,
	unitPrice *float64,
	priceVariants map[string]float64,
	hidden bool,
) (*Product, error) {
	p, err := NewProduct(id, ownerID, title, printTimeHours, requirements, unitPrice, priceVariants)
	if err != nil {
		return nil, err
	}

	p.hidden = hidden
	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// OwnerID returns the opaque identifier of the user who owns the product.
func (p *Product) OwnerID() string {
	return p.ownerID
}

// Title returns the product's title.
func (p *Product) Title() string {
	return p.title
}

// PrintTimeHours returns the estimated print time for one unit of the product.
func (p *Product) PrintTimeHours() float64 {
	return p.printTimeHours
}

// Hidden reports whether the product has been soft-deleted.
func (p *Product) Hidden() bool {
	return p.hidden
}

// Requirements returns the product's part requirements.
// The returned slice is a copy to prevent external modification.
func (p *Product) Requirements() []PartRequirement {
	out := make([]PartRequirement, len(p.requirements))
	copy(out, p.requirements)
	return out
}

// UnitPrice returns the product's single unit price, when one is declared.
// Products priced by variant return ok=false; callers must resolve a variant
// through ResolvePrice before composing an order piece.
func (p *Product) UnitPrice() (float64, bool) {
	if p.unitPrice == nil {
		return 0, false
	}
	return *p.unitPrice, true
}

// PriceVariants returns the product's named price variants.
// The returned map is a copy; it is empty for single-priced products.
func (p *Product) PriceVariants() map[string]float64 {
	out := make(map[string]float64, len(p.priceVariants))
	for name, price := range p.priceVariants {
		out[name] = price
	}
	return out
}

// HasAnyPrice reports whether the product declares a single price or at least
// one price variant.
func (p *Product) HasAnyPrice() bool {
	return p.unitPrice != nil || len(p.priceVariants) > 0
}

// ResolvePrice resolves a named price variant to a concrete unit price.
// Single-priced products resolve the empty variant name to their unit price.
// Returns ErrUnknownPriceVariant when the variant is not declared.
func (p *Product) ResolvePrice(variant string) (float64, error) {
	if variant == "" && p.unitPrice != nil {
		return *p.unitPrice, nil
	}

	price, ok := p.priceVariants[variant]
	if !ok {
		return 0, fmt.Errorf("%w: %q on product %s", ErrUnknownPriceVariant, variant, p.title)
	}
	return price, nil
}

// Hide marks the product as soft-deleted. Hidden products are excluded from
// catalog listings but remain addressable by id; existing order pieces keep
// their snapshots regardless.
func (p *Product) Hide() {
	p.hidden = true
}

// setID validates and sets the product's unique identifier.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setOwnerID validates and sets the owning user's identifier.
func (p *Product) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIsRequired
	}
	p.ownerID = ownerID
	return nil
}

// setTitle validates and sets the product's title.
func (p *Product) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	p.title = title
	return nil
}

// setPrintTimeHours validates and sets the estimated print time.
func (p *Product) setPrintTimeHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"print time hours",
			fmt.Errorf("%v is negative", hours),
		)
	}
	p.printTimeHours = hours
	return nil
}

// setRequirements copies and sets the part requirements.
// Zero-value requirements (not built via NewPartRequirement) are rejected.
func (p *Product) setRequirements(requirements []PartRequirement) error {
	for _, r := range requirements {
		if r.label == "" {
			return errs.NewValueIsRequiredError("part label")
		}
	}

	p.requirements = make([]PartRequirement, len(requirements))
	copy(p.requirements, requirements)
	return nil
}

// setPricing validates and sets the pricing form.
func (p *Product) setPricing(unitPrice *float64, priceVariants map[string]float64) error {
	if unitPrice != nil && len(priceVariants) > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pricing",
			errors.New("a product declares either a unit price or price variants, not both"),
		)
	}

	if unitPrice != nil {
		if *unitPrice < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"unit price",
				fmt.Errorf("%v is negative", *unitPrice),
			)
		}
		price := *unitPrice
		p.unitPrice = &price
		return nil
	}

	if len(priceVariants) > 0 {
		variants := make(map[string]float64, len(priceVariants))
		for name, price := range priceVariants {
			if name == "" {
				return errs.NewValueIsRequiredError("price variant name")
			}
			if price < 0 {
				return errs.NewValueIsInvalidErrorWithCause(
					"price variant",
					fmt.Errorf("%q is %v, which is negative", name, price),
				)
			}
			variants[name] = price
		}
		p.priceVariants = variants
	}

	return nil
}
