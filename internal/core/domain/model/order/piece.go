package order

import (
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/product"
	"printshop/internal/pkg/errs"
)

// Part is one material requirement inside a piece: a labelled mass of
// filament, optionally bound to a material from the inventory. A part is
// unassigned until a material id is set; unassigned mass lands in the
// reserved bucket of the order's totals.
type Part struct {
	label         string
	requiredGrams float64
	materialID    *kernel.UUID
}

// NewPart creates a part with validation. Pass nil for an unassigned part.
func NewPart(label string, requiredGrams float64, materialID *kernel.UUID) (Part, error) {
	if label == "" {
		return Part{}, errs.NewValueIsRequiredError("part label")
	}
	if requiredGrams < 0 {
		return Part{}, errs.NewValueIsInvalidErrorWithCause(
			"required grams",
			fmt.Errorf("%v is negative", requiredGrams),
		)
	}
	if materialID != nil {
		if err := materialID.Validate(); err != nil {
			return Part{}, err
		}
		id := *materialID
		materialID = &id
	}
	return Part{label: label, requiredGrams: requiredGrams, materialID: materialID}, nil
}

// Label returns the human-readable name of the part.
func (p Part) Label() string {
	return p.label
}

// RequiredGrams returns the grams of material one unit of the part consumes.
func (p Part) RequiredGrams() float64 {
	return p.requiredGrams
}

// MaterialID returns the assigned material's id, or nil when unassigned.
func (p Part) MaterialID() *kernel.UUID {
	if p.materialID == nil {
		return nil
	}
	id := *p.materialID
	return &id
}

// Piece is one product instance inside an order: a snapshot of a product
// template (title and part requirements copied at add-time), a quantity that
// multiplies every part's mass and the unit price, and the piece's own
// printed-progress counter.
//
// Progress is keyed by the piece itself rather than by its position in the
// order, so inserting or removing neighbouring pieces never shifts it.
type Piece struct {
	id           kernel.UUID
	productID    kernel.UUID
	productTitle string
	quantity     int
	unitPrice    *float64
	parts        []Part
	printed      int
}

// newPieceFromTemplate snapshots a product template into a fresh piece.
// The unit price is filled only when the template declares a single price;
// variant-priced templates leave it unset for the caller to resolve later.
func newPieceFromTemplate(template *product.Product, quantity int) (*Piece, error) {
	if err := template.Validate(); err != nil {
		return nil, err
	}
	requirements := template.Requirements()
	if len(requirements) == 0 && !template.HasAnyPrice() {
		return nil, fmt.Errorf("%w: product %s has no parts and no price", ErrTemplateIsInvalid, template.Title())
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: %d is not a positive integer", ErrQuantityIsInvalid, quantity)
	}

	parts := make([]Part, 0, len(requirements))
	for _, r := range requirements {
		parts = append(parts, Part{label: r.Label(), requiredGrams: r.Grams()})
	}

	var unitPrice *float64
	if price, ok := template.UnitPrice(); ok {
		unitPrice = &price
	}

	return &Piece{
		id:           kernel.NewUUID(),
		productID:    template.ID(),
		productTitle: template.Title(),
		quantity:     quantity,
		unitPrice:    unitPrice,
		parts:        parts,
	}, nil
}

// RestorePiece reconstructs a piece from persistent storage.
//
// The printed count may exceed the quantity: a quantity edit does not clamp
// progress, the next progress recompute does, and that transiently
// inconsistent state is storable. Only negative progress is rejected.
func RestorePiece(
	id kernel.UUID,
	productID kernel.UUID,
	productTitle string,
	quantity int,
	unitPrice *float64,
	parts []Part,
	printed int,
) (*Piece, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if productTitle == "" {
		return nil, errs.NewValueIsRequiredError("product title")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: %d is not a positive integer", ErrQuantityIsInvalid, quantity)
	}
	if unitPrice != nil && *unitPrice < 0 {
		return nil, fmt.Errorf("%w: %v is negative", ErrPriceIsInvalid, *unitPrice)
	}
	if printed < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"printed count",
			fmt.Errorf("%d is negative", printed),
		)
	}

	p := &Piece{
		id:           id,
		productID:    productID,
		productTitle: productTitle,
		quantity:     quantity,
		parts:        make([]Part, len(parts)),
		printed:      printed,
	}
	copy(p.parts, parts)
	if unitPrice != nil {
		price := *unitPrice
		p.unitPrice = &price
	}
	return p, nil
}

// clone deep-copies the piece, including per-part material selections.
// The copy gets a fresh id and starts with zero printed progress.
func (p *Piece) clone() *Piece {
	c := &Piece{
		id:           kernel.NewUUID(),
		productID:    p.productID,
		productTitle: p.productTitle,
		quantity:     p.quantity,
		parts:        make([]Part, len(p.parts)),
	}
	copy(c.parts, p.parts)
	if p.unitPrice != nil {
		price := *p.unitPrice
		c.unitPrice = &price
	}
	return c
}

// ID returns the piece's stable identifier.
func (p *Piece) ID() kernel.UUID {
	return p.id
}

// ProductID returns the id of the product template the piece was created from.
func (p *Piece) ProductID() kernel.UUID {
	return p.productID
}

// ProductTitle returns the product title snapshotted at add-time.
func (p *Piece) ProductTitle() string {
	return p.productTitle
}

// Quantity returns how many units of the product the piece covers.
func (p *Piece) Quantity() int {
	return p.quantity
}

// UnitPrice returns the selling price of one unit, when one is set.
func (p *Piece) UnitPrice() (float64, bool) {
	if p.unitPrice == nil {
		return 0, false
	}
	return *p.unitPrice, true
}

// Parts returns the piece's material requirements.
// The returned slice is a copy to prevent external modification.
func (p *Piece) Parts() []Part {
	out := make([]Part, len(p.parts))
	copy(out, p.parts)
	return out
}

// Printed returns the piece's printed-progress counter. It may transiently
// exceed Quantity after a quantity edit, until the next progress recompute
// clamps it.
func (p *Piece) Printed() int {
	return p.printed
}
