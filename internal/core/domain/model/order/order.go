package order

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/product"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTitleIsRequired is returned when attempting to create an order without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

	// ErrOwnerIsRequired is returned when attempting to create an order without an owner.
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("owner id")

	// ErrTemplateIsInvalid is returned when adding a piece from a product template
	// that declares neither parts nor any price.
	ErrTemplateIsInvalid = errors.New("template is invalid")

	// ErrQuantityIsInvalid is returned for piece quantities that are not positive integers.
	ErrQuantityIsInvalid = errors.New("quantity is invalid")

	// ErrPriceIsInvalid is returned for negative piece unit prices.
	ErrPriceIsInvalid = errors.New("unit price is invalid")

	// ErrIndexOutOfRange is returned when a piece or part index is beyond bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidTransition is returned for status transitions the machine does not
	// define, such as restoring an order that is not Done.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Order is the aggregate root for one customer order. It owns the piece tree,
// the derived totals, and the fulfillment status, and is the only way to
// mutate any of them.
//
// Order maintains these invariants:
//   - every composer mutation leaves totals freshly recomputed;
//   - printed counts stay within [0, quantity] after every progress operation;
//   - status is derived from printed counts except for Done, which is set and
//     cleared only by explicit action;
//   - hidden orders keep their full content and remain addressable by id.
type Order struct {
	id      kernel.UUID
	ownerID string
	title   string
	dueDate *time.Time
	hidden  bool
	status  Status
	pieces  []*Piece
	totals  Totals

	guard guard.ConstructorGuard
}

// NewOrder creates a new empty Order with validation. A fresh order has
// status NotStarted, no pieces, and zero-filled totals; the due date is
// optional.
func NewOrder(id kernel.UUID, ownerID string, title string, dueDate *time.Time) (*Order, error) {
	o := &Order{
		status: NotStarted,
		totals: emptyTotals(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setTitle(title),
	); err != nil {
		return nil, err
	}

	if dueDate != nil {
		due := *dueDate
		o.dueDate = &due
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Totals are restored as persisted rather than recomputed, since restoring
// has no cost lookup at hand; the next composer mutation refreshes them.
func RestoreOrder(
	id kernel.UUID,
	ownerID string,
	title string,
	dueDate *time.Time,
	status Status,
	pieces []*Piece,
	totals Totals,
	hidden bool,
) (*Order, error) {
	o, err := NewOrder(id, ownerID, title, dueDate)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, p := range pieces {
		if p == nil {
			return nil, errs.NewValueIsRequiredError("piece")
		}
	}

	o.status = status
	o.pieces = make([]*Piece, len(pieces))
	copy(o.pieces, pieces)
	o.totals = copyTotals(totals)
	if o.totals.ByMaterial == nil {
		o.totals.ByMaterial = map[string]MaterialTotal{}
	}
	o.hidden = hidden
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the opaque identifier of the user who owns the order.
func (o *Order) OwnerID() string {
	return o.ownerID
}

// Title returns the order's title.
func (o *Order) Title() string {
	return o.title
}

// DueDate returns the order's due date, or nil when none is set.
func (o *Order) DueDate() *time.Time {
	if o.dueDate == nil {
		return nil
	}
	due := *o.dueDate
	return &due
}

// SetDueDate sets or clears the order's due date.
func (o *Order) SetDueDate(dueDate *time.Time) {
	if dueDate == nil {
		o.dueDate = nil
		return
	}
	due := *dueDate
	o.dueDate = &due
}

// SetTitle updates the order's title.
func (o *Order) SetTitle(title string) error {
	return o.setTitle(title)
}

// Hidden reports whether the order has been soft-deleted.
func (o *Order) Hidden() bool {
	return o.hidden
}

// Status returns the current fulfillment status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Pieces returns the order's pieces in composition order.
// The slice is a copy; pieces themselves are read-only outside this package.
func (o *Order) Pieces() []*Piece {
	out := make([]*Piece, len(o.pieces))
	copy(out, o.pieces)
	return out
}

// Totals returns the order's derived totals snapshot.
func (o *Order) Totals() Totals {
	return copyTotals(o.totals)
}

// PrintedCounts returns the printed progress keyed by piece position.
// It is a derived view; progress is owned by the pieces themselves, so
// inserting or removing pieces never shifts another piece's count.
func (o *Order) PrintedCounts() map[int]int {
	counts := make(map[int]int, len(o.pieces))
	for i, p := range o.pieces {
		counts[i] = p.printed
	}
	return counts
}

// AddPiece appends a new piece snapshotting the given product template and
// recomputes totals.
//
// Returns ErrTemplateIsInvalid when the template has neither parts nor any
// declared price, and ErrQuantityIsInvalid for a non-positive quantity. The
// unit price is filled only for single-priced templates; variant-priced
// templates need SetPieceUnitPrice once the caller has resolved a variant.
func (o *Order) AddPiece(template *product.Product, quantity int, lookup CostLookup) error {
	piece, err := newPieceFromTemplate(template, quantity)
	if err != nil {
		return err
	}

	o.pieces = append(o.pieces, piece)
	o.recompute(lookup)
	return nil
}

// DuplicatePiece deep-copies the piece at index, including per-part material
// selections, and inserts the copy immediately after it. The copy gets its
// own identity and starts with zero printed progress.
func (o *Order) DuplicatePiece(index int, lookup CostLookup) error {
	if err := o.validatePieceIndex(index); err != nil {
		return err
	}

	clone := o.pieces[index].clone()
	o.pieces = append(o.pieces, nil)
	copy(o.pieces[index+2:], o.pieces[index+1:])
	o.pieces[index+1] = clone
	o.recompute(lookup)
	return nil
}

// RemovePiece removes the piece at index and recomputes totals. Progress of
// the surviving pieces is untouched: each piece carries its own counter, so
// no re-keying happens on removal.
func (o *Order) RemovePiece(index int, lookup CostLookup) error {
	if err := o.validatePieceIndex(index); err != nil {
		return err
	}

	o.pieces = append(o.pieces[:index], o.pieces[index+1:]...)
	o.recompute(lookup)
	return nil
}

// SetPieceQuantity updates the quantity of the piece at index.
//
// Printed progress is deliberately not clamped here: a shrink below the
// current printed count leaves the record transiently inconsistent until the
// next progress operation clamps it back into range.
func (o *Order) SetPieceQuantity(index int, quantity int, lookup CostLookup) error {
	if err := o.validatePieceIndex(index); err != nil {
		return err
	}
	if quantity < 1 {
		return fmt.Errorf("%w: %d is not a positive integer", ErrQuantityIsInvalid, quantity)
	}

	o.pieces[index].quantity = quantity
	o.recompute(lookup)
	return nil
}

// SetPieceUnitPrice sets the selling price of one unit of the piece at index.
// It is how callers price pieces created from variant-priced templates.
func (o *Order) SetPieceUnitPrice(index int, price float64, lookup CostLookup) error {
	if err := o.validatePieceIndex(index); err != nil {
		return err
	}
	if price < 0 {
		return fmt.Errorf("%w: %v is negative", ErrPriceIsInvalid, price)
	}

	o.pieces[index].unitPrice = &price
	o.recompute(lookup)
	return nil
}

// SetPartMaterial assigns or clears (materialID nil) the material selection
// of one part and recomputes totals.
func (o *Order) SetPartMaterial(pieceIndex int, partIndex int, materialID *kernel.UUID, lookup CostLookup) error {
	if err := o.validatePieceIndex(pieceIndex); err != nil {
		return err
	}
	piece := o.pieces[pieceIndex]
	if partIndex < 0 || partIndex >= len(piece.parts) {
		return fmt.Errorf("%w: part index %d of %d", ErrIndexOutOfRange, partIndex, len(piece.parts))
	}

	if materialID == nil {
		piece.parts[partIndex].materialID = nil
	} else {
		if err := materialID.Validate(); err != nil {
			return err
		}
		id := *materialID
		piece.parts[partIndex].materialID = &id
	}

	o.recompute(lookup)
	return nil
}

// SetPrintedCount updates the printed progress of the piece at pieceIndex.
// The count is clamped into [0, quantity], every other piece's count is
// clamped too, and the status is re-derived from the counts, unless the
// order is Done: Done is sticky and only Restore leaves it.
func (o *Order) SetPrintedCount(pieceIndex int, count int) error {
	if err := o.validatePieceIndex(pieceIndex); err != nil {
		return err
	}

	piece := o.pieces[pieceIndex]
	piece.printed = clamp(count, 0, piece.quantity)
	o.clampProgress()
	o.deriveStatus()
	return nil
}

// MarkPrinted fast-forwards every piece's printed count to its full quantity
// and sets the status to Printed, regardless of current counts or status.
func (o *Order) MarkPrinted() {
	for _, p := range o.pieces {
		p.printed = p.quantity
	}
	o.status = Printed
}

// MarkDone sets the status to Done unconditionally. Printed counts are left
// untouched, so an order can be Done with incomplete progress. Done holds
// until an explicit Restore; progress edits never re-derive it away.
func (o *Order) MarkDone() {
	o.status = Done
}

// Restore moves a Done order back to Printed.
// Returns ErrInvalidTransition when the order is not Done; the order is
// left unchanged.
func (o *Order) Restore() error {
	newStatus, err := o.status.Restore()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Hide marks the order as soft-deleted. Content and status are retained and
// the order stays addressable by id; it is only excluded from listings.
func (o *Order) Hide() {
	o.hidden = true
}

// Recompute refreshes the totals against the given cost lookup without any
// composer mutation, for callers that need totals after catalog price edits.
func (o *Order) Recompute(lookup CostLookup) {
	o.recompute(lookup)
}

// recompute runs the aggregation engine over the piece tree. It is the
// mandatory post-step of every composer mutation.
func (o *Order) recompute(lookup CostLookup) {
	o.totals = computeTotals(o.pieces, lookup)
}

// clampProgress forces every piece's printed count back into [0, quantity].
// It runs on every progress operation, repairing any transient inconsistency
// left by a preceding quantity shrink.
func (o *Order) clampProgress() {
	for _, p := range o.pieces {
		p.printed = clamp(p.printed, 0, p.quantity)
	}
}

// deriveStatus recomputes the progress-derived status from printed counts.
// A Done order is left alone: the manual override is sticky.
func (o *Order) deriveStatus() {
	if o.status == Done {
		return
	}

	anyStarted := false
	allComplete := len(o.pieces) > 0
	for _, p := range o.pieces {
		if p.printed > 0 {
			anyStarted = true
		}
		if p.printed != p.quantity {
			allComplete = false
		}
	}

	o.status = deriveStatus(anyStarted, allComplete)
}

// validatePieceIndex bounds-checks a piece index.
func (o *Order) validatePieceIndex(index int) error {
	if index < 0 || index >= len(o.pieces) {
		return fmt.Errorf("%w: piece index %d of %d", ErrIndexOutOfRange, index, len(o.pieces))
	}
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOwnerID validates and sets the owning user's identifier.
func (o *Order) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIsRequired
	}
	o.ownerID = ownerID
	return nil
}

// setTitle validates and sets the order's title.
func (o *Order) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	o.title = title
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
