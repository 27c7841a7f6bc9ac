package material

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// Domain errors for material operations.
var (
	// ErrMaterialIsNotConstructed is returned when using an improperly initialized Material.
	ErrMaterialIsNotConstructed = errors.New("Material must be created via NewMaterial constructor")
	// ErrTitleIsRequired is returned when attempting to create a material without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrOwnerIsRequired is returned when attempting to create a material without an owner.
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("owner id")
)

// Material is the aggregate root for a filament spool type in the inventory.
//
// PricePerKilo drives order expense estimates; SpoolsOwned and TotalUsedKilos
// track physical stock. The aggregate does not decrement spools on use: usage
// accumulates in kilograms and spool counts are adjusted by hand, matching how
// small shops actually track filament.
type Material struct {
	id             kernel.UUID
	ownerID        string
	title          string
	brand          string
	colors         []string
	types          []string
	url            string
	pricePerKilo   float64
	spoolsOwned    int
	totalUsedKilos float64
	hidden         bool

	guard guard.ConstructorGuard
}

// NewMaterial creates a new Material with validation.
//
// Colors and type tags are optional; the url may be empty. Price per kilo and
// the initial spool count must not be negative.
func NewMaterial(
	id kernel.UUID,
	ownerID string,
	title string,
	brand string,
	colors []string,
	types []string,
	url string,
	pricePerKilo float64,
	spoolsOwned int,
) (*Material, error) {
	m := &Material{
		brand: brand,
		url:   url,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setOwnerID(ownerID),
		m.setTitle(title),
		m.setColors(colors),
		m.setTypes(types),
		m.setPricePerKilo(pricePerKilo),
		m.setSpoolsOwned(spoolsOwned),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMaterial reconstructs a Material aggregate from persistent storage,
// including its cumulative usage and hidden flag.
func RestoreMaterial(
	id kernel.UUID,
	ownerID string,
	title string,
	brand string,
	colors []string,
	types []string,
	url string,
	pricePerKilo float64,
	spoolsOwned int,
	totalUsedKilos float64,
	hidden bool,
) (*Material, error) {
	m, err := NewMaterial(id, ownerID, title, brand, colors, types, url, pricePerKilo, spoolsOwned)
	if err != nil {
		return nil, err
	}
	if totalUsedKilos < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total used kilos",
			fmt.Errorf("%v is negative", totalUsedKilos),
		)
	}

	m.totalUsedKilos = totalUsedKilos
	m.hidden = hidden
	return m, nil
}

// Validate ensures the Material instance was properly constructed through NewMaterial.
func (m *Material) Validate() error {
	if m == nil {
		return ErrMaterialIsNotConstructed
	}
	return m.guard.Validate(ErrMaterialIsNotConstructed)
}

// IsEqual compares two materials by their unique identifiers.
func (m *Material) IsEqual(other *Material) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the material's unique identifier.
func (m *Material) ID() kernel.UUID {
	return m.id
}

// OwnerID returns the opaque identifier of the user who owns the material.
func (m *Material) OwnerID() string {
	return m.ownerID
}

// Title returns the material's title.
func (m *Material) Title() string {
	return m.title
}

// Brand returns the manufacturer name, which may be empty.
func (m *Material) Brand() string {
	return m.brand
}

// URL returns the reorder link for the spool, which may be empty.
func (m *Material) URL() string {
	return m.url
}

// Colors returns the material's color names.
// The returned slice is a copy to prevent external modification.
func (m *Material) Colors() []string {
	out := make([]string, len(m.colors))
	copy(out, m.colors)
	return out
}

// Types returns the material's type tags, such as PLA or PETG.
// The returned slice is a copy to prevent external modification.
func (m *Material) Types() []string {
	out := make([]string, len(m.types))
	copy(out, m.types)
	return out
}

// PricePerKilo returns the price of one kilogram of the material.
func (m *Material) PricePerKilo() float64 {
	return m.pricePerKilo
}

// SpoolsOwned returns the number of spools currently on hand.
func (m *Material) SpoolsOwned() int {
	return m.spoolsOwned
}

// TotalUsedKilos returns the cumulative kilograms charged against the material.
func (m *Material) TotalUsedKilos() float64 {
	return m.totalUsedKilos
}

// Hidden reports whether the material has been soft-deleted.
func (m *Material) Hidden() bool {
	return m.hidden
}

// SetSpoolsOwned updates the number of spools on hand.
// Returns a validation error when the count is negative.
func (m *Material) SetSpoolsOwned(owned int) error {
	return m.setSpoolsOwned(owned)
}

// SetPricePerKilo updates the price of one kilogram of the material.
// Existing order totals pick the new price up on their next recompute.
func (m *Material) SetPricePerKilo(price float64) error {
	return m.setPricePerKilo(price)
}

// RecordUsage charges kilograms of consumed filament against the material's
// cumulative usage counter. Zero is a no-op; negative amounts are rejected.
func (m *Material) RecordUsage(kilos float64) error {
	if kilos < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"used kilos",
			fmt.Errorf("%v is negative", kilos),
		)
	}
	m.totalUsedKilos += kilos
	return nil
}

// Hide marks the material as soft-deleted. Hidden materials are excluded from
// inventory listings and stop resolving in order cost lookups; orders keep
// their references untouched.
func (m *Material) Hide() {
	m.hidden = true
}

// setID validates and sets the material's unique identifier.
func (m *Material) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

// setOwnerID validates and sets the owning user's identifier.
func (m *Material) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIsRequired
	}
	m.ownerID = ownerID
	return nil
}

// setTitle validates and sets the material's title.
func (m *Material) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	m.title = title
	return nil
}

// setColors copies and sets the color names, rejecting empty entries.
func (m *Material) setColors(colors []string) error {
	for _, c := range colors {
		if c == "" {
			return errs.NewValueIsRequiredError("color name")
		}
	}
	m.colors = make([]string, len(colors))
	copy(m.colors, colors)
	return nil
}

// setTypes copies and sets the type tags, rejecting empty entries.
func (m *Material) setTypes(types []string) error {
	for _, t := range types {
		if t == "" {
			return errs.NewValueIsRequiredError("type tag")
		}
	}
	m.types = make([]string, len(types))
	copy(m.types, types)
	return nil
}

// setPricePerKilo validates and sets the price per kilogram.
func (m *Material) setPricePerKilo(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price per kilo",
			fmt.Errorf("%v is negative", price),
		)
	}
	m.pricePerKilo = price
	return nil
}

// setSpoolsOwned validates and sets the spool count.
func (m *Material) setSpoolsOwned(owned int) error {
	if owned < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"spools owned",
			fmt.Errorf("%d is negative", owned),
		)
	}
	m.spoolsOwned = owned
	return nil
}
