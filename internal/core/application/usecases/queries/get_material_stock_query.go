package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetMaterialStockQueryIsNotConstructed = errors.New(
	"GetMaterialStockQuery must be created via NewGetMaterialStockQuery constructor",
)

// GetMaterialStockQuery retrieves an owner's visible materials with their
// stock and cumulative usage figures for the inventory view.
type GetMaterialStockQuery struct {
	ownerID string

	guard guard.ConstructorGuard
}

// NewGetMaterialStockQuery creates a query for an owner's material inventory.
func NewGetMaterialStockQuery(ownerID string) (GetMaterialStockQuery, error) {
	if ownerID == "" {
		return GetMaterialStockQuery{}, ErrOwnerIsRequired
	}

	return GetMaterialStockQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMaterialStockQuery) Validate() error {
	return q.guard.Validate(ErrGetMaterialStockQueryIsNotConstructed)
}

// OwnerID returns the owner whose inventory is listed.
func (q GetMaterialStockQuery) OwnerID() string {
	return q.ownerID
}

// GetMaterialStockQueryResponse represents one material of the inventory view.
type GetMaterialStockQueryResponse struct {
	ID             kernel.UUID
	Title          string
	Brand          string
	PricePerKilo   float64
	SpoolsOwned    int
	TotalUsedKilos float64
}
