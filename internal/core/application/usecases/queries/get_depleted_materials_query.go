package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrGetDepletedMaterialsQueryIsNotConstructed = errors.New(
	"GetDepletedMaterialsQuery must be created via NewGetDepletedMaterialsQuery constructor",
)

// GetDepletedMaterialsQuery retrieves visible materials across all owners
// that have no spools left. Used by the spool stock job.
type GetDepletedMaterialsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDepletedMaterialsQuery creates a query for out-of-stock materials.
func NewGetDepletedMaterialsQuery() GetDepletedMaterialsQuery {
	return GetDepletedMaterialsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDepletedMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrGetDepletedMaterialsQueryIsNotConstructed)
}

// GetDepletedMaterialsQueryResponse represents one out-of-stock material.
type GetDepletedMaterialsQueryResponse struct {
	ID      kernel.UUID
	OwnerID string
	Title   string
	Brand   string
}
