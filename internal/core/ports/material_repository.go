package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/material"
)

// MaterialRepository defines the persistence contract for material aggregates.
type MaterialRepository interface {
	// Add persists a new material aggregate to storage.
	Add(ctx context.Context, aggregate *material.Material) error

	// Update persists changes to an existing material aggregate.
	Update(ctx context.Context, aggregate *material.Material) error

	// Get retrieves a material aggregate by its unique identifier.
	// Hidden materials are returned too.
	Get(ctx context.Context, id kernel.UUID) (*material.Material, error)

	// GetByIDs retrieves the materials with the given identifiers, hidden ones
	// included. Missing ids are simply absent from the result: order cost
	// lookups degrade to unresolved rather than failing.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*material.Material, error)

	// GetAllVisible retrieves the owner's materials that are not hidden.
	GetAllVisible(ctx context.Context, ownerID string) ([]*material.Material, error)
}
