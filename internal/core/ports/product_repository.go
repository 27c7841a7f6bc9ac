package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Hidden products are returned too: existing orders keep referencing them.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllVisible retrieves the owner's products that are not hidden.
	GetAllVisible(ctx context.Context, ownerID string) ([]*product.Product, error)
}
