// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"printshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MaterialRepoFactory provides access to material repository within a transaction.
	MaterialRepoFactory interface {
		MaterialRepository() ports.MaterialRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for order-only operations: progress
	// updates, status actions, and soft delete, which never touch totals.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MaterialUoW manages transactions for material-only catalog operations.
	MaterialUoW interface {
		TxManager
		MaterialRepoFactory
	}

	// MaterialUoWFactory creates new material unit of work instances.
	MaterialUoWFactory interface {
		Create() MaterialUoW
	}

	// ProductUoW manages transactions for product-only catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderMaterialUoW manages transactions for composer operations, which
	// recompute totals and so need the material catalog for cost lookups,
	// and for finishing an order, which charges material usage.
	OrderMaterialUoW interface {
		TxManager
		OrderRepoFactory
		MaterialRepoFactory
	}

	// OrderMaterialUoWFactory creates new order+material unit of work instances.
	OrderMaterialUoWFactory interface {
		Create() OrderMaterialUoW
	}

	// UoW manages transactions across all three aggregates. Used by AddPiece,
	// which reads the product template and the material catalog while
	// mutating the order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   productRepo := uow.ProductRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		MaterialRepoFactory
		ProductRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
