// Package queries contains read-only operations for the printshop board.
// Queries bypass the domain aggregates and read projections straight from
// the database, following the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
	ErrOwnerIsRequired = errors.New("owner id is required")
)

// GetActiveOrdersQuery retrieves an owner's orders for the board view.
// Hidden orders are always excluded; finished orders are included only when
// requested, so the board can offer a "show finished" toggle.
type GetActiveOrdersQuery struct {
	ownerID     string
	includeDone bool

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for an owner's orders board.
func NewGetActiveOrdersQuery(ownerID string, includeDone bool) (GetActiveOrdersQuery, error) {
	if ownerID == "" {
		return GetActiveOrdersQuery{}, ErrOwnerIsRequired
	}

	return GetActiveOrdersQuery{
		ownerID:     ownerID,
		includeDone: includeDone,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OwnerID returns the owner whose orders are listed.
func (q GetActiveOrdersQuery) OwnerID() string {
	return q.ownerID
}

// IncludeDone reports whether finished orders are part of the listing.
func (q GetActiveOrdersQuery) IncludeDone() bool {
	return q.includeDone
}

// GetActiveOrdersQueryResponse represents one row of the orders board:
// identity, schedule, fulfillment status, and the money snapshot from the
// order's persisted totals.
type GetActiveOrdersQueryResponse struct {
	ID       kernel.UUID
	Title    string
	DueDate  *time.Time
	Status   order.Status
	Revenue  float64
	Expenses *float64
	Profit   float64
}
