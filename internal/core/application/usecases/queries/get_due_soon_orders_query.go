package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetDueSoonOrdersQueryIsNotConstructed = errors.New(
		"GetDueSoonOrdersQuery must be created via NewGetDueSoonOrdersQuery constructor",
	)
	ErrWindowIsInvalid = errors.New("reminder window must be positive")
)

// GetDueSoonOrdersQuery retrieves unfinished orders across all owners whose
// due date falls within the given window. Overdue orders are included too.
// Used by the due date reminder job.
type GetDueSoonOrdersQuery struct {
	within time.Duration

	guard guard.ConstructorGuard
}

// NewGetDueSoonOrdersQuery creates a query for orders due within the window.
func NewGetDueSoonOrdersQuery(within time.Duration) (GetDueSoonOrdersQuery, error) {
	if within <= 0 {
		return GetDueSoonOrdersQuery{}, ErrWindowIsInvalid
	}

	return GetDueSoonOrdersQuery{
		within: within,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDueSoonOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDueSoonOrdersQueryIsNotConstructed)
}

// Within returns the look-ahead window.
func (q GetDueSoonOrdersQuery) Within() time.Duration {
	return q.within
}

// GetDueSoonOrdersQueryResponse represents one order needing a reminder.
type GetDueSoonOrdersQueryResponse struct {
	ID      kernel.UUID
	OwnerID string
	Title   string
	DueDate time.Time
	Status  order.Status
}
