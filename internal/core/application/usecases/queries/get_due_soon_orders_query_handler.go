package queries

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDueSoonOrdersQueryHandler scans the order table for unfinished orders
// whose deadline is near. It runs across all owners: reminders are emitted
// by a background job, not requested by a user.
type GetDueSoonOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDueSoonOrdersQueryHandler creates a handler for due date scans.
func NewGetDueSoonOrdersQueryHandler(db *gorm.DB) GetDueSoonOrdersQueryHandler {
	return GetDueSoonOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back most urgent first.
func (h GetDueSoonOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDueSoonOrdersQuery,
) ([]GetDueSoonOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(query.Within())

	orders := make([]GetDueSoonOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			title,
			due_date,
			status
		FROM orders
		WHERE hidden = false
		  AND status <> ?
		  AND due_date IS NOT NULL
		  AND due_date <= ?
		ORDER BY due_date ASC, id
	`, int(order.Done), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDueSoonOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.OwnerID,
			&resp.Title,
			&resp.DueDate,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
