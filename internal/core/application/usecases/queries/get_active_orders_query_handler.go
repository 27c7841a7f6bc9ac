package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the orders board straight from the
// database, skipping aggregate reconstruction: the board only needs the
// header columns and the totals snapshot.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for orders board queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// totalsDocument is the subset of the persisted totals snapshot the board shows.
type totalsDocument struct {
	Revenue  float64  `json:"revenue"`
	Expenses *float64 `json:"expenses"`
	Profit   float64  `json:"profit"`
}

// Handle executes the query. Rows come back soonest due date first, orders
// without a due date last.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statusFilter := ""
	args := []any{query.OwnerID()}
	if !query.IncludeDone() {
		statusFilter = "AND status <> ?"
		args = append(args, int(order.Done))
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			due_date,
			status,
			totals
		FROM orders
		WHERE owner_id = ?
		  AND hidden = false
		  `+statusFilter+`
		ORDER BY due_date ASC NULLS LAST, id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var dueDate sql.NullTime
		var status int
		var totalsRaw []byte

		err = rows.Scan(
			&id,
			&resp.Title,
			&dueDate,
			&status,
			&totalsRaw,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if dueDate.Valid {
			due := dueDate.Time
			resp.DueDate = &due
		}
		resp.Status = order.Status(status)

		var totals totalsDocument
		if len(totalsRaw) > 0 {
			if jsonErr := json.Unmarshal(totalsRaw, &totals); jsonErr != nil {
				return nil, jsonErr
			}
		}
		resp.Revenue = totals.Revenue
		resp.Expenses = totals.Expenses
		resp.Profit = totals.Profit

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
