package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMaterialStockQueryHandler reads the material inventory straight from the
// database. Hidden materials never appear: soft-deleted spools are gone from
// the inventory view even though orders may still reference them.
type GetMaterialStockQueryHandler struct {
	db *gorm.DB
}

// NewGetMaterialStockQueryHandler creates a handler for inventory queries.
func NewGetMaterialStockQueryHandler(db *gorm.DB) GetMaterialStockQueryHandler {
	return GetMaterialStockQueryHandler{db: db}
}

// Handle executes the query. Materials come back sorted by title.
func (h GetMaterialStockQueryHandler) Handle(
	ctx context.Context,
	query GetMaterialStockQuery,
) ([]GetMaterialStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	materials := make([]GetMaterialStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			brand,
			price_per_kilo,
			spools_owned,
			total_used_kilos
		FROM materials
		WHERE owner_id = ?
		  AND hidden = false
		ORDER BY title, id
	`, query.OwnerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMaterialStockQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Title,
			&resp.Brand,
			&resp.PricePerKilo,
			&resp.SpoolsOwned,
			&resp.TotalUsedKilos,
		)
		if err != nil {
			return nil, err
		}

		materialID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = materialID

		materials = append(materials, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}
