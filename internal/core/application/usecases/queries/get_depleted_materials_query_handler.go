package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDepletedMaterialsQueryHandler scans the material table for visible
// materials that have no spools left, across all owners.
type GetDepletedMaterialsQueryHandler struct {
	db *gorm.DB
}

// NewGetDepletedMaterialsQueryHandler creates a handler for stock scans.
func NewGetDepletedMaterialsQueryHandler(db *gorm.DB) GetDepletedMaterialsQueryHandler {
	return GetDepletedMaterialsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDepletedMaterialsQueryHandler) Handle(
	ctx context.Context,
	query GetDepletedMaterialsQuery,
) ([]GetDepletedMaterialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	materials := make([]GetDepletedMaterialsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			title,
			brand
		FROM materials
		WHERE hidden = false
		  AND spools_owned = 0
		ORDER BY owner_id, title, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDepletedMaterialsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OwnerID,
			&resp.Title,
			&resp.Brand,
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
