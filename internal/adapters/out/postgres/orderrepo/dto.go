// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The piece tree and the totals snapshot are stored as JSONB documents: both
// are owned wholesale by the aggregate and never queried row-by-row, so a
// document column keeps reads and writes to a single round trip.
type OrderDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID string     `gorm:"type:varchar(255);not null;index"`
	Title   string     `gorm:"type:varchar(255);not null"`
	DueDate *time.Time `gorm:"index"`
	Status  int
	Hidden  bool       `gorm:"not null;index"`
	Pieces  []PieceDTO `gorm:"type:jsonb;serializer:json"`
	Totals  TotalsDTO  `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PieceDTO represents one piece within the order's JSONB piece document.
type PieceDTO struct {
	ID           uuid.UUID  `json:"id"`
	ProductID    uuid.UUID  `json:"productId"`
	ProductTitle string     `json:"productTitle"`
	Quantity     int        `json:"quantity"`
	UnitPrice    *float64   `json:"unitPrice,omitempty"`
	Parts        []PartDTO  `json:"parts"`
	Printed      int        `json:"printed"`
}

// PartDTO represents one material requirement within a piece document.
type PartDTO struct {
	Label         string     `json:"label"`
	RequiredGrams float64    `json:"requiredGrams"`
	MaterialID    *uuid.UUID `json:"materialId,omitempty"`
}

// TotalsDTO represents the order's aggregated totals snapshot.
type TotalsDTO struct {
	ByMaterial map[string]MaterialTotalDTO `json:"byMaterial"`
	Revenue    float64                     `json:"revenue"`
	Expenses   *float64                    `json:"expenses,omitempty"`
	Profit     float64                     `json:"profit"`
}

// MaterialTotalDTO represents one bucket of the totals snapshot.
type MaterialTotalDTO struct {
	TotalGrams float64 `json:"totalGrams"`
	TotalCost  float64 `json:"totalCost"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	pieces := make([]PieceDTO, 0, len(aggregate.Pieces()))
	for _, piece := range aggregate.Pieces() {
		parts := make([]PartDTO, 0, len(piece.Parts()))
		for _, part := range piece.Parts() {
			var materialID *uuid.UUID
			if id := part.MaterialID(); id != nil {
				raw := id.Bytes()
				materialID = &raw
			}
			parts = append(parts, PartDTO{
				Label:         part.Label(),
				RequiredGrams: part.RequiredGrams(),
				MaterialID:    materialID,
			})
		}

		var unitPrice *float64
		if price, ok := piece.UnitPrice(); ok {
			unitPrice = &price
		}

		pieces = append(pieces, PieceDTO{
			ID:           piece.ID().Bytes(),
			ProductID:    piece.ProductID().Bytes(),
			ProductTitle: piece.ProductTitle(),
			Quantity:     piece.Quantity(),
			UnitPrice:    unitPrice,
			Parts:        parts,
			Printed:      piece.Printed(),
		})
	}

	totals := aggregate.Totals()
	byMaterial := make(map[string]MaterialTotalDTO, len(totals.ByMaterial))
	for key, bucket := range totals.ByMaterial {
		byMaterial[key] = MaterialTotalDTO{
			TotalGrams: bucket.TotalGrams,
			TotalCost:  bucket.TotalCost,
		}
	}

	return OrderDTO{
		ID:      aggregate.ID().Bytes(),
		OwnerID: aggregate.OwnerID(),
		Title:   aggregate.Title(),
		DueDate: aggregate.DueDate(),
		Status:  int(aggregate.Status()),
		Hidden:  aggregate.Hidden(),
		Pieces:  pieces,
		Totals: TotalsDTO{
			ByMaterial: byMaterial,
			Revenue:    totals.Revenue,
			Expenses:   totals.Expenses,
			Profit:     totals.Profit,
		},
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the piece tree and the
// persisted totals snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pieces := make([]*order.Piece, 0, len(dto.Pieces))
	for _, pieceDTO := range dto.Pieces {
		piece, pieceErr := pieceToDomain(pieceDTO)
		if pieceErr != nil {
			return nil, pieceErr
		}
		pieces = append(pieces, piece)
	}

	byMaterial := make(map[string]order.MaterialTotal, len(dto.Totals.ByMaterial))
	for key, bucket := range dto.Totals.ByMaterial {
		byMaterial[key] = order.MaterialTotal{
			TotalGrams: bucket.TotalGrams,
			TotalCost:  bucket.TotalCost,
		}
	}
	totals := order.Totals{
		ByMaterial: byMaterial,
		Revenue:    dto.Totals.Revenue,
		Expenses:   dto.Totals.Expenses,
		Profit:     dto.Totals.Profit,
	}

	return order.RestoreOrder(
		id,
		dto.OwnerID,
		dto.Title,
		dto.DueDate,
		order.Status(dto.Status),
		pieces,
		totals,
		dto.Hidden,
	)
}

// pieceToDomain converts a piece document to a domain piece using RestorePiece.
func pieceToDomain(dto PieceDTO) (*order.Piece, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	parts := make([]order.Part, 0, len(dto.Parts))
	for _, partDTO := range dto.Parts {
		var materialID *kernel.UUID
		if partDTO.MaterialID != nil {
			mID, materialErr := kernel.UUIDFromBytes((*partDTO.MaterialID)[:])
			if materialErr != nil {
				return nil, materialErr
			}
			materialID = &mID
		}

		part, partErr := order.NewPart(partDTO.Label, partDTO.RequiredGrams, materialID)
		if partErr != nil {
			return nil, partErr
		}
		parts = append(parts, part)
	}

	return order.RestorePiece(
		id,
		productID,
		dto.ProductTitle,
		dto.Quantity,
		dto.UnitPrice,
		parts,
		dto.Printed,
	)
}
