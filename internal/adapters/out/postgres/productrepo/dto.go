// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Part requirements and price variants are stored as JSONB documents.
type ProductDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OwnerID        string             `gorm:"type:varchar(255);not null;index"`
	Title          string             `gorm:"type:varchar(255);not null"`
	PrintTimeHours float64            `gorm:"not null"`
	Requirements   []RequirementDTO   `gorm:"type:jsonb;serializer:json"`
	UnitPrice      *float64
	PriceVariants  map[string]float64 `gorm:"type:jsonb;serializer:json"`
	Hidden         bool               `gorm:"not null;index"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// RequirementDTO represents one part requirement within the product document.
type RequirementDTO struct {
	Label string  `json:"label"`
	Grams float64 `json:"grams"`
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	requirements := make([]RequirementDTO, 0, len(aggregate.Requirements()))
	for _, r := range aggregate.Requirements() {
		requirements = append(requirements, RequirementDTO{
			Label: r.Label(),
			Grams: r.Grams(),
		})
	}

	var unitPrice *float64
	if price, ok := aggregate.UnitPrice(); ok {
		unitPrice = &price
	}

	variants := aggregate.PriceVariants()
	if len(variants) == 0 {
		variants = nil
	}

	return ProductDTO{
		ID:             aggregate.ID().Bytes(),
		OwnerID:        aggregate.OwnerID(),
		Title:          aggregate.Title(),
		PrintTimeHours: aggregate.PrintTimeHours(),
		Requirements:   requirements,
		UnitPrice:      unitPrice,
		PriceVariants:  variants,
		Hidden:         aggregate.Hidden(),
	}
}

// toDomain converts a database DTO to a product domain aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requirements := make([]product.PartRequirement, 0, len(dto.Requirements))
	for _, r := range dto.Requirements {
		requirement, reqErr := product.NewPartRequirement(r.Label, r.Grams)
		if reqErr != nil {
			return nil, reqErr
		}
		requirements = append(requirements, requirement)
	}

	return product.RestoreProduct(
		id,
		dto.OwnerID,
		dto.Title,
		dto.PrintTimeHours,
		requirements,
		dto.UnitPrice,
		dto.PriceVariants,
		dto.Hidden,
	)
}
