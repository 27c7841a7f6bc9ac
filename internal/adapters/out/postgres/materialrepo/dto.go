// Package materialrepo provides data transfer objects and mapping functions for material persistence.
// This package implements the repository pattern for the material domain aggregate, handling
// the conversion between domain entities and database representations.
package materialrepo

import (
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/material"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MaterialDTO represents the database structure for persisting material aggregates.
// Color names and type tags are stored as native postgres text arrays.
type MaterialDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID        string         `gorm:"type:varchar(255);not null;index"`
	Title          string         `gorm:"type:varchar(255);not null"`
	Brand          string         `gorm:"type:varchar(255)"`
	Colors         pq.StringArray `gorm:"type:text[]"`
	Types          pq.StringArray `gorm:"type:text[]"`
	URL            string         `gorm:"type:text"`
	PricePerKilo   float64        `gorm:"not null"`
	SpoolsOwned    int            `gorm:"not null"`
	TotalUsedKilos float64        `gorm:"not null"`
	Hidden         bool           `gorm:"not null;index"`
}

// TableName specifies the database table name for material entities.
// Overrides GORM's default naming convention to use "materials".
func (MaterialDTO) TableName() string {
	return "materials"
}

// fromDomain converts a material domain aggregate to its database representation.
func fromDomain(aggregate *material.Material) MaterialDTO {
	return MaterialDTO{
		ID:             aggregate.ID().Bytes(),
		OwnerID:        aggregate.OwnerID(),
		Title:          aggregate.Title(),
		Brand:          aggregate.Brand(),
		Colors:         aggregate.Colors(),
		Types:          aggregate.Types(),
		URL:            aggregate.URL(),
		PricePerKilo:   aggregate.PricePerKilo(),
		SpoolsOwned:    aggregate.SpoolsOwned(),
		TotalUsedKilos: aggregate.TotalUsedKilos(),
		Hidden:         aggregate.Hidden(),
	}
}

// toDomain converts a database DTO to a material domain aggregate using RestoreMaterial.
func toDomain(dto MaterialDTO) (*material.Material, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return material.RestoreMaterial(
		id,
		dto.OwnerID,
		dto.Title,
		dto.Brand,
		dto.Colors,
		dto.Types,
		dto.URL,
		dto.PricePerKilo,
		dto.SpoolsOwned,
		dto.TotalUsedKilos,
		dto.Hidden,
	)
}
