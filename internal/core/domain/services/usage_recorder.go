package services

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/material"
	"printshop/internal/core/domain/model/order"
)

// ErrMaterialNotProvided is returned when an order's totals reference a
// material that is missing from the materials passed to the recorder.
// The caller must load every material the order's parts point at.
var ErrMaterialNotProvided = errors.New("material not provided")

// UsageRecorder is a domain service that charges an order's consumed filament
// against the inventory when the order is finished.
//
// For every material bucket in the order's totals, the bucket's mass is
// converted to kilograms and added to that material's cumulative usage
// counter. The reserved unassigned bucket is skipped: mass with no chosen
// material has no spool to charge.
//
// The recorder does not check the order's status and is not idempotent;
// callers decide when in the lifecycle to charge usage, and charge it once.
type UsageRecorder struct{}

// NewUsageRecorder creates a new UsageRecorder instance.
func NewUsageRecorder() UsageRecorder {
	return UsageRecorder{}
}

// RecordOrderUsage charges the order's per-material consumption against the
// given materials and returns the ones that were actually charged, so the
// caller can persist exactly those.
//
// Returns ErrMaterialNotProvided when a totals bucket references a material
// absent from the slice. Materials with a zero-mass bucket are not charged
// and not returned.
func (r UsageRecorder) RecordOrderUsage(o *order.Order, materials []*material.Material) ([]*material.Material, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[string]*material.Material, len(materials))
	for _, m := range materials {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		byID[m.ID().String()] = m
	}

	var charged []*material.Material
	for key, bucket := range o.Totals().ByMaterial {
		if key == order.UnassignedKey || bucket.TotalGrams == 0 {
			continue
		}

		m, ok := byID[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMaterialNotProvided, key)
		}

		if err := m.RecordUsage(bucket.TotalGrams / 1000); err != nil {
			return nil, err
		}
		charged = append(charged, m)
	}

	return charged, nil
}
