package services_test

import (
	"testing"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/material"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/product"
	"printshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaterial(t *testing.T, pricePerKilo float64) *material.Material {
	t.Helper()
	m, err := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "Prusament",
		nil, []string{"PLA"}, "", pricePerKilo, 2)
	require.NoError(t, err)
	return m
}

// newOrderUsing builds an order with one piece consuming the given grams per
// unit, assigned to the given material.
func newOrderUsing(t *testing.T, m *material.Material, grams float64, quantity int) *order.Order {
	t.Helper()
	req, err := product.NewPartRequirement("body", grams)
	require.NoError(t, err)
	price := 10.0
	template, err := product.NewProduct(kernel.NewUUID(), "user-1", "Planter", 1,
		[]product.PartRequirement{req}, &price, nil)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "user-1", "Batch", nil)
	require.NoError(t, err)

	lookup := func(id kernel.UUID) (float64, bool) {
		if id.IsEqual(m.ID()) {
			return m.PricePerKilo(), true
		}
		return 0, false
	}
	require.NoError(t, o.AddPiece(template, quantity, lookup))
	materialID := m.ID()
	require.NoError(t, o.SetPartMaterial(0, 0, &materialID, lookup))
	return o
}

func TestUsageRecorder_RecordOrderUsage(t *testing.T) {
	recorder := services.NewUsageRecorder()

	t.Run("should charge consumed kilograms to the material", func(t *testing.T) {
		m := newMaterial(t, 20)
		o := newOrderUsing(t, m, 250, 2) // 500g total

		charged, err := recorder.RecordOrderUsage(o, []*material.Material{m})

		require.NoError(t, err)
		require.Len(t, charged, 1)
		assert.True(t, charged[0].IsEqual(m))
		assert.InDelta(t, 0.5, m.TotalUsedKilos(), 1e-9)
	})

	t.Run("should accumulate over repeated orders", func(t *testing.T) {
		m := newMaterial(t, 20)
		first := newOrderUsing(t, m, 100, 1)
		second := newOrderUsing(t, m, 300, 1)

		_, err := recorder.RecordOrderUsage(first, []*material.Material{m})
		require.NoError(t, err)
		_, err = recorder.RecordOrderUsage(second, []*material.Material{m})
		require.NoError(t, err)

		assert.InDelta(t, 0.4, m.TotalUsedKilos(), 1e-9)
	})

	t.Run("should skip unassigned mass", func(t *testing.T) {
		m := newMaterial(t, 20)
		o, err := order.NewOrder(kernel.NewUUID(), "user-1", "Batch", nil)
		require.NoError(t, err)
		req, err := product.NewPartRequirement("body", 100)
		require.NoError(t, err)
		price := 5.0
		template, err := product.NewProduct(kernel.NewUUID(), "user-1", "Planter", 1,
			[]product.PartRequirement{req}, &price, nil)
		require.NoError(t, err)
		require.NoError(t, o.AddPiece(template, 1, nil))

		charged, err := recorder.RecordOrderUsage(o, []*material.Material{m})

		require.NoError(t, err)
		assert.Empty(t, charged)
		assert.Equal(t, 0.0, m.TotalUsedKilos())
	})

	t.Run("should fail when a referenced material is missing", func(t *testing.T) {
		m := newMaterial(t, 20)
		o := newOrderUsing(t, m, 100, 1)

		charged, err := recorder.RecordOrderUsage(o, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrMaterialNotProvided)
		assert.Nil(t, charged)
		assert.Equal(t, 0.0, m.TotalUsedKilos())
	})

	t.Run("should fail with invalid order", func(t *testing.T) {
		var o order.Order

		_, err := recorder.RecordOrderUsage(&o, nil)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail with invalid material", func(t *testing.T) {
		m := newMaterial(t, 20)
		o := newOrderUsing(t, m, 100, 1)
		var invalid material.Material

		_, err := recorder.RecordOrderUsage(o, []*material.Material{&invalid})

		require.Error(t, err)
		assert.Equal(t, material.ErrMaterialIsNotConstructed, err)
	})
}
