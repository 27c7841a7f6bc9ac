package material_test

import (
	"testing"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/material"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterial(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid material with all valid parameters", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "user-1", "Galaxy Black", "Prusament",
			[]string{"black", "silver"}, []string{"PLA"}, "https://example.com/spool", 24.99, 3)

		require.NoError(t, err)
		assert.NotNil(t, m)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(validID))
		assert.Equal(t, "user-1", m.OwnerID())
		assert.Equal(t, "Galaxy Black", m.Title())
		assert.Equal(t, "Prusament", m.Brand())
		assert.Equal(t, []string{"black", "silver"}, m.Colors())
		assert.Equal(t, []string{"PLA"}, m.Types())
		assert.Equal(t, "https://example.com/spool", m.URL())
		assert.Equal(t, 24.99, m.PricePerKilo())
		assert.Equal(t, 3, m.SpoolsOwned())
		assert.Equal(t, 0.0, m.TotalUsedKilos())
		assert.False(t, m.Hidden())
	})

	t.Run("should accept empty optional fields", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "user-1", "Generic PLA", "", nil, nil, "", 0, 0)

		require.NoError(t, err)
		assert.Empty(t, m.Brand())
		assert.Empty(t, m.Colors())
		assert.Empty(t, m.Types())
		assert.Empty(t, m.URL())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		m, err := material.NewMaterial(invalidID, "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty title", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "user-1", "", "", nil, nil, "", 24.99, 3)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, material.ErrTitleIsRequired)
	})

	t.Run("should fail with empty owner", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, material.ErrOwnerIsRequired)
	})

	t.Run("should fail with negative price per kilo", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "user-1", "Galaxy Black", "", nil, nil, "", -5, 3)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "price per kilo")
	})

	t.Run("should fail with negative spool count", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "user-1", "Galaxy Black", "", nil, nil, "", 24.99, -1)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "spools owned")
	})

	t.Run("should fail with empty color entry", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "user-1", "Galaxy Black", "",
			[]string{"black", ""}, nil, "", 24.99, 3)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty type entry", func(t *testing.T) {
		m, err := material.NewMaterial(validID, "user-1", "Galaxy Black", "",
			nil, []string{""}, "", 24.99, 3)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		m, err := material.NewMaterial(invalidID, "", "", "", nil, nil, "", -1, -1)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "owner id")
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "price per kilo")
		assert.Contains(t, err.Error(), "spools owned")
	})
}

func TestRestoreMaterial(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should restore material with usage and hidden flag", func(t *testing.T) {
		m, err := material.RestoreMaterial(validID, "user-1", "Galaxy Black", "Prusament",
			[]string{"black"}, []string{"PLA"}, "", 24.99, 2, 1.75, true)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, 1.75, m.TotalUsedKilos())
		assert.True(t, m.Hidden())
	})

	t.Run("should fail with negative usage", func(t *testing.T) {
		m, err := material.RestoreMaterial(validID, "user-1", "Galaxy Black", "",
			nil, nil, "", 24.99, 2, -0.5, false)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "total used kilos")
	})

	t.Run("should apply same validation rules as NewMaterial", func(t *testing.T) {
		m, err := material.RestoreMaterial(validID, "user-1", "", "", nil, nil, "", 24.99, 2, 0, false)

		require.Error(t, err)
		assert.Nil(t, m)
	})
}

func TestMaterial_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed material", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		require.NoError(t, m.Validate())
	})

	t.Run("should fail validation for nil material", func(t *testing.T) {
		var m *material.Material

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, material.ErrMaterialIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value material", func(t *testing.T) {
		var m material.Material

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, material.ErrMaterialIsNotConstructed, err)
	})
}

func TestMaterial_SetSpoolsOwned(t *testing.T) {
	t.Run("should update spool count", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		err := m.SetSpoolsOwned(7)

		require.NoError(t, err)
		assert.Equal(t, 7, m.SpoolsOwned())
	})

	t.Run("should allow zero spools", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		require.NoError(t, m.SetSpoolsOwned(0))
		assert.Equal(t, 0, m.SpoolsOwned())
	})

	t.Run("should reject negative count and keep state", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		err := m.SetSpoolsOwned(-2)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 3, m.SpoolsOwned())
	})
}

func TestMaterial_SetPricePerKilo(t *testing.T) {
	t.Run("should update price", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		require.NoError(t, m.SetPricePerKilo(19.5))
		assert.Equal(t, 19.5, m.PricePerKilo())
	})

	t.Run("should reject negative price and keep state", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		err := m.SetPricePerKilo(-1)

		require.Error(t, err)
		assert.Equal(t, 24.99, m.PricePerKilo())
	})
}

func TestMaterial_RecordUsage(t *testing.T) {
	t.Run("should accumulate usage", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		require.NoError(t, m.RecordUsage(0.25))
		require.NoError(t, m.RecordUsage(0.5))

		assert.InDelta(t, 0.75, m.TotalUsedKilos(), 1e-9)
	})

	t.Run("should treat zero as no-op", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		require.NoError(t, m.RecordUsage(0))
		assert.Equal(t, 0.0, m.TotalUsedKilos())
	})

	t.Run("should reject negative usage", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		err := m.RecordUsage(-0.1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 0.0, m.TotalUsedKilos())
	})
}

func TestMaterial_Hide(t *testing.T) {
	t.Run("should mark material hidden and be idempotent", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "", nil, nil, "", 24.99, 3)

		m.Hide()
		m.Hide()

		assert.True(t, m.Hidden())
	})
}

func TestMaterial_Immutability(t *testing.T) {
	t.Run("should return copies of colors and types", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "",
			[]string{"black"}, []string{"PLA"}, "", 24.99, 3)

		colors := m.Colors()
		types := m.Types()
		colors[0] = "mutated"
		types[0] = "mutated"

		assert.Equal(t, []string{"black"}, m.Colors())
		assert.Equal(t, []string{"PLA"}, m.Types())
	})

	t.Run("should not alias caller-provided slices", func(t *testing.T) {
		colors := []string{"black"}
		m, _ := material.NewMaterial(kernel.NewUUID(), "user-1", "Galaxy Black", "",
			colors, nil, "", 24.99, 3)

		colors[0] = "mutated"

		assert.Equal(t, []string{"black"}, m.Colors())
	})
}
