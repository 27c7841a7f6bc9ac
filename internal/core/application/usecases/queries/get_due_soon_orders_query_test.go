package queries_test

import (
	"testing"
	"time"

	"printshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDueSoonOrdersQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetDueSoonOrdersQuery(48 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, query.Within())
	require.NoError(t, query.Validate())
}

func TestNewGetDueSoonOrdersQuery_NonPositiveWindow(t *testing.T) {
	_, err := queries.NewGetDueSoonOrdersQuery(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrWindowIsInvalid)

	_, err = queries.NewGetDueSoonOrdersQuery(-time.Hour)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrWindowIsInvalid)
}

func TestGetDueSoonOrdersQuery_NotConstructed(t *testing.T) {
	var query queries.GetDueSoonOrdersQuery
	require.Error(t, query.Validate())
}

func TestNewGetDepletedMaterialsQuery_IsConstructed(t *testing.T) {
	query := queries.NewGetDepletedMaterialsQuery()
	require.NoError(t, query.Validate())
}

func TestGetDepletedMaterialsQuery_NotConstructed(t *testing.T) {
	var query queries.GetDepletedMaterialsQuery
	require.Error(t, query.Validate())
}
