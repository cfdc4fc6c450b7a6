//go:build integration

package fulfillmentrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/database/dbtest"
	"gofulfill/internal/pkg/logger"
)

func assignment(code, product, store string) domain.FulfillmentAssignment {
	return domain.FulfillmentAssignment{WarehouseBusinessUnitCode: code, ProductID: product, StoreID: store}
}

func TestRepository_CountsAndPredicates(t *testing.T) {
	db := dbtest.NewPostgres(t)
	repo := NewAssignmentRepository(db, 5*time.Second, logger.NewNop())
	ctx := context.Background()

	for _, a := range []domain.FulfillmentAssignment{
		assignment("W1", "P1", "S1"),
		assignment("W2", "P1", "S1"),
		assignment("W1", "P2", "S1"),
		assignment("W3", "P1", "S2"),
	} {
		_, err := repo.Create(ctx, a)
		require.NoError(t, err)
	}

	n, err := repo.CountWarehousesForProductAtStore(ctx, "P1", "S1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountWarehousesForStore(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountProductsForWarehouse(ctx, "W1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ok, err := repo.Exists(ctx, "W1", "P2", "S1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.WarehouseFulfillsStore(ctx, "W3", "S1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.WarehouseStoresProduct(ctx, "W3", "P1")
	require.NoError(t, err)
	assert.True(t, ok)

	byStore, err := repo.ListByStore(ctx, "S1")
	require.NoError(t, err)
	assert.Len(t, byStore, 3)

	byProduct, err := repo.ListByProduct(ctx, "P9")
	require.NoError(t, err)
	assert.NotNil(t, byProduct)
	assert.Empty(t, byProduct)
}

func TestRepository_Create_Fail_DuplicateTriple(t *testing.T) {
	db := dbtest.NewPostgres(t)
	repo := NewAssignmentRepository(db, 5*time.Second, logger.NewNop())
	ctx := context.Background()

	_, err := repo.Create(ctx, assignment("W1", "P1", "S1"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, assignment("W1", "P1", "S1"))
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestRepository_FindAndDelete(t *testing.T) {
	db := dbtest.NewPostgres(t)
	repo := NewAssignmentRepository(db, 5*time.Second, logger.NewNop())
	ctx := context.Background()

	created, err := repo.Create(ctx, assignment("W1", "P1", "S1"))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "W1", found.WarehouseBusinessUnitCode)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(repo.Delete(ctx, created.ID)))

	_, err = repo.FindByID(ctx, "abc")
	assert.True(t, apperror.IsNotFound(err))
}
