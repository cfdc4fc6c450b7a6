//go:build integration

package productrepo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofulfill/internal/domain"
	"gofulfill/internal/pkg/cache"
	"gofulfill/internal/pkg/database/dbtest"
	"gofulfill/internal/pkg/logger"
)

func TestRepository_Exists_PopulatesCache(t *testing.T) {
	db := dbtest.NewPostgres(t)
	c := cache.NewMemoryClient()
	repo := NewProductRepository(db, c, 5*time.Second, time.Minute, logger.NewNop())
	ctx := context.Background()

	ok, err := repo.Exists(ctx, "P1")
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = c.Get(ctx, fmt.Sprintf(productExistsCacheKey, "P1"))
	assert.Equal(t, cache.ErrCacheMiss, err)

	_, err = repo.Create(ctx, domain.Product{ID: "P1", Name: "KALLAX", Stock: 5})
	require.NoError(t, err)

	ok, err = repo.Exists(ctx, "P1")
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = c.Get(ctx, fmt.Sprintf(productExistsCacheKey, "P1"))
	assert.NoError(t, err)
}
