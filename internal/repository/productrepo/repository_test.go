package productrepo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/cache"
	"gofulfill/internal/pkg/logger"
)

// Com a chave no cache o banco nem é consultado (DB nil).
func TestExists_Success_CacheHit(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryClient()
	require.NoError(t, c.Set(ctx, fmt.Sprintf(productExistsCacheKey, "P1"), "1", time.Minute))

	repo := NewProductRepository(nil, c, time.Second, time.Minute, logger.NewNop())

	ok, err := repo.Exists(ctx, "P1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreate_Fail_MissingName(t *testing.T) {
	repo := NewProductRepository(nil, cache.NewMemoryClient(), time.Second, time.Minute, logger.NewNop())

	_, err := repo.Create(context.Background(), domain.Product{ID: "P1"})
	assert.IsType(t, &apperror.ValidationError{}, err)
}
