package database

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSortedKeys_DedupAndOrder(t *testing.T) {
	keys := SortedKeys([]string{"warehouse:MWH.002", "store:S1", "", "store:S1", "location:AMSTERDAM-001"})
	assert.Equal(t, []string{"location:AMSTERDAM-001", "store:S1", "warehouse:MWH.002"}, keys)
}

func TestSortedKeys_Empty(t *testing.T) {
	assert.Empty(t, SortedKeys(nil))
}

func TestExecutor_FallsBackToPool(t *testing.T) {
	db := &sql.DB{}
	assert.Same(t, db, Executor(context.Background(), db))
}

func TestExecutor_UsesTxFromContext(t *testing.T) {
	tx := &sql.Tx{}
	ctx := context.WithValue(context.Background(), txKey{}, tx)
	assert.Same(t, tx, Executor(ctx, &sql.DB{}))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(sql.ErrNoRows))
}
