package warehouseservice_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/logger"
	"gofulfill/internal/repository/locationrepo"
	"gofulfill/internal/repository/memory"
	"gofulfill/internal/service/warehouseservice"
)

func newMemoryService(locations ...domain.Location) (*warehouseservice.Service, *memory.WarehouseRepository) {
	repo := memory.NewWarehouseRepository()
	svc := warehouseservice.NewService(repo, locationrepo.NewDirectory(locations...), memory.NewTransactor(), logger.NewNop())
	return svc, repo
}

func TestScenario_LocationCapacity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMemoryService(domain.Location{Identification: "L", MaxNumberOfWarehouses: 10, MaxCapacity: 15})

	_, err := svc.Create(ctx, domain.Warehouse{BusinessUnitCode: "W1", Location: "L", Capacity: 10})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.Warehouse{BusinessUnitCode: "W2", Location: "L", Capacity: 10})
	assertValidationLimit(t, err, "location_max_capacity")

	_, err = svc.Create(ctx, domain.Warehouse{BusinessUnitCode: "W2", Location: "L", Capacity: 5})
	assert.NoError(t, err)
}

func TestScenario_ReplacePreservesStockAndArchivesOld(t *testing.T) {
	ctx := context.Background()
	svc, repo := newMemoryService()

	original, err := svc.Create(ctx, domain.Warehouse{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-002", Capacity: 20, Stock: 15})
	require.NoError(t, err)

	replaced, err := svc.Replace(ctx, domain.Warehouse{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-002", Capacity: 35, Stock: 15})
	require.NoError(t, err)

	assert.NotEqual(t, original.ID, replaced.ID)
	assert.Equal(t, 15, replaced.Stock)
	assert.Equal(t, 35, replaced.Capacity)
	assert.True(t, replaced.IsActive())

	_, err = svc.GetByID(ctx, original.ID)
	assert.True(t, apperror.IsNotFound(err))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, replaced.ID, active[0].ID)

	history := repo.All()
	require.Len(t, history, 2)
	assert.False(t, history[0].IsActive())
}

func TestScenario_ArchiveHidesAndAllowsCodeReuse(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMemoryService()

	w, err := svc.Create(ctx, domain.Warehouse{BusinessUnitCode: "MWH.009", Location: "TILBURG-001", Capacity: 40})
	require.NoError(t, err)

	require.NoError(t, svc.Archive(ctx, w.ID))
	assert.True(t, apperror.IsNotFound(svc.Archive(ctx, w.ID)))

	list, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// a vaga da localização foi liberada
	_, err = svc.Create(ctx, domain.Warehouse{BusinessUnitCode: "MWH.009", Location: "TILBURG-001", Capacity: 40})
	assert.NoError(t, err)
}

func TestScenario_CreateIgnoresClientID(t *testing.T) {
	ctx := context.Background()
	svc, repo := newMemoryService()

	w1, err := svc.Create(ctx, domain.Warehouse{BusinessUnitCode: "W1", Location: "AMSTERDAM-001", Capacity: 10})
	require.NoError(t, err)

	w2, err := svc.Create(ctx, domain.Warehouse{ID: w1.ID, BusinessUnitCode: "W2", Location: "AMSTERDAM-001", Capacity: 10})
	require.NoError(t, err)
	assert.NotEqual(t, w1.ID, w2.ID)

	_, err = svc.Create(ctx, domain.Warehouse{ID: "nao-e-uuid", BusinessUnitCode: "W3", Location: "AMSTERDAM-001", Capacity: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Archive(ctx, w2.ID))

	active := map[string]bool{}
	for _, w := range repo.All() {
		active[w.BusinessUnitCode] = w.IsActive()
	}
	assert.True(t, active["W1"])
	assert.False(t, active["W2"])

	found, err := svc.GetByID(ctx, w1.ID)
	require.NoError(t, err)
	assert.Equal(t, "W1", found.BusinessUnitCode)
}

func TestScenario_ConcurrentCreateRespectsLocationLimit(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMemoryService(domain.Location{Identification: "L", MaxNumberOfWarehouses: 3, MaxCapacity: 1000})

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Create(ctx, domain.Warehouse{
				BusinessUnitCode: "W" + string(rune('A'+i)),
				Location:         "L",
				Capacity:         10,
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)
	list, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
