package fulfillmentservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/logger"
	"gofulfill/internal/repository/memory"
	"gofulfill/internal/service/fulfillmentservice"
)

// MockAssignmentRepository é uma implementação mock da interface AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Exists(ctx context.Context, code, productID, storeID string) (bool, error) {
	args := m.Called(ctx, code, productID, storeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) CountWarehousesForProductAtStore(ctx context.Context, productID, storeID string) (int, error) {
	args := m.Called(ctx, productID, storeID)
	return args.Int(0), args.Error(1)
}

func (m *MockAssignmentRepository) CountWarehousesForStore(ctx context.Context, storeID string) (int, error) {
	args := m.Called(ctx, storeID)
	return args.Int(0), args.Error(1)
}

func (m *MockAssignmentRepository) CountProductsForWarehouse(ctx context.Context, code string) (int, error) {
	args := m.Called(ctx, code)
	return args.Int(0), args.Error(1)
}

func (m *MockAssignmentRepository) WarehouseFulfillsStore(ctx context.Context, code, storeID string) (bool, error) {
	args := m.Called(ctx, code, storeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) WarehouseStoresProduct(ctx context.Context, code, productID string) (bool, error) {
	args := m.Called(ctx, code, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) Create(ctx context.Context, a domain.FulfillmentAssignment) (domain.FulfillmentAssignment, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(domain.FulfillmentAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByID(ctx context.Context, id string) (domain.FulfillmentAssignment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FulfillmentAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAssignmentRepository) ListAll(ctx context.Context) ([]domain.FulfillmentAssignment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FulfillmentAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByStore(ctx context.Context, storeID string) ([]domain.FulfillmentAssignment, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.FulfillmentAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByWarehouse(ctx context.Context, code string) ([]domain.FulfillmentAssignment, error) {
	args := m.Called(ctx, code)
	return args.Get(0).([]domain.FulfillmentAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByProduct(ctx context.Context, productID string) ([]domain.FulfillmentAssignment, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.FulfillmentAssignment), args.Error(1)
}

// MockExistence cobre armazém, produto e loja nos testes com mock.
type MockExistence struct {
	mock.Mock
}

func (m *MockExistence) FindActiveByCode(ctx context.Context, code string) (domain.Warehouse, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Warehouse), args.Error(1)
}

type mockProducts struct{ *MockExistence }

func (m mockProducts) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, "product", id)
	return args.Bool(0), args.Error(1)
}

type mockStores struct{ *MockExistence }

func (m mockStores) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, "store", id)
	return args.Bool(0), args.Error(1)
}

type fixture struct {
	repo *MockAssignmentRepository
	refs *MockExistence
	svc  *fulfillmentservice.Service
}

func newFixture() fixture {
	repo := new(MockAssignmentRepository)
	refs := new(MockExistence)
	svc := fulfillmentservice.NewService(repo, refs, mockProducts{refs}, mockStores{refs}, memory.NewTransactor(), logger.NewNop())
	return fixture{repo: repo, refs: refs, svc: svc}
}

// allReferencesExist configura armazém, produto e loja existentes e tripla inédita.
func (f fixture) allReferencesExist(a domain.FulfillmentAssignment) {
	f.refs.On("FindActiveByCode", mock.Anything, a.WarehouseBusinessUnitCode).Return(domain.Warehouse{BusinessUnitCode: a.WarehouseBusinessUnitCode}, nil)
	f.refs.On("Exists", mock.Anything, "product", a.ProductID).Return(true, nil)
	f.refs.On("Exists", mock.Anything, "store", a.StoreID).Return(true, nil)
	f.repo.On("Exists", mock.Anything, a.WarehouseBusinessUnitCode, a.ProductID, a.StoreID).Return(false, nil)
}

var input = domain.FulfillmentAssignment{WarehouseBusinessUnitCode: "MWH.001", ProductID: "P1", StoreID: "S1"}

func TestCreate_Success(t *testing.T) {
	f := newFixture()
	f.allReferencesExist(input)
	f.repo.On("CountWarehousesForProductAtStore", mock.Anything, "P1", "S1").Return(1, nil)
	f.repo.On("WarehouseFulfillsStore", mock.Anything, "MWH.001", "S1").Return(false, nil)
	f.repo.On("CountWarehousesForStore", mock.Anything, "S1").Return(2, nil)
	f.repo.On("WarehouseStoresProduct", mock.Anything, "MWH.001", "P1").Return(false, nil)
	f.repo.On("CountProductsForWarehouse", mock.Anything, "MWH.001").Return(4, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(a domain.FulfillmentAssignment) bool {
		return a.ProductID == "P1" && !a.CreatedAt.IsZero()
	})).Return(domain.FulfillmentAssignment{ID: "a-1", WarehouseBusinessUnitCode: "MWH.001", ProductID: "P1", StoreID: "S1"}, nil)

	result, err := f.svc.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "a-1", result.ID)
	f.repo.AssertExpectations(t)
	f.refs.AssertExpectations(t)
}

func TestCreate_Fail_RequiredFields(t *testing.T) {
	cases := map[string]domain.FulfillmentAssignment{
		"warehouseBusinessUnitCode": {ProductID: "P1", StoreID: "S1"},
		"productId":                 {WarehouseBusinessUnitCode: "MWH.001", ProductID: " ", StoreID: "S1"},
		"storeId":                   {WarehouseBusinessUnitCode: "MWH.001", ProductID: "P1"},
	}
	for field, a := range cases {
		t.Run(field, func(t *testing.T) {
			f := newFixture()

			_, err := f.svc.Create(context.Background(), a)

			assertValidationField(t, err, field)
			f.refs.AssertNotCalled(t, "FindActiveByCode", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_Fail_MissingReferences(t *testing.T) {
	t.Run("warehouse", func(t *testing.T) {
		f := newFixture()
		f.refs.On("FindActiveByCode", mock.Anything, "MWH.001").Return(domain.Warehouse{}, apperror.NewNotFoundError("x"))

		_, err := f.svc.Create(context.Background(), input)

		assertNotFoundResource(t, err, "warehouse")
		f.refs.AssertNotCalled(t, "Exists", mock.Anything, "product", "P1")
	})
	t.Run("product", func(t *testing.T) {
		f := newFixture()
		f.refs.On("FindActiveByCode", mock.Anything, "MWH.001").Return(domain.Warehouse{}, nil)
		f.refs.On("Exists", mock.Anything, "product", "P1").Return(false, nil)

		_, err := f.svc.Create(context.Background(), input)

		assertNotFoundResource(t, err, "product")
		f.refs.AssertNotCalled(t, "Exists", mock.Anything, "store", "S1")
	})
	t.Run("store", func(t *testing.T) {
		f := newFixture()
		f.refs.On("FindActiveByCode", mock.Anything, "MWH.001").Return(domain.Warehouse{}, nil)
		f.refs.On("Exists", mock.Anything, "product", "P1").Return(true, nil)
		f.refs.On("Exists", mock.Anything, "store", "S1").Return(false, nil)

		_, err := f.svc.Create(context.Background(), input)

		assertNotFoundResource(t, err, "store")
		f.repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCreate_Fail_Duplicate(t *testing.T) {
	f := newFixture()
	f.refs.On("FindActiveByCode", mock.Anything, "MWH.001").Return(domain.Warehouse{}, nil)
	f.refs.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	f.repo.On("Exists", mock.Anything, "MWH.001", "P1", "S1").Return(true, nil)

	_, err := f.svc.Create(context.Background(), input)

	assert.IsType(t, &apperror.ConflictError{}, err)
	f.repo.AssertNotCalled(t, "CountWarehousesForProductAtStore", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_Fail_PerProductStoreLimit(t *testing.T) {
	f := newFixture()
	f.allReferencesExist(input)
	f.repo.On("CountWarehousesForProductAtStore", mock.Anything, "P1", "S1").Return(2, nil)

	_, err := f.svc.Create(context.Background(), input)

	assertValidationLimit(t, err, "max_warehouses_per_product_per_store")
	f.repo.AssertNotCalled(t, "WarehouseFulfillsStore", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_StoreLimitSkippedWhenWarehouseAlreadyFulfillsStore(t *testing.T) {
	f := newFixture()
	f.allReferencesExist(input)
	f.repo.On("CountWarehousesForProductAtStore", mock.Anything, "P1", "S1").Return(0, nil)
	f.repo.On("WarehouseFulfillsStore", mock.Anything, "MWH.001", "S1").Return(true, nil)
	f.repo.On("WarehouseStoresProduct", mock.Anything, "MWH.001", "P1").Return(true, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(domain.FulfillmentAssignment{ID: "a-2"}, nil)

	_, err := f.svc.Create(context.Background(), input)

	assert.NoError(t, err)
	f.repo.AssertNotCalled(t, "CountWarehousesForStore", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "CountProductsForWarehouse", mock.Anything, mock.Anything)
}

func TestCreate_Fail_StoreLimit(t *testing.T) {
	f := newFixture()
	f.allReferencesExist(input)
	f.repo.On("CountWarehousesForProductAtStore", mock.Anything, "P1", "S1").Return(0, nil)
	f.repo.On("WarehouseFulfillsStore", mock.Anything, "MWH.001", "S1").Return(false, nil)
	f.repo.On("CountWarehousesForStore", mock.Anything, "S1").Return(3, nil)

	_, err := f.svc.Create(context.Background(), input)

	assertValidationLimit(t, err, "max_warehouses_per_store")
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_Fail_WarehouseProductLimit(t *testing.T) {
	f := newFixture()
	f.allReferencesExist(input)
	f.repo.On("CountWarehousesForProductAtStore", mock.Anything, "P1", "S1").Return(0, nil)
	f.repo.On("WarehouseFulfillsStore", mock.Anything, "MWH.001", "S1").Return(true, nil)
	f.repo.On("WarehouseStoresProduct", mock.Anything, "MWH.001", "P1").Return(false, nil)
	f.repo.On("CountProductsForWarehouse", mock.Anything, "MWH.001").Return(5, nil)

	_, err := f.svc.Create(context.Background(), input)

	assertValidationLimit(t, err, "max_products_per_warehouse")
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_Fail_RepoError(t *testing.T) {
	f := newFixture()
	f.allReferencesExist(input)
	f.repo.On("CountWarehousesForProductAtStore", mock.Anything, "P1", "S1").Return(0, errors.New("connection reset"))

	_, err := f.svc.Create(context.Background(), input)

	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestDelete_Fail_NotFound(t *testing.T) {
	f := newFixture()
	f.repo.On("FindByID", mock.Anything, "ghost").Return(domain.FulfillmentAssignment{}, apperror.NewNotFoundError("atribuição"))

	err := f.svc.Delete(context.Background(), "ghost")

	assert.True(t, apperror.IsNotFound(err))
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListByStore_EmptyIsNotNil(t *testing.T) {
	f := newFixture()
	f.repo.On("ListByStore", mock.Anything, "S1").Return([]domain.FulfillmentAssignment(nil), nil)

	list, err := f.svc.ListByStore(context.Background(), "S1")

	assert.NoError(t, err)
	assert.NotNil(t, list)
}

func assertValidationField(t *testing.T, err error, field string) {
	t.Helper()
	var ve *apperror.ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, field, ve.Field)
	}
}

func assertValidationLimit(t *testing.T, err error, limit string) {
	t.Helper()
	var ve *apperror.ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, limit, ve.Limit)
	}
}

func assertNotFoundResource(t *testing.T, err error, resource string) {
	t.Helper()
	var nf *apperror.NotFoundError
	if assert.ErrorAs(t, err, &nf) {
		assert.Equal(t, resource, nf.Resource)
	}
}
