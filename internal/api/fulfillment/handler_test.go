package fulfillment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/logger"
)

type MockFulfillmentService struct {
	mock.Mock
}

func (m *MockFulfillmentService) Create(ctx context.Context, a domain.FulfillmentAssignment) (domain.FulfillmentAssignment, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(domain.FulfillmentAssignment), args.Error(1)
}

func (m *MockFulfillmentService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFulfillmentService) ListAll(ctx context.Context) ([]domain.FulfillmentAssignment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FulfillmentAssignment), args.Error(1)
}

func (m *MockFulfillmentService) ListByStore(ctx context.Context, storeID string) ([]domain.FulfillmentAssignment, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.FulfillmentAssignment), args.Error(1)
}

func (m *MockFulfillmentService) ListByWarehouse(ctx context.Context, code string) ([]domain.FulfillmentAssignment, error) {
	args := m.Called(ctx, code)
	return args.Get(0).([]domain.FulfillmentAssignment), args.Error(1)
}

func (m *MockFulfillmentService) ListByProduct(ctx context.Context, productID string) ([]domain.FulfillmentAssignment, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.FulfillmentAssignment), args.Error(1)
}

func TestCreateAssignmentHandler_Fail_Conflict(t *testing.T) {
	svc := new(MockFulfillmentService)
	h := NewHandler(svc, logger.NewNop())

	in := domain.FulfillmentAssignment{WarehouseBusinessUnitCode: "MWH.001", ProductID: "1", StoreID: "1"}
	svc.On("Create", mock.Anything, in).Return(domain.FulfillmentAssignment{}, apperror.NewConflictError("já existe")).Once()

	body := `{"warehouseBusinessUnitCode":"MWH.001","productId":"1","storeId":"1"}`
	w := httptest.NewRecorder()
	h.CreateAssignmentHandler(w, httptest.NewRequest(http.MethodPost, "/v1/fulfillment", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, w.Code)
	svc.AssertExpectations(t)
}

func TestListByStoreHandler_Success(t *testing.T) {
	svc := new(MockFulfillmentService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("ListByStore", mock.Anything, "1").Return([]domain.FulfillmentAssignment{
		{ID: "a1", WarehouseBusinessUnitCode: "MWH.001", ProductID: "1", StoreID: "1"},
	}, nil).Once()

	r := httptest.NewRequest(http.MethodGet, "/v1/fulfillment/store/1", nil)
	r.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.ListByStoreHandler(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var got []domain.FulfillmentAssignment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "MWH.001", got[0].WarehouseBusinessUnitCode)
}

func TestDeleteAssignmentHandler_Success(t *testing.T) {
	svc := new(MockFulfillmentService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("Delete", mock.Anything, "a1").Return(nil).Once()

	r := httptest.NewRequest(http.MethodDelete, "/v1/fulfillment/a1", nil)
	r.SetPathValue("id", "a1")
	w := httptest.NewRecorder()
	h.DeleteAssignmentHandler(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}
