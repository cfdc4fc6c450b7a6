package warehouse

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

// MockWarehouseService implementa domain.WarehouseService para os testes do Handler.
type MockWarehouseService struct {
	mock.Mock
}

func (m *MockWarehouseService) Create(ctx context.Context, w domain.Warehouse) (domain.Warehouse, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseService) Replace(ctx context.Context, w domain.Warehouse) (domain.Warehouse, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseService) Archive(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWarehouseService) GetByID(ctx context.Context, id string) (domain.Warehouse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseService) ListActive(ctx context.Context) ([]domain.Warehouse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}

func TestCreateWarehouseHandler_Success(t *testing.T) {
	svc := new(MockWarehouseService)
	h := NewHandler(svc, logger.NewNop())

	in := domain.Warehouse{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: 40, Stock: 10}
	out := in
	out.ID = "id-1"
	svc.On("Create", mock.Anything, in).Return(out, nil).Once()

	body := `{"businessUnitCode":"MWH.001","location":"ZWOLLE-001","capacity":40,"stock":10}`
	w := httptest.NewRecorder()
	h.CreateWarehouseHandler(w, httptest.NewRequest(http.MethodPost, "/v1/warehouses", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	var got domain.Warehouse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "id-1", got.ID)
	svc.AssertExpectations(t)
}

func TestCreateWarehouseHandler_Fail_MalformedJSON(t *testing.T) {
	svc := new(MockWarehouseService)
	h := NewHandler(svc, logger.NewNop())

	w := httptest.NewRecorder()
	h.CreateWarehouseHandler(w, httptest.NewRequest(http.MethodPost, "/v1/warehouses", strings.NewReader("not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateWarehouseHandler_Fail_MissingNumbers(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"sem estoque", `{"businessUnitCode":"MWH.001","location":"ZWOLLE-001","capacity":40}`, "stock"},
		{"estoque nulo", `{"businessUnitCode":"MWH.001","location":"ZWOLLE-001","capacity":40,"stock":null}`, "stock"},
		{"sem capacidade", `{"businessUnitCode":"MWH.001","location":"ZWOLLE-001","stock":0}`, "capacity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockWarehouseService)
			h := NewHandler(svc, logger.NewNop())

			w := httptest.NewRecorder()
			h.CreateWarehouseHandler(w, httptest.NewRequest(http.MethodPost, "/v1/warehouses", strings.NewReader(tc.body)))

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var body domain.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.field, body.Field)
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateWarehouseHandler_ZeroStockAccepted(t *testing.T) {
	svc := new(MockWarehouseService)
	h := NewHandler(svc, logger.NewNop())

	in := domain.Warehouse{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: 40, Stock: 0}
	svc.On("Create", mock.Anything, in).Return(in, nil).Once()

	body := `{"id":"forjado","businessUnitCode":"MWH.001","location":"ZWOLLE-001","capacity":40,"stock":0}`
	w := httptest.NewRecorder()
	h.CreateWarehouseHandler(w, httptest.NewRequest(http.MethodPost, "/v1/warehouses", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestReplaceWarehouseHandler_Fail_MissingStock(t *testing.T) {
	svc := new(MockWarehouseService)
	h := NewHandler(svc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/v1/warehouses/MWH.001/replacement",
		strings.NewReader(`{"location":"ZWOLLE-001","capacity":30}`))
	r.SetPathValue("businessUnitCode", "MWH.001")
	w := httptest.NewRecorder()
	h.ReplaceWarehouseHandler(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	svc.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
}

func TestReplaceWarehouseHandler_UsesPathCode(t *testing.T) {
	svc := new(MockWarehouseService)
	h := NewHandler(svc, logger.NewNop())

	svc.On("Replace", mock.Anything, mock.MatchedBy(func(w domain.Warehouse) bool {
		return w.BusinessUnitCode == "MWH.001" && w.Capacity == 30
	})).Return(domain.Warehouse{BusinessUnitCode: "MWH.001", Capacity: 30}, nil).Once()

	r := httptest.NewRequest(http.MethodPost, "/v1/warehouses/MWH.001/replacement",
		strings.NewReader(`{"businessUnitCode":"OUTRO","location":"ZWOLLE-001","capacity":30,"stock":10}`))
	r.SetPathValue("businessUnitCode", "MWH.001")
	w := httptest.NewRecorder()
	h.ReplaceWarehouseHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestArchiveWarehouseHandler_Fail_NotFound(t *testing.T) {
	svc := new(MockWarehouseService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("Archive", mock.Anything, "x").Return(apperror.NewResourceNotFoundError("warehouse", "não existe")).Once()

	r := httptest.NewRequest(http.MethodDelete, "/v1/warehouses/x", nil)
	r.SetPathValue("id", "x")
	w := httptest.NewRecorder()
	h.ArchiveWarehouseHandler(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "warehouse", body.Resource)
}
