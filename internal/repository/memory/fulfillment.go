package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
)

// AssignmentRepository guarda atribuições em memória; as contagens são sempre recalculadas.
type AssignmentRepository struct {
	mu    sync.RWMutex
	items map[string]domain.FulfillmentAssignment
}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{items: map[string]domain.FulfillmentAssignment{}}
}

func (r *AssignmentRepository) Exists(_ context.Context, code, productID, storeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.items {
		if a.WarehouseBusinessUnitCode == code && a.ProductID == productID && a.StoreID == storeID {
			return true, nil
		}
	}
	return false, nil
}

// countDistinct conta valores distintos de key entre as atribuições que satisfazem match.
func (r *AssignmentRepository) countDistinct(match func(domain.FulfillmentAssignment) bool, key func(domain.FulfillmentAssignment) string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]struct{}{}
	for _, a := range r.items {
		if match(a) {
			seen[key(a)] = struct{}{}
		}
	}
	return len(seen)
}

func byWarehouse(a domain.FulfillmentAssignment) string { return a.WarehouseBusinessUnitCode }
func byProduct(a domain.FulfillmentAssignment) string { return a.ProductID }

func (r *AssignmentRepository) CountWarehousesForProductAtStore(_ context.Context, productID, storeID string) (int, error) {
	return r.countDistinct(func(a domain.FulfillmentAssignment) bool {
		return a.ProductID == productID && a.StoreID == storeID
	}, byWarehouse), nil
}

func (r *AssignmentRepository) CountWarehousesForStore(_ context.Context, storeID string) (int, error) {
	return r.countDistinct(func(a domain.FulfillmentAssignment) bool {
		return a.StoreID == storeID
	}, byWarehouse), nil
}

func (r *AssignmentRepository) CountProductsForWarehouse(_ context.Context, code string) (int, error) {
	return r.countDistinct(func(a domain.FulfillmentAssignment) bool {
		return a.WarehouseBusinessUnitCode == code
	}, byProduct), nil
}

func (r *AssignmentRepository) WarehouseFulfillsStore(_ context.Context, code, storeID string) (bool, error) {
	n := r.countDistinct(func(a domain.FulfillmentAssignment) bool {
		return a.WarehouseBusinessUnitCode == code && a.StoreID == storeID
	}, byWarehouse)
	return n > 0, nil
}

func (r *AssignmentRepository) WarehouseStoresProduct(_ context.Context, code, productID string) (bool, error) {
	n := r.countDistinct(func(a domain.FulfillmentAssignment) bool {
		return a.WarehouseBusinessUnitCode == code && a.ProductID == productID
	}, byWarehouse)
	return n > 0, nil
}

// Create rejeita triplas repetidas, como a restrição única do PostgreSQL.
func (r *AssignmentRepository) Create(_ context.Context, a domain.FulfillmentAssignment) (domain.FulfillmentAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.WarehouseBusinessUnitCode == a.WarehouseBusinessUnitCode && existing.ProductID == a.ProductID && existing.StoreID == a.StoreID {
			return domain.FulfillmentAssignment{}, apperror.NewConflictError("Atribuição já existe para este armazém, produto e loja.")
		}
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	r.items[a.ID] = a
	return a, nil
}

func (r *AssignmentRepository) FindByID(_ context.Context, id string) (domain.FulfillmentAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return domain.FulfillmentAssignment{}, apperror.NewResourceNotFoundError("fulfillment_assignment", fmt.Sprintf("Atribuição com ID %s não existe.", id))
	}
	return a, nil
}

func (r *AssignmentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperror.NewResourceNotFoundError("fulfillment_assignment", fmt.Sprintf("Atribuição com ID %s não existe.", id))
	}
	delete(r.items, id)
	return nil
}

func (r *AssignmentRepository) list(match func(domain.FulfillmentAssignment) bool) []domain.FulfillmentAssignment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.FulfillmentAssignment, 0, len(r.items))
	for _, a := range r.items {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *AssignmentRepository) ListAll(_ context.Context) ([]domain.FulfillmentAssignment, error) {
	return r.list(func(domain.FulfillmentAssignment) bool { return true }), nil
}

func (r *AssignmentRepository) ListByStore(_ context.Context, storeID string) ([]domain.FulfillmentAssignment, error) {
	return r.list(func(a domain.FulfillmentAssignment) bool { return a.StoreID == storeID }), nil
}

func (r *AssignmentRepository) ListByWarehouse(_ context.Context, code string) ([]domain.FulfillmentAssignment, error) {
	return r.list(func(a domain.FulfillmentAssignment) bool { return a.WarehouseBusinessUnitCode == code }), nil
}

func (r *AssignmentRepository) ListByProduct(_ context.Context, productID string) ([]domain.FulfillmentAssignment, error) {
	return r.list(func(a domain.FulfillmentAssignment) bool { return a.ProductID == productID }), nil
}
