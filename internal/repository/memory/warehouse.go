package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
)

// WarehouseRepository guarda todas as versões de cada armazém; as arquivadas ficam como histórico.
type WarehouseRepository struct {
	mu   sync.RWMutex
	rows []domain.Warehouse
}

func NewWarehouseRepository() *WarehouseRepository {
	return &WarehouseRepository{}
}

func clone(w domain.Warehouse) domain.Warehouse {
	if w.ArchivedAt != nil {
		at := *w.ArchivedAt
		w.ArchivedAt = &at
	}
	return w
}

func (r *WarehouseRepository) activeIndexByCode(code string) int {
	for i, w := range r.rows {
		if w.IsActive() && w.BusinessUnitCode == code {
			return i
		}
	}
	return -1
}

func (r *WarehouseRepository) GetAllActive(_ context.Context) ([]domain.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Warehouse, 0, len(r.rows))
	for _, w := range r.rows {
		if w.IsActive() {
			out = append(out, clone(w))
		}
	}
	return out, nil
}

// Create rejeita um segundo registro ativo com o mesmo código, como o índice único parcial do PostgreSQL.
func (r *WarehouseRepository) Create(_ context.Context, w domain.Warehouse) (domain.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.IsActive() && r.activeIndexByCode(w.BusinessUnitCode) >= 0 {
		return domain.Warehouse{}, apperror.NewConflictError(fmt.Sprintf("Já existe um armazém ativo com o código %s.", w.BusinessUnitCode))
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	w = clone(w)
	r.rows = append(r.rows, w)
	return clone(w), nil
}

// Update grava sobre o registro ativo do código informado.
func (r *WarehouseRepository) Update(_ context.Context, w domain.Warehouse) (domain.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.activeIndexByCode(w.BusinessUnitCode)
	if i < 0 {
		return domain.Warehouse{}, apperror.NewResourceNotFoundError("warehouse", fmt.Sprintf("Armazém ativo com código %s não encontrado para atualização.", w.BusinessUnitCode))
	}
	current := r.rows[i]
	current.Location = w.Location
	current.Capacity = w.Capacity
	current.Stock = w.Stock
	current.ArchivedAt = w.ArchivedAt
	r.rows[i] = clone(current)
	return clone(current), nil
}

func (r *WarehouseRepository) FindActiveByCode(_ context.Context, code string) (domain.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.activeIndexByCode(code); i >= 0 {
		return clone(r.rows[i]), nil
	}
	return domain.Warehouse{}, apperror.NewResourceNotFoundError("warehouse", fmt.Sprintf("Armazém ativo com código %s não existe.", code))
}

func (r *WarehouseRepository) FindActiveByID(_ context.Context, id string) (domain.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.rows {
		if w.ID == id && w.IsActive() {
			return clone(w), nil
		}
	}
	return domain.Warehouse{}, apperror.NewResourceNotFoundError("warehouse", fmt.Sprintf("Armazém ativo com ID %s não existe.", id))
}

// All devolve todas as versões, inclusive as arquivadas.
func (r *WarehouseRepository) All() []domain.Warehouse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Warehouse, 0, len(r.rows))
	for _, w := range r.rows {
		out = append(out, clone(w))
	}
	return out
}
