package domain

import (
	"context"
	"time"
)

// Warehouse representa uma unidade de armazém identificada pelo código de unidade de negócio.
// O código é único apenas entre armazéns ativos; registros arquivados ficam como histórico.
type Warehouse struct {
	ID               string     `json:"id"`
	BusinessUnitCode string     `json:"businessUnitCode"`
	Location         string     `json:"location"`
	Capacity         int        `json:"capacity"`
	Stock            int        `json:"stock"`
	CreatedAt        time.Time  `json:"createdAt"`
	ArchivedAt       *time.Time `json:"archivedAt,omitempty"`
}

// IsActive informa se o armazém não foi arquivado.
func (w Warehouse) IsActive() bool {
	return w.ArchivedAt == nil
}

// Location representa os limites estáticos de uma localização.
// Imutável e definida externamente (diretório fixo).
type Location struct {
	Identification        string `json:"identification"`
	MaxNumberOfWarehouses int    `json:"maxNumberOfWarehouses"`
	MaxCapacity           int    `json:"maxCapacity"`
}

// --- Interfaces de Contrato ---

// WarehouseService define as operações de ciclo de vida que a camada API pode solicitar.
type WarehouseService interface {
	Create(ctx context.Context, warehouse Warehouse) (Warehouse, error)
	Replace(ctx context.Context, warehouse Warehouse) (Warehouse, error)
	Archive(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Warehouse, error)
	ListActive(ctx context.Context) ([]Warehouse, error)
}
