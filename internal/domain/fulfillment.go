package domain

import (
	"context"
	"time"
)

// FulfillmentAssignment indica que um armazém abastece um produto para uma loja.
// A tripla (armazém, produto, loja) é única; atribuições nunca são alteradas, só removidas.
type FulfillmentAssignment struct {
	ID                        string    `json:"id"`
	WarehouseBusinessUnitCode string    `json:"warehouseBusinessUnitCode"`
	ProductID                 string    `json:"productId"`
	StoreID                   string    `json:"storeId"`
	CreatedAt                 time.Time `json:"createdAt"`
}

// FulfillmentService define o contrato de admissão e consulta de atribuições.
type FulfillmentService interface {
	Create(ctx context.Context, assignment FulfillmentAssignment) (FulfillmentAssignment, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]FulfillmentAssignment, error)
	ListByStore(ctx context.Context, storeID string) ([]FulfillmentAssignment, error)
	ListByWarehouse(ctx context.Context, businessUnitCode string) ([]FulfillmentAssignment, error)
	ListByProduct(ctx context.Context, productID string) ([]FulfillmentAssignment, error)
}
