// Package seed popula produtos, lojas e armazéns de demonstração.
package seed

import (
	"context"
	"errors"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/logger"
)

type ProductCreator interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
}

type StoreCreator interface {
	Create(ctx context.Context, store domain.Store) (domain.Store, error)
}

// Dados de demonstração. Os armazéns respeitam os limites do diretório de localizações.
var (
	Products = []domain.Product{
		{ID: "1", Name: "TONSTAD", Stock: 10},
		{ID: "2", Name: "KALLAX", Stock: 5},
		{ID: "3", Name: "BESTÅ", Stock: 3},
	}
	Stores = []domain.Store{
		{ID: "1", Name: "TONSTAD", QuantityProductsInStock: 10},
		{ID: "2", Name: "KALLAX", QuantityProductsInStock: 5},
		{ID: "3", Name: "BESTÅ", QuantityProductsInStock: 3},
	}
	Warehouses = []domain.Warehouse{
		{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: 40, Stock: 10},
		{BusinessUnitCode: "MWH.012", Location: "AMSTERDAM-001", Capacity: 50, Stock: 5},
		{BusinessUnitCode: "MWH.023", Location: "TILBURG-001", Capacity: 30, Stock: 27},
	}
)

// Run cria os dados de demonstração. Registros já existentes (ConflictError) são ignorados,
// então rodar duas vezes é seguro.
func Run(ctx context.Context, warehouses domain.WarehouseService, products ProductCreator, stores StoreCreator, log logger.Logger) error {
	for _, p := range Products {
		if _, err := products.Create(ctx, p); skip(err) != nil {
			return err
		}
	}
	for _, s := range Stores {
		if _, err := stores.Create(ctx, s); skip(err) != nil {
			return err
		}
	}
	for _, w := range Warehouses {
		if _, err := warehouses.Create(ctx, w); skip(err) != nil {
			return err
		}
	}
	log.Info("Dados de demonstração carregados.", map[string]interface{}{
		"products":   len(Products),
		"stores":     len(Stores),
		"warehouses": len(Warehouses),
	})
	return nil
}

func skip(err error) error {
	var conflict *apperror.ConflictError
	if errors.As(err, &conflict) {
		return nil
	}
	return err
}
