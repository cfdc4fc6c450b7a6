package main

import (
	"context"
	"database/sql"

	"gofulfill/config"
	"gofulfill/internal/domain"
	"gofulfill/internal/pkg/cache"
	"gofulfill/internal/pkg/database"
	"gofulfill/internal/pkg/logger"
	"gofulfill/internal/pkg/seed"
	"gofulfill/internal/repository/fulfillmentrepo"
	"gofulfill/internal/repository/memory"
	"gofulfill/internal/repository/productrepo"
	"gofulfill/internal/repository/storerepo"
	"gofulfill/internal/repository/warehouserepo"
	"gofulfill/internal/service/fulfillmentservice"
	"gofulfill/internal/service/warehouseservice"
)

// productStore e storeStore são os catálogos externos: só existência (e criação para o seed).
type productStore interface {
	fulfillmentservice.ProductCatalog
	seed.ProductCreator
}

type storeStore interface {
	fulfillmentservice.StoreDirectory
	seed.StoreCreator
}

// storage agrupa os repositórios e o Transactor do driver escolhido.
type storage struct {
	warehouses  warehouseservice.WarehouseRepository
	assignments fulfillmentservice.AssignmentRepository
	products    productStore
	stores      storeStore
	tx          domain.Transactor
	db          *sql.DB // nil no driver em memória
}

func (s *storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// newStorage monta a camada de persistência conforme STORAGE_DRIVER.
func newStorage(ctx context.Context, cfg *config.Config, cacheClient cache.Client, log logger.Logger) (*storage, error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		log.Warn("Usando armazenamento em memória: os dados se perdem ao encerrar o processo.", nil)
		return &storage{
			warehouses:  memory.NewWarehouseRepository(),
			assignments: memory.NewAssignmentRepository(),
			products:    memory.NewProductCatalog(),
			stores:      memory.NewStoreDirectory(),
			tx:          memory.NewTransactor(),
		}, nil
	}

	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, database.DefaultPoolConfig)
	if err != nil {
		return nil, err
	}
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	return &storage{
		warehouses:  warehouserepo.NewWarehouseRepository(db, cfg.DBTimeout, log),
		assignments: fulfillmentrepo.NewAssignmentRepository(db, cfg.DBTimeout, log),
		products:    productrepo.NewProductRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, log),
		stores:      storerepo.NewStoreRepository(db, cfg.DBTimeout, log),
		tx:          database.NewPostgresTransactor(db, cfg.TxTimeout, log),
		db:          db,
	}, nil
}
