package main

import (
	"context"
	"log"

	"gofulfill/config"
	"gofulfill/internal/pkg/cache"
	"gofulfill/internal/pkg/database"
	"gofulfill/internal/pkg/logger"
	"gofulfill/internal/pkg/seed"
	"gofulfill/internal/repository/locationrepo"
	"gofulfill/internal/repository/productrepo"
	"gofulfill/internal/repository/storerepo"
	"gofulfill/internal/repository/warehouserepo"
	"gofulfill/internal/service/warehouseservice"
)

// Carrega produtos, lojas e armazéns de demonstração no PostgreSQL.
// Os armazéns passam pelo serviço, então os limites das localizações são respeitados.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("seed: configuração inválida: %v", err)
	}
	if cfg.StorageDriver != config.StorageDriverPostgres {
		log.Fatalf("seed: só se aplica com STORAGE_DRIVER=%s (o driver em memória já sobe com os dados)", config.StorageDriverPostgres)
	}

	appLog := logger.NewLogger(cfg.LogLevel)
	defer appLog.Sync()

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, database.DefaultPoolConfig)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()

	if err := database.MigrateUp(ctx, db); err != nil {
		appLog.Fatal("Falha ao aplicar migrações.", err)
	}

	// O seed não consulta existência de produtos, então o cache local basta.
	products := productrepo.NewProductRepository(db, cache.NewMemoryClient(), cfg.DBTimeout, cfg.CacheTTL, appLog)
	stores := storerepo.NewStoreRepository(db, cfg.DBTimeout, appLog)
	warehouses := warehouseservice.NewService(
		warehouserepo.NewWarehouseRepository(db, cfg.DBTimeout, appLog),
		locationrepo.NewDirectory(),
		database.NewPostgresTransactor(db, cfg.TxTimeout, appLog),
		appLog,
	)

	if err := seed.Run(ctx, warehouses, products, stores, appLog); err != nil {
		appLog.Fatal("Falha ao carregar dados de demonstração.", err)
	}
}
