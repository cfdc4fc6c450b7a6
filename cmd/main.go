package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Nossos pacotes de infraestrutura e utilitários
	"gofulfill/config"
	"gofulfill/internal/pkg/cache"
	"gofulfill/internal/pkg/logger"
	"gofulfill/internal/pkg/middleware"
	"gofulfill/internal/pkg/observability"
	"gofulfill/internal/pkg/seed"

	// Camadas de Armazéns e Atribuições para Injeção de Dependências
	_ "gofulfill/docs" // Documento Swagger registrado no swag
	"gofulfill/internal/api/fulfillment"
	"gofulfill/internal/api/location"
	"gofulfill/internal/api/router"
	"gofulfill/internal/api/warehouse"
	"gofulfill/internal/repository/locationrepo"
	"gofulfill/internal/service/fulfillmentservice"
	"gofulfill/internal/service/warehouseservice"
)

// @title GoFulfill API
// @version 1.0
// @description Ciclo de vida de armazéns e admissão de atribuições armazém/produto/loja.
// @host localhost:8080
// @BasePath /v1
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço GoFulfill...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Falha ao carregar configurações: %v", err)
	}
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Configurações carregadas.", map[string]interface{}{
		"env":            cfg.Environment,
		"storage_driver": cfg.StorageDriver,
	})

	ctx := context.Background()

	// 2. Observabilidade (Traces e Métricas)
	tp, err := observability.SetupTracing(ctx, cfg.ServiceName, cfg.OtelEndpoint, log)
	if err != nil {
		log.Fatal("Falha ao configurar tracing.", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error("Falha ao encerrar o TracerProvider.", err)
		}
	}()
	tracer := tp.Tracer(cfg.ServiceName)
	metrics := observability.NewMetrics()

	// 3. Conexão com Recursos de Infraestrutura

	// A. Cache (Redis). Sem Redis o serviço sobe com um cache local ao processo.
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Warn("Redis indisponível; usando cache em memória.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		cacheClient = cache.NewMemoryClient()
	} else {
		log.Info("Conexão Redis estabelecida.", nil)
	}

	// B. Persistência (PostgreSQL ou memória)
	store, err := newStorage(ctx, cfg, cacheClient, log)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer store.Close()

	// 4. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Decorator de observabilidade -> Handler
	locations := locationrepo.NewDirectory()

	warehouseSvc := observability.NewWarehouseService(
		warehouseservice.NewService(store.warehouses, locations, store.tx, log),
		tracer, metrics, log)
	log.Debug("Serviço de Armazéns inicializado.", nil)

	fulfillmentSvc := observability.NewFulfillmentService(
		fulfillmentservice.NewService(store.assignments, store.warehouses, store.products, store.stores, store.tx, log),
		tracer, metrics, log)
	log.Debug("Serviço de Atribuições inicializado.", nil)

	if cfg.StorageDriver == config.StorageDriverMemory {
		if err := seed.Run(ctx, warehouseSvc, store.products, store.stores, log); err != nil {
			log.Fatal("Falha ao carregar dados de demonstração.", err)
		}
	}

	handlers := router.Handlers{
		Warehouse:   warehouse.NewHandler(warehouseSvc, log),
		Fulfillment: fulfillment.NewHandler(fulfillmentSvc, log),
		Location:    location.NewHandler(locations, log),
		Metrics:     metrics.Handler(),
	}

	// 5. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, router.Options{
		HTTPMetrics:     middleware.NewHTTPMetrics(metrics.Registry),
		RateLimitCache:  cacheClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
		Logger:          log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor GoFulfill ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
