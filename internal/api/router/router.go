package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"gofulfill/internal/api/fulfillment"
	"gofulfill/internal/api/location"
	"gofulfill/internal/api/warehouse"
	"gofulfill/internal/pkg/cache"
	"gofulfill/internal/pkg/logger"
	"gofulfill/internal/pkg/middleware"
)

// Handlers reúne os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	Warehouse   *warehouse.Handler
	Fulfillment *fulfillment.Handler
	Location    *location.Handler
	Metrics     http.Handler // exposição Prometheus (/metrics)
}

// Options agrupa a infraestrutura transversal do roteador.
type Options struct {
	HTTPMetrics     *middleware.HTTPMetrics
	RateLimitCache  cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration
	Logger          logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()

	// route registra o padrão já instrumentado; o rótulo da métrica e do span é o próprio padrão.
	route := func(pattern string, fn http.HandlerFunc) {
		instrumented := middleware.Instrument(opts.HTTPMetrics, opts.Logger, pattern, fn)
		mux.Handle(pattern, otelhttp.WithRouteTag(pattern, instrumented))
	}

	// --- 1. Health Check, Métricas e Documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /metrics", h.Metrics)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// --- 2. Rotas de Armazéns (v1) ---
	route("POST /v1/warehouses", h.Warehouse.CreateWarehouseHandler)
	route("GET /v1/warehouses", h.Warehouse.ListWarehousesHandler)
	route("GET /v1/warehouses/{id}", h.Warehouse.GetWarehouseByIDHandler)
	route("DELETE /v1/warehouses/{id}", h.Warehouse.ArchiveWarehouseHandler)
	route("POST /v1/warehouses/{businessUnitCode}/replacement", h.Warehouse.ReplaceWarehouseHandler)

	// --- 3. Rotas de Atribuições (v1) ---
	route("POST /v1/fulfillment", h.Fulfillment.CreateAssignmentHandler)
	route("GET /v1/fulfillment", h.Fulfillment.ListAssignmentsHandler)
	route("DELETE /v1/fulfillment/{id}", h.Fulfillment.DeleteAssignmentHandler)
	route("GET /v1/fulfillment/store/{id}", h.Fulfillment.ListByStoreHandler)
	route("GET /v1/fulfillment/warehouse/{code}", h.Fulfillment.ListByWarehouseHandler)
	route("GET /v1/fulfillment/product/{id}", h.Fulfillment.ListByProductHandler)

	// --- 4. Rotas de Localizações (v1) ---
	route("GET /v1/locations", h.Location.ListLocationsHandler)

	// --- 5. Middlewares Globais ---
	// O span HTTP envolve tudo, inclusive as requisições barradas pelo rate limit.
	limiter := middleware.RateLimiter(opts.RateLimitCache, opts.RateLimitMax, opts.RateLimitPeriod, opts.Logger)
	return otelhttp.NewHandler(limiter(mux), "gofulfill-http")
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
