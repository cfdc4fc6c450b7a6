package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Drivers de armazenamento suportados.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config armazena todas as configurações do serviço GoFulfill.
type Config struct {
	// Geral
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Armazenamento: "postgres" (padrão) ou "memory" (desenvolvimento local)
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`

	// Banco de Dados (PostgreSQL)
	DatabaseURL string        `env:"DATABASE_URL"`
	DBTimeout   time.Duration `env:"DB_TIMEOUT" envDefault:"5s"`
	TxTimeout   time.Duration `env:"TX_TIMEOUT" envDefault:"10s"`

	// Cache (Redis)
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Rate Limiting
	RateLimitMaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`
	RateLimitPeriod      time.Duration `env:"RATE_LIMIT_PERIOD" envDefault:"1m"`

	// Observabilidade (vazio desativa o exportador OTLP)
	OtelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"gofulfill"`
}

// LoadConfig carrega o arquivo .env (quando existir) e as variáveis de ambiente.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Sem .env seguimos apenas com o ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}
	return Parse()
}

// Parse lê apenas as variáveis de ambiente, sem tocar em arquivos .env.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("❌ Erro de Configuração: DATABASE_URL deve ser definida quando STORAGE_DRIVER=%s", StorageDriverPostgres)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("❌ Erro de Configuração: STORAGE_DRIVER inválido %q (use %q ou %q)", c.StorageDriver, StorageDriverPostgres, StorageDriverMemory)
	}
	if c.DBTimeout <= 0 || c.TxTimeout <= 0 {
		return fmt.Errorf("❌ Erro de Configuração: DB_TIMEOUT e TX_TIMEOUT devem ser positivos")
	}
	return nil
}
