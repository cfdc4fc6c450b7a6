package productrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gofulfill/internal/domain"
	"gofulfill/internal/errors"
	"gofulfill/internal/pkg/cache"
	"gofulfill/internal/pkg/database"
	"gofulfill/internal/pkg/logger"
)

// ProductRepository responde à verificação de existência de produtos usando Cache-Aside.
// Só resultados positivos vão para o cache: produtos não são removidos por este serviço,
// mas podem ser criados a qualquer momento.
type ProductRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
// Aqui injetamos as dependências de Infraestrutura (DB e Cache).
func NewProductRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Define a chave de cache para existência de produtos.
const productExistsCacheKey = "product-exists:%s"

// Exists verifica se o produto existe, consultando primeiro o cache.
func (r *ProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	key := fmt.Sprintf(productExistsCacheKey, id)

	// --- Cache-Aside (READ) ---
	if _, err := r.Cache.Get(ctx, key); err == nil {
		return true, nil
	} else if err != cache.ErrCacheMiss {
		// Falha real de cache (ex: conexão perdida): seguimos para o DB.
		r.logger.Warn("Falha ao ler do cache Redis.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var exists bool
	err := database.Executor(ctx, r.DB).QueryRowContext(ctxTimeout,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.logger.Error("Falha ao verificar produto no DB.", err)
		return false, errors.NewDBError("Falha ao buscar produto no DB", err)
	}

	// --- Cache-Aside (WRITE) ---
	if exists {
		if err := r.Cache.Set(ctx, key, "1", r.CacheTTL); err != nil {
			r.logger.Warn("Falha ao gravar produto no cache.", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}
	return exists, nil
}

// Create insere um produto (usado pelo seed e pelos testes de integração).
func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return domain.Product{}, errors.NewFieldError("name", "O nome do produto é obrigatório.")
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	_, err := database.Executor(ctx, r.DB).ExecContext(ctxTimeout,
		`INSERT INTO products (id, name, stock, created_at) VALUES ($1, $2, $3, $4)`,
		product.ID, product.Name, product.Stock, product.CreatedAt)
	if database.IsUniqueViolation(err) {
		return domain.Product{}, errors.NewConflictError(fmt.Sprintf("Produto %s já existe.", product.ID))
	}
	if err != nil {
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return domain.Product{}, errors.NewDBError("Falha ao criar produto", err)
	}

	r.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": product.ID, "name": product.Name})
	return product, nil
}
