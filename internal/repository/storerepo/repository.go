package storerepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gofulfill/internal/domain"
	"gofulfill/internal/errors"
	"gofulfill/internal/pkg/database"
	"gofulfill/internal/pkg/logger"
)

// StoreRepository responde à verificação de existência de lojas.
type StoreRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewStoreRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *StoreRepository {
	return &StoreRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// Exists verifica se a loja existe.
func (r *StoreRepository) Exists(ctx context.Context, id string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var exists bool
	err := database.Executor(ctx, r.DB).QueryRowContext(ctxTimeout,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		r.logger.Error("Falha ao verificar loja no DB.", err)
		return false, errors.NewDBError("Falha ao buscar loja no DB", err)
	}
	return exists, nil
}

// Create insere uma loja (usado pelo seed e pelos testes de integração).
func (r *StoreRepository) Create(ctx context.Context, store domain.Store) (domain.Store, error) {
	if strings.TrimSpace(store.Name) == "" {
		return domain.Store{}, errors.NewFieldError("name", "O nome da loja é obrigatório.")
	}
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	if store.CreatedAt.IsZero() {
		store.CreatedAt = time.Now().UTC()
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	_, err := database.Executor(ctx, r.DB).ExecContext(ctxTimeout,
		`INSERT INTO stores (id, name, quantity_products_in_stock, created_at) VALUES ($1, $2, $3, $4)`,
		store.ID, store.Name, store.QuantityProductsInStock, store.CreatedAt)
	if database.IsUniqueViolation(err) {
		return domain.Store{}, errors.NewConflictError(fmt.Sprintf("Loja %s já existe.", store.Name))
	}
	if err != nil {
		r.logger.Error("Falha ao inserir loja no DB.", err)
		return domain.Store{}, errors.NewDBError("Falha ao criar loja", err)
	}

	r.logger.Info("Loja criada com sucesso.", map[string]interface{}{"id": store.ID, "name": store.Name})
	return store, nil
}
