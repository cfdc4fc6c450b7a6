package fulfillmentrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gofulfill/internal/domain"
	"gofulfill/internal/errors"
	"gofulfill/internal/pkg/database"
	"gofulfill/internal/pkg/logger"
)

// AssignmentRepository implementa fulfillmentservice.AssignmentRepository sobre PostgreSQL.
// As contagens são sempre calculadas na hora, dentro da transação corrente quando houver.
type AssignmentRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAssignmentRepository cria e retorna uma nova instância do Repositório de Atribuições.
func NewAssignmentRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *AssignmentRepository {
	return &AssignmentRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

const assignmentColumns = `id, warehouse_business_unit_code, product_id, store_id, created_at`

func (r *AssignmentRepository) queryInt(ctx context.Context, op, query string, args ...interface{}) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var n int
	if err := database.Executor(ctx, r.DB).QueryRowContext(ctxTimeout, query, args...).Scan(&n); err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao executar %s no DB.", op), err)
		return 0, errors.NewDBError("Falha ao executar "+op, err)
	}
	return n, nil
}

func (r *AssignmentRepository) queryBool(ctx context.Context, op, query string, args ...interface{}) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var ok bool
	if err := database.Executor(ctx, r.DB).QueryRowContext(ctxTimeout, query, args...).Scan(&ok); err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao executar %s no DB.", op), err)
		return false, errors.NewDBError("Falha ao executar "+op, err)
	}
	return ok, nil
}

func (r *AssignmentRepository) Exists(ctx context.Context, code, productID, storeID string) (bool, error) {
	return r.queryBool(ctx, "Exists", `
        SELECT EXISTS (
            SELECT 1 FROM fulfillment_assignments
            WHERE warehouse_business_unit_code = $1 AND product_id = $2 AND store_id = $3)`,
		code, productID, storeID)
}

func (r *AssignmentRepository) CountWarehousesForProductAtStore(ctx context.Context, productID, storeID string) (int, error) {
	return r.queryInt(ctx, "CountWarehousesForProductAtStore", `
        SELECT COUNT(DISTINCT warehouse_business_unit_code)
        FROM fulfillment_assignments
        WHERE product_id = $1 AND store_id = $2`,
		productID, storeID)
}

func (r *AssignmentRepository) CountWarehousesForStore(ctx context.Context, storeID string) (int, error) {
	return r.queryInt(ctx, "CountWarehousesForStore", `
        SELECT COUNT(DISTINCT warehouse_business_unit_code)
        FROM fulfillment_assignments
        WHERE store_id = $1`,
		storeID)
}

func (r *AssignmentRepository) CountProductsForWarehouse(ctx context.Context, code string) (int, error) {
	return r.queryInt(ctx, "CountProductsForWarehouse", `
        SELECT COUNT(DISTINCT product_id)
        FROM fulfillment_assignments
        WHERE warehouse_business_unit_code = $1`,
		code)
}

func (r *AssignmentRepository) WarehouseFulfillsStore(ctx context.Context, code, storeID string) (bool, error) {
	return r.queryBool(ctx, "WarehouseFulfillsStore", `
        SELECT EXISTS (
            SELECT 1 FROM fulfillment_assignments
            WHERE warehouse_business_unit_code = $1 AND store_id = $2)`,
		code, storeID)
}

func (r *AssignmentRepository) WarehouseStoresProduct(ctx context.Context, code, productID string) (bool, error) {
	return r.queryBool(ctx, "WarehouseStoresProduct", `
        SELECT EXISTS (
            SELECT 1 FROM fulfillment_assignments
            WHERE warehouse_business_unit_code = $1 AND product_id = $2)`,
		code, productID)
}

// Create insere a atribuição. Violação da tripla única vira ConflictError.
func (r *AssignmentRepository) Create(ctx context.Context, a domain.FulfillmentAssignment) (domain.FulfillmentAssignment, error) {
	r.logger.Debug("Iniciando Create de atribuição no repositório.", map[string]interface{}{
		"warehouse": a.WarehouseBusinessUnitCode, "product_id": a.ProductID, "store_id": a.StoreID,
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO fulfillment_assignments (` + assignmentColumns + `)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := database.Executor(ctx, r.DB).ExecContext(ctxTimeout, query,
		a.ID, a.WarehouseBusinessUnitCode, a.ProductID, a.StoreID, a.CreatedAt)
	if database.IsUniqueViolation(err) {
		return domain.FulfillmentAssignment{}, errors.NewConflictError("Atribuição já existe para este armazém, produto e loja.")
	}
	if err != nil {
		r.logger.Error("Falha ao inserir atribuição no DB.", err)
		return domain.FulfillmentAssignment{}, errors.NewDBError("Falha ao criar atribuição", err)
	}

	r.logger.Info("Atribuição inserida com sucesso.", map[string]interface{}{"id": a.ID})
	return a, nil
}

// FindByID busca uma atribuição. IDs que não são UUID não existem.
func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (domain.FulfillmentAssignment, error) {
	notFound := errors.NewResourceNotFoundError("fulfillment_assignment", fmt.Sprintf("Atribuição com ID %s não existe.", id))
	if _, err := uuid.Parse(id); err != nil {
		return domain.FulfillmentAssignment{}, notFound
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + assignmentColumns + ` FROM fulfillment_assignments WHERE id = $1`

	var a domain.FulfillmentAssignment
	err := database.Executor(ctx, r.DB).QueryRowContext(ctxTimeout, query, id).Scan(
		&a.ID, &a.WarehouseBusinessUnitCode, &a.ProductID, &a.StoreID, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.FulfillmentAssignment{}, notFound
	}
	if err != nil {
		r.logger.Error("Falha ao buscar atribuição no DB.", err)
		return domain.FulfillmentAssignment{}, errors.NewDBError("Falha ao buscar atribuição", err)
	}
	return a, nil
}

// Delete remove uma atribuição pelo ID.
func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando Delete de atribuição no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := database.Executor(ctx, r.DB).ExecContext(ctxTimeout, `DELETE FROM fulfillment_assignments WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar atribuição do DB.", err)
		return errors.NewDBError("Falha ao deletar atribuição", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após Delete.", err)
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return errors.NewResourceNotFoundError("fulfillment_assignment", fmt.Sprintf("Atribuição com ID %s não existe.", id))
	}

	r.logger.Info("Atribuição deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (r *AssignmentRepository) list(ctx context.Context, where string, args ...interface{}) ([]domain.FulfillmentAssignment, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + assignmentColumns + ` FROM fulfillment_assignments ` + where + ` ORDER BY created_at, id`

	rows, err := database.Executor(ctx, r.DB).QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao listar atribuições no DB.", err)
		return nil, errors.NewDBError("Falha ao listar atribuições", err)
	}
	defer rows.Close()

	out := []domain.FulfillmentAssignment{}
	for rows.Next() {
		var a domain.FulfillmentAssignment
		if err := rows.Scan(&a.ID, &a.WarehouseBusinessUnitCode, &a.ProductID, &a.StoreID, &a.CreatedAt); err != nil {
			r.logger.Error("Falha ao mapear atribuição.", err)
			return nil, errors.NewDBError("Falha ao mapear atribuições do DB", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Erro após iteração de atribuições", err)
	}
	return out, nil
}

func (r *AssignmentRepository) ListAll(ctx context.Context) ([]domain.FulfillmentAssignment, error) {
	return r.list(ctx, "")
}

func (r *AssignmentRepository) ListByStore(ctx context.Context, storeID string) ([]domain.FulfillmentAssignment, error) {
	return r.list(ctx, "WHERE store_id = $1", storeID)
}

func (r *AssignmentRepository) ListByWarehouse(ctx context.Context, code string) ([]domain.FulfillmentAssignment, error) {
	return r.list(ctx, "WHERE warehouse_business_unit_code = $1", code)
}

func (r *AssignmentRepository) ListByProduct(ctx context.Context, productID string) ([]domain.FulfillmentAssignment, error) {
	return r.list(ctx, "WHERE product_id = $1", productID)
}
