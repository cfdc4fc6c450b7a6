package warehouserepo

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

// WarehouseRepository implementa warehouseservice.WarehouseRepository sobre PostgreSQL.
// Todas as versões de um armazém ficam na tabela; "ativo" significa archived_at IS NULL.
type WarehouseRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewWarehouseRepository cria e retorna uma nova instância do Repositório de Armazéns.
func NewWarehouseRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *WarehouseRepository {
	return &WarehouseRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const warehouseColumns = `id, business_unit_code, location, capacity, stock, created_at, archived_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWarehouse(row rowScanner) (domain.Warehouse, error) {
	var w domain.Warehouse
	var archivedAt sql.NullTime
	if err := row.Scan(&w.ID, &w.BusinessUnitCode, &w.Location, &w.Capacity, &w.Stock, &w.CreatedAt, &archivedAt); err != nil {
		return domain.Warehouse{}, err
	}
	if archivedAt.Valid {
		at := archivedAt.Time
		w.ArchivedAt = &at
	}
	return w, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// GetAllActive busca todos os armazéns ativos.
func (r *WarehouseRepository) GetAllActive(ctx context.Context) ([]domain.Warehouse, error) {
	r.logger.Debug("Iniciando GetAllActive no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT ` + warehouseColumns + `
        FROM warehouses
        WHERE archived_at IS NULL
        ORDER BY created_at, business_unit_code`

	rows, err := database.Executor(ctx, r.DB).QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar GetAllActive query.", err)
		return nil, errors.NewDBError("Falha ao buscar armazéns ativos", err)
	}
	defer rows.Close()

	warehouses := []domain.Warehouse{}
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear armazém na iteração de GetAllActive.", err)
			return nil, errors.NewDBError("Falha ao mapear armazéns do DB", err)
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de armazéns.", err)
		return nil, errors.NewDBError("Erro após iteração de armazéns", err)
	}

	r.logger.Debug("GetAllActive concluído com sucesso.", map[string]interface{}{"total_warehouses": len(warehouses)})
	return warehouses, nil
}

// Create insere uma nova versão de armazém.
func (r *WarehouseRepository) Create(ctx context.Context, warehouse domain.Warehouse) (domain.Warehouse, error) {
	r.logger.Debug("Iniciando Create no repositório.", map[string]interface{}{"business_unit_code": warehouse.BusinessUnitCode})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if warehouse.ID == "" {
		warehouse.ID = uuid.New().String()
	}
	if warehouse.CreatedAt.IsZero() {
		warehouse.CreatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO warehouses (` + warehouseColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + warehouseColumns

	created, err := scanWarehouse(database.Executor(ctx, r.DB).QueryRowContext(ctxTimeout, query,
		warehouse.ID, warehouse.BusinessUnitCode, warehouse.Location, warehouse.Capacity,
		warehouse.Stock, warehouse.CreatedAt, nullTime(warehouse.ArchivedAt),
	))
	if database.IsUniqueViolation(err) {
		r.logger.Info("Código de armazém ativo duplicado.", map[string]interface{}{"business_unit_code": warehouse.BusinessUnitCode})
		return domain.Warehouse{}, errors.NewConflictError(fmt.Sprintf("Já existe um armazém ativo com o código %s.", warehouse.BusinessUnitCode))
	}
	if err != nil {
		r.logger.Error("Falha ao inserir armazém no DB.", err)
		return domain.Warehouse{}, errors.NewDBError("Falha ao criar armazém", err)
	}

	r.logger.Info("Armazém inserido com sucesso.", map[string]interface{}{"id": created.ID, "business_unit_code": created.BusinessUnitCode})
	return created, nil
}

// Update grava sobre a versão ativa do código informado (inclusive o arquivamento).
func (r *WarehouseRepository) Update(ctx context.Context, warehouse domain.Warehouse) (domain.Warehouse, error) {
	r.logger.Debug("Iniciando Update no repositório.", map[string]interface{}{"business_unit_code": warehouse.BusinessUnitCode})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE warehouses
        SET location = $2, capacity = $3, stock = $4, archived_at = $5
        WHERE business_unit_code = $1 AND archived_at IS NULL
        RETURNING ` + warehouseColumns

	updated, err := scanWarehouse(database.Executor(ctx, r.DB).QueryRowContext(ctxTimeout, query,
		warehouse.BusinessUnitCode, warehouse.Location, warehouse.Capacity, warehouse.Stock, nullTime(warehouse.ArchivedAt),
	))
	if err == sql.ErrNoRows {
		r.logger.Info("Armazém ativo não encontrado para atualização.", map[string]interface{}{"business_unit_code": warehouse.BusinessUnitCode})
		return domain.Warehouse{}, errors.NewResourceNotFoundError("warehouse", fmt.Sprintf("Armazém ativo com código %s não encontrado para atualização.", warehouse.BusinessUnitCode))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar armazém no DB.", err)
		return domain.Warehouse{}, errors.NewDBError("Falha ao atualizar armazém", err)
	}

	r.logger.Info("Armazém atualizado com sucesso.", map[string]interface{}{"id": updated.ID, "business_unit_code": updated.BusinessUnitCode})
	return updated, nil
}

// FindActiveByCode busca a versão ativa pelo código da unidade de negócio.
func (r *WarehouseRepository) FindActiveByCode(ctx context.Context, code string) (domain.Warehouse, error) {
	r.logger.Debug("Iniciando FindActiveByCode no repositório.", map[string]interface{}{"business_unit_code": code})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT ` + warehouseColumns + `
        FROM warehouses
        WHERE business_unit_code = $1 AND archived_at IS NULL`

	w, err := scanWarehouse(database.Executor(ctx, r.DB).QueryRowContext(ctxTimeout, query, code))
	if err == sql.ErrNoRows {
		return domain.Warehouse{}, errors.NewResourceNotFoundError("warehouse", fmt.Sprintf("Armazém ativo com código %s não existe.", code))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar armazém por código no DB.", err)
		return domain.Warehouse{}, errors.NewDBError("Falha ao buscar armazém", err)
	}
	return w, nil
}

// FindActiveByID busca a versão ativa pelo ID. IDs que não são UUID não existem.
func (r *WarehouseRepository) FindActiveByID(ctx context.Context, id string) (domain.Warehouse, error) {
	r.logger.Debug("Iniciando FindActiveByID no repositório.", map[string]interface{}{"id": id})

	notFound := errors.NewResourceNotFoundError("warehouse", fmt.Sprintf("Armazém ativo com ID %s não existe.", id))
	if _, err := uuid.Parse(id); err != nil {
		return domain.Warehouse{}, notFound
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT ` + warehouseColumns + `
        FROM warehouses
        WHERE id = $1 AND archived_at IS NULL`

	w, err := scanWarehouse(database.Executor(ctx, r.DB).QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		return domain.Warehouse{}, notFound
	}
	if err != nil {
		r.logger.Error("Falha ao buscar armazém por ID no DB.", err)
		return domain.Warehouse{}, errors.NewDBError("Falha ao buscar armazém", err)
	}
	return w, nil
}
