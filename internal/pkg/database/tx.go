package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	apperror "gofulfill/internal/errors"
	"gofulfill/internal/pkg/logger"
)

// DBTX é o subconjunto comum de *sql.DB e *sql.Tx usado pelos repositórios.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// Executor devolve a transação em andamento no contexto, ou o pool quando não houver.
// Assim o mesmo repositório serve leituras avulsas e operações atômicas.
func Executor(ctx context.Context, db *sql.DB) DBTX {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

// SortedKeys remove chaves vazias ou repetidas e ordena o restante.
// Adquirir locks sempre na mesma ordem evita deadlock entre operações concorrentes.
func SortedKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// PostgresTransactor executa cada operação mutável numa transação única, serializando
// operações concorrentes que tocam as mesmas dimensões (loja, armazém, localização)
// através de pg_advisory_xact_lock. Os locks são liberados no commit ou rollback.
type PostgresTransactor struct {
	DB        *sql.DB
	TxTimeout time.Duration
	logger    logger.Logger
}

// NewPostgresTransactor cria o Transactor baseado em PostgreSQL.
func NewPostgresTransactor(db *sql.DB, txTimeout time.Duration, log logger.Logger) *PostgresTransactor {
	return &PostgresTransactor{DB: db, TxTimeout: txTimeout, logger: log}
}

const advisoryLockSQL = `SELECT pg_advisory_xact_lock(hashtext($1))`

// WithinTx abre a transação, adquire os locks das chaves informadas e executa fn.
// Chamadas aninhadas reutilizam a transação externa.
func (t *PostgresTransactor) WithinTx(ctx context.Context, keys []string, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, t.TxTimeout)
	defer cancel()

	tx, err := t.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return apperror.NewDBError("Falha ao iniciar transação", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				t.logger.Error("Falha ao executar rollback.", rbErr)
			}
		}
	}()

	locked := SortedKeys(keys)
	for _, key := range locked {
		if _, err = tx.ExecContext(ctx, advisoryLockSQL, key); err != nil {
			return apperror.NewDBError(fmt.Sprintf("Falha ao adquirir lock %q", key), err)
		}
	}
	t.logger.Debug("Locks adquiridos.", map[string]interface{}{"keys": locked})

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return apperror.NewDBError("Falha ao confirmar transação", err)
	}
	return nil
}
