package memory

import (
	"context"
	"sync"

	"gofulfill/internal/domain"
	"gofulfill/internal/pkg/database"
)

var _ domain.Transactor = (*Transactor)(nil)

type txKey struct{}

// Transactor serializa operações com chaves em comum usando um mutex por chave.
// Não há rollback: as operações dos serviços só escrevem depois de todas as verificações.
type Transactor struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTransactor() *Transactor {
	return &Transactor{locks: map[string]*sync.Mutex{}}
}

func (t *Transactor) lockFor(key string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	return l
}

// WithinTx adquire os mutexes das chaves em ordem e executa fn.
// Chamadas aninhadas executam fn diretamente.
func (t *Transactor) WithinTx(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	for _, key := range database.SortedKeys(keys) {
		l := t.lockFor(key)
		l.Lock()
		defer l.Unlock()
	}
	return fn(context.WithValue(ctx, txKey{}, true))
}
