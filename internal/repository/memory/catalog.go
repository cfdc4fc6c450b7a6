package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gofulfill/internal/domain"
	apperror "gofulfill/internal/errors"
)

// ProductCatalog responde apenas à verificação de existência de produtos.
type ProductCatalog struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

func NewProductCatalog(products ...domain.Product) *ProductCatalog {
	c := &ProductCatalog{products: map[string]domain.Product{}}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *ProductCatalog) Exists(_ context.Context, id string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.products[id]
	return ok, nil
}

func (c *ProductCatalog) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Product{}, apperror.NewFieldError("name", "O nome do produto é obrigatório.")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, ok := c.products[p.ID]; ok {
		return domain.Product{}, apperror.NewConflictError("Produto " + p.ID + " já existe.")
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	c.products[p.ID] = p
	return p, nil
}

// StoreDirectory responde apenas à verificação de existência de lojas.
type StoreDirectory struct {
	mu     sync.RWMutex
	stores map[string]domain.Store
}

func NewStoreDirectory(stores ...domain.Store) *StoreDirectory {
	d := &StoreDirectory{stores: map[string]domain.Store{}}
	for _, s := range stores {
		d.stores[s.ID] = s
	}
	return d
}

func (d *StoreDirectory) Exists(_ context.Context, id string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.stores[id]
	return ok, nil
}

func (d *StoreDirectory) Create(_ context.Context, s domain.Store) (domain.Store, error) {
	if strings.TrimSpace(s.Name) == "" {
		return domain.Store{}, apperror.NewFieldError("name", "O nome da loja é obrigatório.")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if _, ok := d.stores[s.ID]; ok {
		return domain.Store{}, apperror.NewConflictError("Loja " + s.ID + " já existe.")
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	d.stores[s.ID] = s
	return s, nil
}
