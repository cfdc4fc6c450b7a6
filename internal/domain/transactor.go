package domain

import "context"

// Transactor executa fn como uma unidade atômica. As chaves identificam as dimensões
// (loja, armazém, localização) cujas contagens fn lê e altera; operações com chaves em
// comum são serializadas.
type Transactor interface {
	WithinTx(ctx context.Context, keys []string, fn func(ctx context.Context) error) error
}

// Chaves de lock usadas pelos motores de ciclo de vida e de admissão.
func LocationLockKey(location string) string { return "location:" + location }
func WarehouseLockKey(code string) string { return "warehouse:" + code }
func WarehouseIDLockKey(id string) string { return "warehouse-id:" + id }
func StoreLockKey(storeID string) string { return "store:" + storeID }
func AssignmentLockKey(id string) string { return "assignment:" + id }
