package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner versión en memoria del runner transaccional. Un mutex global
// serializa las mutaciones (equivale al FOR UPDATE de PostgreSQL por
// producto, con grano más grueso); no hay rollback: el callback debe validar
// antes de escribir, que es como operan los casos de uso.
type TxRunner struct {
	mu          sync.Mutex
	MovRepo     *MovementRepo
	RecordRepo  *InventoryRecordRepo
	ProductRepo *ProductRepo
}

// NewTxRunner construye el runner con repos en memoria frescos.
func NewTxRunner() *TxRunner {
	return &TxRunner{
		MovRepo:     NewMovementRepository(),
		RecordRepo:  NewInventoryRecordRepository(),
		ProductRepo: NewProductRepository(),
	}
}

func (r *TxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	recordRepo repository.InventoryRecordRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.MovRepo, r.RecordRepo, r.ProductRepo)
}
