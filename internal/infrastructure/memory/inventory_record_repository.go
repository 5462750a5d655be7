// Package memory implementa los puertos de repositorio en memoria. Se usa en
// tests y como backend efímero cuando no hay base de datos configurada.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.InventoryRecordRepository = (*InventoryRecordRepo)(nil)

// InventoryRecordRepo registros de stock en memoria, keyed por producto.
type InventoryRecordRepo struct {
	mu      sync.RWMutex
	records map[string]entity.InventoryRecord // product_id -> copia del registro
}

func NewInventoryRecordRepository() *InventoryRecordRepo {
	return &InventoryRecordRepo{records: make(map[string]entity.InventoryRecord)}
}

func (r *InventoryRecordRepo) Get(productID string) (*entity.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[productID]
	if !ok {
		return nil, nil
	}
	copia := rec
	return &copia, nil
}

// GetForUpdate en memoria equivale a Get: la exclusión por producto la da el
// TxRunner de este paquete, no el repositorio.
func (r *InventoryRecordRepo) GetForUpdate(productID string) (*entity.InventoryRecord, error) {
	return r.Get(productID)
}

func (r *InventoryRecordRepo) Upsert(record *entity.InventoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ProductID] = *record
	return nil
}

func (r *InventoryRecordRepo) List(limit, offset int) ([]*entity.InventoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var list []*entity.InventoryRecord
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(list) >= limit {
			break
		}
		rec := r.records[id]
		list = append(list, &rec)
	}
	return list, nil
}
