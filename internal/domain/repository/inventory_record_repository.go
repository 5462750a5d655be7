package repository

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// InventoryRecordRepository define el puerto de persistencia del registro de
// stock por producto. Get devuelve nil (sin error) cuando el producto aún no
// tiene registro; quién decide si la ausencia es un error es el caso de uso.
type InventoryRecordRepository interface {
	Get(productID string) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro
	// de la transacción en curso, serializando las mutaciones por producto.
	GetForUpdate(productID string) (*entity.InventoryRecord, error)
	// Upsert reemplaza el registro completo, keyed por producto.
	Upsert(record *entity.InventoryRecord) error
	List(limit, offset int) ([]*entity.InventoryRecord, error)
}
