package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.InventoryRecordRepository = (*InventoryRecordRepo)(nil)

// InventoryRecordRepo implementación de InventoryRecordRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryRecordRepo struct {
	q Querier
}

// NewInventoryRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRecordRepository(q Querier) *InventoryRecordRepo {
	return &InventoryRecordRepo{q: q}
}

const recordColumns = "id, product_id, quantity, reserved, available, last_movement_at, created_at, updated_at"

// Get obtiene el registro de stock de un producto. Devuelve nil si el
// producto aún no tiene registro.
func (r *InventoryRecordRepo) Get(productID string) (*entity.InventoryRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM inventory_records WHERE product_id = $1`
	return r.scanOne(query, productID)
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE)
// dentro de la transacción en curso. Devuelve nil si no existe.
func (r *InventoryRecordRepo) GetForUpdate(productID string) (*entity.InventoryRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM inventory_records WHERE product_id = $1 FOR UPDATE`
	return r.scanOne(query, productID)
}

func (r *InventoryRecordRepo) scanOne(query, productID string) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&rec.ID, &rec.ProductID, &rec.Quantity, &rec.Reserved, &rec.Available,
		&rec.LastMovementAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get registro de inventario: %w", domain.ErrPersistence, err)
	}
	return &rec, nil
}

// Upsert inserta o reemplaza el registro completo, keyed por producto.
func (r *InventoryRecordRepo) Upsert(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records (id, product_id, quantity, reserved, available, last_movement_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, reserved = EXCLUDED.reserved,
			available = EXCLUDED.available, last_movement_at = EXCLUDED.last_movement_at,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ProductID, record.Quantity, record.Reserved, record.Available,
		record.LastMovementAt, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: upsert registro de inventario: %w", domain.ErrPersistence, err)
	}
	return nil
}

// List lista registros paginados, ordenados por producto.
func (r *InventoryRecordRepo) List(limit, offset int) ([]*entity.InventoryRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM inventory_records ORDER BY product_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: listar registros: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Quantity, &rec.Reserved, &rec.Available,
			&rec.LastMovementAt, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan registro: %w", domain.ErrPersistence, err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
