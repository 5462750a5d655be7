package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persistencia del journal de movimientos. El journal es
// append-only: nunca se actualiza ni borra una fila.
type MovementRepo struct {
	q Querier
}

func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = "id, product_id, movement_type, quantity, unit_cost, total_cost, order_id, supplier_id, invoice_key, notes, created_by, created_at"

// Append inserta un movimiento en el journal.
func (r *MovementRepo) Append(m *entity.Movement) error {
	query := `
		INSERT INTO inventory_movements (id, product_id, movement_type, quantity, unit_cost, total_cost, order_id, supplier_id, invoice_key, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.UnitCost, m.TotalCost,
		nullIfEmpty(m.OrderID), nullIfEmpty(m.SupplierID), nullIfEmpty(m.InvoiceKey),
		nullIfEmpty(m.Notes), nullIfEmpty(m.CreatedBy), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insertar movimiento: %w", domain.ErrPersistence, err)
	}
	return nil
}

// GetByID obtiene un movimiento puntual. Devuelve nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get movimiento: %w", domain.ErrPersistence, err)
	}
	return m, nil
}

// ListByProduct historial de movimientos de un producto, más reciente
// primero, con filtro opcional por rango de fechas.
func (r *MovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE product_id = $1`
	args := []interface{}{productID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listar movimientos: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan movimiento: %w", domain.ErrPersistence, err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovement(row rowScanner) (*entity.Movement, error) {
	var m entity.Movement
	var orderID, supplierID, invoiceKey, notes, createdBy *string
	err := row.Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.UnitCost, &m.TotalCost,
		&orderID, &supplierID, &invoiceKey, &notes, &createdBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.OrderID = deref(orderID)
	m.SupplierID = deref(supplierID)
	m.InvoiceKey = deref(invoiceKey)
	m.Notes = deref(notes)
	m.CreatedBy = deref(createdBy)
	return &m, nil
}
