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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo lectura del catálogo de proveedores y sus ofertas.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// GetByID devuelve nil si el proveedor no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, name, trade_name, email, phone, is_active, is_preferred, rating, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	var tradeName, email, phone *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &tradeName, &email, &phone,
		&s.IsActive, &s.IsPreferred, &s.Rating, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get proveedor: %w", domain.ErrPersistence, err)
	}
	s.TradeName = deref(tradeName)
	s.Email = deref(email)
	s.Phone = deref(phone)
	return &s, nil
}

// ListOffersByProduct une proveedores activos con sus ofertas vigentes del
// producto. Las ofertas se leen siempre frescas, sin caché.
func (r *SupplierRepo) ListOffersByProduct(productID string) ([]repository.SupplierWithOffer, error) {
	query := `
		SELECT s.id, s.name, s.trade_name, s.email, s.phone, s.is_active, s.is_preferred, s.rating, s.created_at, s.updated_at,
			o.supplier_id, o.product_id, o.unit_price, o.min_order_qty, o.lead_time_days, o.is_available
		FROM supplier_offers o
		JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.product_id = $1 AND s.is_active = true
		ORDER BY s.name`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: listar ofertas: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()
	var list []repository.SupplierWithOffer
	for rows.Next() {
		var so repository.SupplierWithOffer
		var tradeName, email, phone *string
		if err := rows.Scan(
			&so.Supplier.ID, &so.Supplier.Name, &tradeName, &email, &phone,
			&so.Supplier.IsActive, &so.Supplier.IsPreferred, &so.Supplier.Rating,
			&so.Supplier.CreatedAt, &so.Supplier.UpdatedAt,
			&so.Offer.SupplierID, &so.Offer.ProductID, &so.Offer.UnitPrice,
			&so.Offer.MinOrderQty, &so.Offer.LeadTimeDays, &so.Offer.IsAvailable,
		); err != nil {
			return nil, fmt.Errorf("%w: scan oferta: %w", domain.ErrPersistence, err)
		}
		so.Supplier.TradeName = deref(tradeName)
		so.Supplier.Email = deref(email)
		so.Supplier.Phone = deref(phone)
		list = append(list, so)
	}
	return list, rows.Err()
}
