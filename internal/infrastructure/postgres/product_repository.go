package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

type ProductRepo struct {
	q Querier
}

func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = "id, sku, barcode, name, description, unit_measure, price, cost, min_stock_level, max_stock_level, created_at, updated_at"

// Create inserta un producto. SKU duplicado devuelve ErrDuplicate.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, barcode, name, description, unit_measure, price, cost, min_stock_level, max_stock_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, nullIfEmpty(p.Barcode), p.Name, nullIfEmpty(p.Description),
		p.UnitMeasure, p.Price, p.Cost, p.MinStockLevel, p.MaxStockLevel,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sku %s", domain.ErrDuplicate, p.SKU)
		}
		return fmt.Errorf("%w: crear producto: %w", domain.ErrPersistence, err)
	}
	return nil
}

// GetByID devuelve nil si el producto no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetBySKU devuelve nil si no hay producto con ese SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(query, sku)
}

func (r *ProductRepo) scanOne(query string, arg interface{}) (*entity.Product, error) {
	var p entity.Product
	var barcode, description *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &barcode, &p.Name, &description, &p.UnitMeasure,
		&p.Price, &p.Cost, &p.MinStockLevel, &p.MaxStockLevel,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get producto: %w", domain.ErrPersistence, err)
	}
	p.Barcode = deref(barcode)
	p.Description = deref(description)
	return &p, nil
}

// UpdateCost actualiza el costo promedio ponderado del producto.
func (r *ProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	query := `UPDATE products SET cost = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, productID, cost)
	if err != nil {
		return fmt.Errorf("%w: actualizar costo: %w", domain.ErrPersistence, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	return nil
}

// List lista productos paginados por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: listar productos: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var barcode, description *string
		if err := rows.Scan(&p.ID, &p.SKU, &barcode, &p.Name, &description,
			&p.UnitMeasure, &p.Price, &p.Cost, &p.MinStockLevel, &p.MaxStockLevel,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan producto: %w", domain.ErrPersistence, err)
		}
		p.Barcode = deref(barcode)
		p.Description = deref(description)
		list = append(list, &p)
	}
	return list, rows.Err()
}
