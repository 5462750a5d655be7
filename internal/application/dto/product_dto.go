package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	MinStockLevel decimal.Decimal  `json:"min_stock_level"`
	MaxStockLevel *decimal.Decimal `json:"max_stock_level,omitempty"`
	UnitMeasure   string           `json:"unit_measure,omitempty"`
	Barcode       string           `json:"barcode,omitempty"`
}

// ToEntity construye el producto con identidad nueva y costo inicial cero.
func (r CreateProductRequest) ToEntity() *entity.Product {
	now := time.Now()
	unit := r.UnitMeasure
	if unit == "" {
		unit = "unidad"
	}
	return &entity.Product{
		ID:            uuid.New().String(),
		SKU:           r.SKU,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Cost:          decimal.Zero,
		MinStockLevel: r.MinStockLevel,
		MaxStockLevel: r.MaxStockLevel,
		UnitMeasure:   unit,
		Barcode:       r.Barcode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ProductResponse representación pública del producto.
type ProductResponse struct {
	ID            string           `json:"id"`
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	Cost          decimal.Decimal  `json:"cost"`
	MinStockLevel decimal.Decimal  `json:"min_stock_level"`
	MaxStockLevel *decimal.Decimal `json:"max_stock_level,omitempty"`
	UnitMeasure   string           `json:"unit_measure"`
	Barcode       string           `json:"barcode,omitempty"`
}

// ToProductResponse mapea la entidad a su representación pública.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Cost:          p.Cost,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		UnitMeasure:   p.UnitMeasure,
		Barcode:       p.Barcode,
	}
}
