package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del catálogo. El catálogo es dato
// de entrada para el ledger: nombre, niveles mínimo/máximo e identidad se
// suministran, no se calculan aquí. Cost es promedio ponderado actualizado
// con cada entrada.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Description   string
	Price         decimal.Decimal  // precio de venta
	Cost          decimal.Decimal  // costo promedio ponderado (inicia en 0)
	MinStockLevel decimal.Decimal  // nivel mínimo para alertas/reposición
	MaxStockLevel *decimal.Decimal // nivel objetivo opcional
	UnitMeasure   string
	Barcode       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
