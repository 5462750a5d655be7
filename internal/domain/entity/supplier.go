package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor del catálogo. Dato de solo lectura para el
// motor de reposición.
type Supplier struct {
	ID          string
	Name        string
	TradeName   string
	Email       string
	Phone       string
	IsActive    bool
	IsPreferred bool
	Rating      *float64 // calificación de calidad opcional (0-5)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SupplierOffer es la oferta de un proveedor para un producto: precio,
// cantidad mínima de pedido y tiempo de entrega. Entrada del ranking de
// cotizaciones, nunca se cachea.
type SupplierOffer struct {
	SupplierID   string
	ProductID    string
	UnitPrice    decimal.Decimal
	MinOrderQty  decimal.Decimal
	LeadTimeDays int
	IsAvailable  bool
}
