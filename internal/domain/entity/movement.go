package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypePURCHASE   = "PURCHASE"   // compra / entrada por factura
	MovementTypeSALE       = "SALE"       // venta
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual
	MovementTypeLOSS       = "LOSS"       // pérdida / merma
	MovementTypeRETURN     = "RETURN"     // devolución de cliente
	MovementTypeTRANSFER   = "TRANSFER"   // traslado
)

// Movement es un registro inmutable del diario de movimientos: describe un
// cambio físico de stock y su causa. La cantidad siempre es la magnitud
// absoluta movida; el tipo indica la dirección. El diario es append-only y
// debe bastar para reconstruir el saldo por replay.
type Movement struct {
	ID         string
	ProductID  string
	Type       string
	Quantity   decimal.Decimal  // magnitud absoluta
	UnitCost   *decimal.Decimal // opcional, conocido en compras
	TotalCost  *decimal.Decimal // UnitCost * Quantity cuando hay costo
	OrderID    string           // referencia de pedido (ventas, reservas consumidas)
	SupplierID string           // proveniencia de compra
	InvoiceKey string           // clave de acceso de la factura de proveedor
	Notes      string
	CreatedBy  string // usuario que ejecutó la operación
	CreatedAt  time.Time
}

// NewMovement construye un movimiento del tipo y magnitud indicados.
func NewMovement(productID, movementType string, quantity decimal.Decimal) *Movement {
	return &Movement{
		ID:        uuid.New().String(),
		ProductID: productID,
		Type:      movementType,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
}

// WithCost registra el costo unitario y calcula el costo total.
func (m *Movement) WithCost(unitCost decimal.Decimal) *Movement {
	total := unitCost.Mul(m.Quantity)
	m.UnitCost = &unitCost
	m.TotalCost = &total
	return m
}

// WithInvoiceKey registra la clave de la factura de proveedor que originó la entrada.
func (m *Movement) WithInvoiceKey(key string) *Movement {
	m.InvoiceKey = key
	return m
}
