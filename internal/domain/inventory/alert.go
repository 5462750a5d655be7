package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/pkg/money"
)

// AlertLevel clasifica la severidad de una alerta de stock.
type AlertLevel string

const (
	AlertLevelCritical AlertLevel = "CRITICAL" // stock en cero o negativo
	AlertLevelHigh     AlertLevel = "HIGH"     // por debajo del mínimo
	AlertLevelMedium   AlertLevel = "MEDIUM"   // cerca del mínimo (hasta 120%)
	AlertLevelLow      AlertLevel = "LOW"      // informativo
)

// DetermineAlertLevel clasifica el stock actual contra el nivel mínimo.
func DetermineAlertLevel(current, minLevel decimal.Decimal) AlertLevel {
	switch {
	case current.LessThanOrEqual(decimal.Zero):
		return AlertLevelCritical
	case current.LessThan(minLevel):
		return AlertLevelHigh
	case current.LessThanOrEqual(minLevel.Mul(decimal.NewFromFloat(1.2))):
		return AlertLevelMedium
	default:
		return AlertLevelLow
	}
}

// StockAlert es una alerta derivada del estado actual del inventario. No es
// fuente de verdad: se puede reconstruir desde el ledger en cualquier momento.
type StockAlert struct {
	ID               string
	ProductID        string
	ProductName      string
	Level            AlertLevel
	CurrentQuantity  decimal.Decimal
	MinStockLevel    decimal.Decimal
	SuggestedOrder   decimal.Decimal
	BestSupplierID   string
	BestSupplierName string
	BestPrice        *decimal.Decimal
	Message          string
	CreatedAt        time.Time
	Acknowledged     bool
}

// NewStockAlert construye la alerta: clasifica el nivel, genera el mensaje y
// calcula la cantidad sugerida de pedido.
func NewStockAlert(productID, productName string, current, minLevel decimal.Decimal) *StockAlert {
	level := DetermineAlertLevel(current, minLevel)
	return &StockAlert{
		ID:              uuid.New().String(),
		ProductID:       productID,
		ProductName:     productName,
		Level:           level,
		CurrentQuantity: current,
		MinStockLevel:   minLevel,
		SuggestedOrder:  alertOrderQuantity(current, minLevel),
		Message:         alertMessage(productName, current, minLevel, level),
		CreatedAt:       time.Now(),
	}
}

// alertMessage genera una frase por nivel de severidad.
func alertMessage(productName string, current, minLevel decimal.Decimal, level AlertLevel) string {
	switch level {
	case AlertLevelCritical:
		return fmt.Sprintf("CRÍTICO: %s está agotado en bodega", productName)
	case AlertLevelHigh:
		return fmt.Sprintf("URGENTE: %s tiene %s unidades (mínimo: %s)", productName, current, minLevel)
	case AlertLevelMedium:
		return fmt.Sprintf("ATENCIÓN: %s está cerca del mínimo (%s/%s)", productName, current, minLevel)
	default:
		return fmt.Sprintf("INFO: %s está en nivel adecuado (%s)", productName, current)
	}
}

// alertOrderQuantity sugiere pedir hasta 3 veces el mínimo.
func alertOrderQuantity(current, minLevel decimal.Decimal) decimal.Decimal {
	qty := minLevel.Mul(decimal.NewFromInt(3)).Sub(current)
	if qty.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return qty
}

// AddSupplierInfo anota el mejor proveedor y agrega una segunda frase al
// mensaje. Es la única mutación permitida sobre una alerta ya construida,
// además de Acknowledge.
func (a *StockAlert) AddSupplierInfo(supplierID, supplierName string, price decimal.Decimal) {
	a.BestSupplierID = supplierID
	a.BestSupplierName = supplierName
	a.BestPrice = &price
	a.Message += fmt.Sprintf(" Mejor proveedor: %s - %s", supplierName, money.BRL(price).Formatted())
}

// Acknowledge marca la alerta como atendida. Irreversible.
func (a *StockAlert) Acknowledge() {
	a.Acknowledged = true
}
