package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// InventoryRecord es el estado autoritativo de stock de un producto:
// cantidad física, cantidad reservada y disponible derivado.
// Available se recalcula siempre a partir de Quantity y Reserved, nunca se
// asigna por separado.
type InventoryRecord struct {
	ID             string
	ProductID      string
	Quantity       decimal.Decimal // unidades físicas en bodega
	Reserved       decimal.Decimal // unidades comprometidas en pedidos abiertos
	Available      decimal.Decimal // Quantity - Reserved
	LastMovementAt *time.Time      // nil hasta el primer movimiento
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewInventoryRecord crea el registro de un producto con stock cero.
// Se crea de forma perezosa en la primera operación que afecte stock.
func NewInventoryRecord(productID string) *InventoryRecord {
	now := time.Now()
	return &InventoryRecord{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  decimal.Zero,
		Reserved:  decimal.Zero,
		Available: decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add suma unidades físicas al stock.
func (r *InventoryRecord) Add(quantity decimal.Decimal) {
	r.Quantity = r.Quantity.Add(quantity)
	r.recalculateAvailable()
	r.stampMovement()
}

// Remove resta unidades físicas. Falla con ErrInsufficientStock si el
// disponible (no el total) es menor a lo solicitado; no hay cumplimiento
// parcial ni recorte silencioso.
func (r *InventoryRecord) Remove(quantity decimal.Decimal) error {
	if r.Available.LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	r.Quantity = r.Quantity.Sub(quantity)
	r.recalculateAvailable()
	r.stampMovement()
	return nil
}

// Reserve compromete unidades para un pedido. Usa el mismo umbral de
// disponibilidad que Remove: ambas operaciones se validan contra Available.
func (r *InventoryRecord) Reserve(quantity decimal.Decimal) error {
	if r.Available.LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	r.Reserved = r.Reserved.Add(quantity)
	r.recalculateAvailable()
	r.UpdatedAt = time.Now()
	return nil
}

// ReleaseReservation libera una reserva. Nunca falla: el piso es cero para
// que una doble liberación o la carrera contra un consumo previo sean inocuas.
func (r *InventoryRecord) ReleaseReservation(quantity decimal.Decimal) {
	r.Reserved = r.Reserved.Sub(quantity)
	if r.Reserved.LessThan(decimal.Zero) {
		r.Reserved = decimal.Zero
	}
	r.recalculateAvailable()
	r.UpdatedAt = time.Now()
}

// SetQuantity fija la cantidad física en un ajuste manual y devuelve la
// magnitud del cambio (|nueva - anterior|).
func (r *InventoryRecord) SetQuantity(newQuantity decimal.Decimal) decimal.Decimal {
	diff := newQuantity.Sub(r.Quantity).Abs()
	r.Quantity = newQuantity
	r.recalculateAvailable()
	r.stampMovement()
	return diff
}

func (r *InventoryRecord) recalculateAvailable() {
	r.Available = r.Quantity.Sub(r.Reserved)
}

func (r *InventoryRecord) stampMovement() {
	now := time.Now()
	r.LastMovementAt = &now
	r.UpdatedAt = now
}
