package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// AddStockRequest body para POST /api/inventory/stock/add.
type AddStockRequest struct {
	ProductID  string           `json:"product_id"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitCost   *decimal.Decimal `json:"unit_cost,omitempty"`
	SupplierID string           `json:"supplier_id,omitempty"`
	InvoiceKey string           `json:"invoice_key,omitempty"`
}

// RemoveStockRequest body para POST /api/inventory/stock/remove.
type RemoveStockRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	OrderID   string          `json:"order_id,omitempty"`
}

// ReturnStockRequest body para POST /api/inventory/stock/return.
type ReturnStockRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	OrderID   string          `json:"order_id,omitempty"`
}

// ReserveRequest body para POST /api/inventory/reservations.
type ReserveRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	OrderID   string          `json:"order_id"`
}

// ReleaseReservationRequest body para DELETE /api/inventory/reservations.
type ReleaseReservationRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// AdjustStockRequest body para POST /api/inventory/stock/adjust.
type AdjustStockRequest struct {
	ProductID   string          `json:"product_id"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
	Reason      string          `json:"reason"`
}

// RegisterLossRequest body para POST /api/inventory/stock/loss.
type RegisterLossRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
}

// InventoryRecordResponse estado de stock de un producto.
type InventoryRecordResponse struct {
	ProductID      string          `json:"product_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Reserved       decimal.Decimal `json:"reserved"`
	Available      decimal.Decimal `json:"available"`
	LastMovementAt *time.Time      `json:"last_movement_at,omitempty"`
}

// MovementResponse un movimiento del diario.
type MovementResponse struct {
	ID         string           `json:"id"`
	ProductID  string           `json:"product_id"`
	Type       string           `json:"type"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitCost   *decimal.Decimal `json:"unit_cost,omitempty"`
	TotalCost  *decimal.Decimal `json:"total_cost,omitempty"`
	OrderID    string           `json:"order_id,omitempty"`
	SupplierID string           `json:"supplier_id,omitempty"`
	InvoiceKey string           `json:"invoice_key,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	CreatedBy  string           `json:"created_by,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// ToMovementResponse mapea un movimiento del diario a su representación HTTP.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		UnitCost:   m.UnitCost,
		TotalCost:  m.TotalCost,
		OrderID:    m.OrderID,
		SupplierID: m.SupplierID,
		InvoiceKey: m.InvoiceKey,
		Notes:      m.Notes,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
	}
}

// AvailabilityResponse respuesta de GET availability.
type AvailabilityResponse struct {
	ProductID string          `json:"product_id"`
	Requested decimal.Decimal `json:"requested"`
	Available bool            `json:"available"`
}
