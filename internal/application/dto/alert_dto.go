package dto

import (
	"time"

	"github.com/shopspring/decimal"

	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
)

// StockAlertDTO representación HTTP de una alerta de stock.
type StockAlertDTO struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id"`
	ProductName      string           `json:"product_name"`
	Level            string           `json:"level"`
	CurrentQuantity  decimal.Decimal  `json:"current_quantity"`
	MinStockLevel    decimal.Decimal  `json:"min_stock_level"`
	SuggestedOrder   decimal.Decimal  `json:"suggested_order_quantity"`
	BestSupplierID   string           `json:"best_supplier_id,omitempty"`
	BestSupplierName string           `json:"best_supplier_name,omitempty"`
	BestPrice        *decimal.Decimal `json:"best_price,omitempty"`
	Message          string           `json:"message"`
	CreatedAt        time.Time        `json:"created_at"`
	Acknowledged     bool             `json:"acknowledged"`
}

// ToStockAlertDTO mapea la alerta de dominio a su representación HTTP.
func ToStockAlertDTO(a *domaininv.StockAlert) StockAlertDTO {
	return StockAlertDTO{
		ID:               a.ID,
		ProductID:        a.ProductID,
		ProductName:      a.ProductName,
		Level:            string(a.Level),
		CurrentQuantity:  a.CurrentQuantity,
		MinStockLevel:    a.MinStockLevel,
		SuggestedOrder:   a.SuggestedOrder,
		BestSupplierID:   a.BestSupplierID,
		BestSupplierName: a.BestSupplierName,
		BestPrice:        a.BestPrice,
		Message:          a.Message,
		CreatedAt:        a.CreatedAt,
		Acknowledged:     a.Acknowledged,
	}
}

// ToStockAlertDTOs mapea una lista de alertas.
func ToStockAlertDTOs(alerts []*domaininv.StockAlert) []StockAlertDTO {
	out := make([]StockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, ToStockAlertDTO(a))
	}
	return out
}

// SupplierQuoteDTO cotización de proveedor dentro de una sugerencia.
type SupplierQuoteDTO struct {
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	MinOrderQty  decimal.Decimal `json:"min_order_quantity"`
	LeadTimeDays int             `json:"lead_time_days"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	IsPreferred  bool            `json:"is_preferred"`
	Rating       *float64        `json:"rating,omitempty"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto.
type ReplenishmentSuggestionDTO struct {
	ProductID         string             `json:"product_id"`
	ProductName       string             `json:"product_name"`
	CurrentStock      decimal.Decimal    `json:"current_stock"`
	MinStockLevel     decimal.Decimal    `json:"min_stock_level"`
	SuggestedOrderQty decimal.Decimal    `json:"suggested_order_qty"`
	Quotes            []SupplierQuoteDTO `json:"quotes"`
	BestQuote         *SupplierQuoteDTO  `json:"best_quote,omitempty"`
	UrgencyScore      float64            `json:"urgency_score"`
}

// ToReplenishmentSuggestionDTO mapea la sugerencia de dominio.
func ToReplenishmentSuggestionDTO(s *domaininv.ReplenishmentSuggestion) ReplenishmentSuggestionDTO {
	quotes := make([]SupplierQuoteDTO, 0, len(s.Quotes))
	for _, q := range s.Quotes {
		quotes = append(quotes, toQuoteDTO(q))
	}
	dto := ReplenishmentSuggestionDTO{
		ProductID:         s.ProductID,
		ProductName:       s.ProductName,
		CurrentStock:      s.CurrentStock,
		MinStockLevel:     s.MinStockLevel,
		SuggestedOrderQty: s.SuggestedOrderQty,
		Quotes:            quotes,
		UrgencyScore:      s.UrgencyScore,
	}
	if s.BestQuote != nil {
		best := toQuoteDTO(*s.BestQuote)
		dto.BestQuote = &best
	}
	return dto
}

func toQuoteDTO(q domaininv.SupplierQuote) SupplierQuoteDTO {
	return SupplierQuoteDTO{
		SupplierID:   q.SupplierID,
		SupplierName: q.SupplierName,
		UnitPrice:    q.UnitPrice,
		MinOrderQty:  q.MinOrderQty,
		LeadTimeDays: q.LeadTimeDays,
		TotalCost:    q.TotalCost,
		IsPreferred:  q.IsPreferred,
		Rating:       q.Rating,
	}
}
