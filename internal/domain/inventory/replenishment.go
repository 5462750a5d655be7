package inventory

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// SupplierQuote es una cotización efímera calculada para una sugerencia de
// reposición. Se recalcula en cada sugerencia, nunca se persiste como verdad
// del ledger.
type SupplierQuote struct {
	SupplierID   string
	SupplierName string
	UnitPrice    decimal.Decimal
	MinOrderQty  decimal.Decimal
	LeadTimeDays int
	TotalCost    decimal.Decimal
	IsPreferred  bool
	Rating       *float64
}

// ReplenishmentSuggestion agrupa la cantidad sugerida de pedido, las
// cotizaciones candidatas, la mejor cotización y la urgencia del faltante.
type ReplenishmentSuggestion struct {
	ProductID         string
	ProductName       string
	CurrentStock      decimal.Decimal
	MinStockLevel     decimal.Decimal
	SuggestedOrderQty decimal.Decimal
	Quotes            []SupplierQuote
	BestQuote         *SupplierQuote
	UrgencyScore      float64
}

// NewSuggestion construye la sugerencia base (sin cotizaciones) para un
// producto con el stock actual dado.
func NewSuggestion(product *entity.Product, currentStock decimal.Decimal) *ReplenishmentSuggestion {
	return &ReplenishmentSuggestion{
		ProductID:         product.ID,
		ProductName:       product.Name,
		CurrentStock:      currentStock,
		MinStockLevel:     product.MinStockLevel,
		SuggestedOrderQty: CalculateOrderQuantity(currentStock, product.MinStockLevel, product.MaxStockLevel),
		UrgencyScore:      CalculateUrgency(currentStock, product.MinStockLevel),
	}
}

// AddQuote agrega una cotización y recalcula la mejor. Con pocos proveedores
// por producto el re-sort completo es suficiente.
func (s *ReplenishmentSuggestion) AddQuote(quote SupplierQuote) {
	s.Quotes = append(s.Quotes, quote)
	s.updateBestQuote()
}

// updateBestQuote ordena por: preferido > menor costo total > mejor rating
// (rating ausente después de cualquier rating presente). Orden total y
// determinista; la cabeza es la mejor cotización.
func (s *ReplenishmentSuggestion) updateBestQuote() {
	if len(s.Quotes) == 0 {
		s.BestQuote = nil
		return
	}
	sorted := make([]SupplierQuote, len(s.Quotes))
	copy(sorted, s.Quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsPreferred != b.IsPreferred {
			return a.IsPreferred
		}
		if !a.TotalCost.Equal(b.TotalCost) {
			return a.TotalCost.LessThan(b.TotalCost)
		}
		switch {
		case a.Rating != nil && b.Rating != nil:
			return *a.Rating > *b.Rating
		case a.Rating != nil:
			return true
		default:
			return false
		}
	})
	best := sorted[0]
	s.BestQuote = &best
}

// CalculateOrderQuantity calcula la cantidad sugerida de pedido:
// max(objetivo - actual, mínimo * 2), con objetivo = máximo si está definido
// o mínimo * 5. El piso de 2x el mínimo evita que un pedido pequeño dispare
// otro faltante de inmediato.
func CalculateOrderQuantity(current, minLevel decimal.Decimal, maxLevel *decimal.Decimal) decimal.Decimal {
	target := minLevel.Mul(decimal.NewFromInt(5))
	if maxLevel != nil {
		target = *maxLevel
	}
	qty := target.Sub(current)
	floor := minLevel.Mul(decimal.NewFromInt(2))
	if qty.LessThan(floor) {
		return floor
	}
	return qty
}

// CalculateUrgency puntúa el faltante en [0,1]. Solo para priorización, no
// participa en el cálculo de cantidades.
func CalculateUrgency(current, minLevel decimal.Decimal) float64 {
	half := minLevel.Mul(decimal.NewFromFloat(0.5))
	oneAndHalf := minLevel.Mul(decimal.NewFromFloat(1.5))
	switch {
	case current.LessThanOrEqual(decimal.Zero):
		return 1.0
	case current.LessThan(half):
		return 0.9
	case current.LessThan(minLevel):
		return 0.7
	case current.LessThan(oneAndHalf):
		return 0.5
	default:
		return 0.2
	}
}

// GenerateSuggestion arma la sugerencia completa: cotiza cada proveedor
// activo que ofrece el producto, usando como cantidad de costeo
// max(sugerida, mínimo de pedido del proveedor).
func GenerateSuggestion(product *entity.Product, currentStock decimal.Decimal, suppliers []SupplierCandidate) *ReplenishmentSuggestion {
	suggestion := NewSuggestion(product, currentStock)
	for _, c := range suppliers {
		if !c.Offer.IsAvailable {
			continue
		}
		minQty := c.Offer.MinOrderQty
		if minQty.LessThanOrEqual(decimal.Zero) {
			minQty = decimal.NewFromInt(1)
		}
		orderQty := suggestion.SuggestedOrderQty
		if orderQty.LessThan(minQty) {
			orderQty = minQty
		}
		suggestion.AddQuote(SupplierQuote{
			SupplierID:   c.Supplier.ID,
			SupplierName: c.Supplier.Name,
			UnitPrice:    c.Offer.UnitPrice,
			MinOrderQty:  minQty,
			LeadTimeDays: c.Offer.LeadTimeDays,
			TotalCost:    c.Offer.UnitPrice.Mul(orderQty),
			IsPreferred:  c.Supplier.IsPreferred,
			Rating:       c.Supplier.Rating,
		})
	}
	return suggestion
}

// SupplierCandidate empareja un proveedor con su oferta para un producto.
type SupplierCandidate struct {
	Supplier entity.Supplier
	Offer    entity.SupplierOffer
}

// CalculateReorderPoint: consumo diario * (lead time + días de stock de seguridad).
func CalculateReorderPoint(dailyConsumption decimal.Decimal, leadTimeDays, safetyStockDays int) decimal.Decimal {
	return dailyConsumption.Mul(decimal.NewFromInt(int64(leadTimeDays + safetyStockDays)))
}

// CalculateEconomicOrderQuantity: EOQ clásico, sqrt(2*D*S/H).
func CalculateEconomicOrderQuantity(annualDemand, orderingCost, holdingCostPerUnit float64) float64 {
	if holdingCostPerUnit <= 0 {
		return 0
	}
	return math.Sqrt((2 * annualDemand * orderingCost) / holdingCostPerUnit)
}
