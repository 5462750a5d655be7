package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
)

func producto(min float64, max *float64) *entity.Product {
	p := &entity.Product{
		ID:            "p1",
		Name:          "Harina de trigo",
		MinStockLevel: d(min),
	}
	if max != nil {
		m := d(*max)
		p.MaxStockLevel = &m
	}
	return p
}

func TestCalculateOrderQuantity(t *testing.T) {
	// Sin máximo: objetivo = 5 * mínimo.
	qty := inventory.CalculateOrderQuantity(d(8), d(10), nil)
	assert.True(t, qty.Equal(d(42)), "50 - 8")

	// Con máximo definido: objetivo = máximo.
	max := d(30)
	qty = inventory.CalculateOrderQuantity(d(8), d(10), &max)
	assert.True(t, qty.Equal(d(22)), "30 - 8, sobre el piso de 20")

	// Piso de 2x el mínimo cuando el faltante es chico.
	max = d(12)
	qty = inventory.CalculateOrderQuantity(d(11), d(10), &max)
	assert.True(t, qty.Equal(d(20)), "12 - 11 = 1 queda bajo el piso 2*min")
}

func TestCalculateUrgency_Escalera(t *testing.T) {
	min := d(10)
	assert.Equal(t, 1.0, inventory.CalculateUrgency(d(0), min))
	assert.Equal(t, 0.9, inventory.CalculateUrgency(d(4), min))
	assert.Equal(t, 0.7, inventory.CalculateUrgency(d(8), min))
	assert.Equal(t, 0.5, inventory.CalculateUrgency(d(12), min))
	assert.Equal(t, 0.2, inventory.CalculateUrgency(d(30), min))
}

// Escenario: el proveedor preferido gana aunque otro cotice más barato.
func TestBestQuote_PreferidoGanaAlMasBarato(t *testing.T) {
	s := inventory.NewSuggestion(producto(10, nil), d(5))

	s.AddQuote(inventory.SupplierQuote{
		SupplierID: "x", SupplierName: "Proveedor X",
		TotalCost: d(100),
	})
	s.AddQuote(inventory.SupplierQuote{
		SupplierID: "y", SupplierName: "Proveedor Y",
		TotalCost: d(150), IsPreferred: true,
	})

	require.NotNil(t, s.BestQuote)
	assert.Equal(t, "y", s.BestQuote.SupplierID, "preferido gana aunque cueste más")
}

func TestBestQuote_EmpatePorCosto_DesempataRating(t *testing.T) {
	s := inventory.NewSuggestion(producto(10, nil), d(5))
	r1, r2 := 3.5, 4.8

	s.AddQuote(inventory.SupplierQuote{SupplierID: "a", TotalCost: d(100), Rating: &r1})
	s.AddQuote(inventory.SupplierQuote{SupplierID: "b", TotalCost: d(100), Rating: &r2})
	s.AddQuote(inventory.SupplierQuote{SupplierID: "c", TotalCost: d(100)}) // sin rating

	require.NotNil(t, s.BestQuote)
	assert.Equal(t, "b", s.BestQuote.SupplierID, "mejor rating gana; sin rating queda último")
}

func TestGenerateSuggestion_CompletaCotizaciones(t *testing.T) {
	p := producto(10, nil)
	rating := 4.5
	candidates := []inventory.SupplierCandidate{
		{
			Supplier: entity.Supplier{ID: "s1", Name: "Molinos", IsActive: true, Rating: &rating},
			Offer:    entity.SupplierOffer{SupplierID: "s1", ProductID: "p1", UnitPrice: d(2), MinOrderQty: d(50), IsAvailable: true, LeadTimeDays: 3},
		},
		{
			Supplier: entity.Supplier{ID: "s2", Name: "No disponible", IsActive: true},
			Offer:    entity.SupplierOffer{SupplierID: "s2", ProductID: "p1", UnitPrice: d(1), IsAvailable: false},
		},
	}

	s := inventory.GenerateSuggestion(p, d(5), candidates)

	assert.True(t, s.SuggestedOrderQty.Equal(d(45)), "5*min - actual")
	require.Len(t, s.Quotes, 1, "ofertas no disponibles se descartan")
	quote := s.Quotes[0]
	// La cantidad de costeo respeta el mínimo de pedido del proveedor: max(45, 50) = 50.
	assert.True(t, quote.TotalCost.Equal(d(100)), "2 * 50")
	assert.Equal(t, 3, quote.LeadTimeDays)
	require.NotNil(t, s.BestQuote)
	assert.Equal(t, "s1", s.BestQuote.SupplierID)
}

func TestGenerateSuggestion_SinOfertas(t *testing.T) {
	s := inventory.GenerateSuggestion(producto(10, nil), d(0), nil)
	assert.Empty(t, s.Quotes)
	assert.Nil(t, s.BestQuote)
	assert.Equal(t, 1.0, s.UrgencyScore)
}

func TestCalculateReorderPoint(t *testing.T) {
	rp := inventory.CalculateReorderPoint(d(4), 5, 2)
	assert.True(t, rp.Equal(d(28)), "4 * (5 + 2)")
}

func TestCalculateEconomicOrderQuantity(t *testing.T) {
	// EOQ = sqrt(2 * 1000 * 50 / 2) = sqrt(50000)
	eoq := inventory.CalculateEconomicOrderQuantity(1000, 50, 2)
	assert.InDelta(t, 223.6, eoq, 0.1)

	assert.Equal(t, 0.0, inventory.CalculateEconomicOrderQuantity(1000, 50, 0),
		"costo de almacenamiento cero o negativo no es calculable")
}

func TestWeightedAverageCost(t *testing.T) {
	// 10 unidades a 2.00 + 10 unidades a 4.00 -> promedio 3.00
	cost := inventory.WeightedAverageCost(d(10), d(2), d(10), d(4))
	assert.True(t, cost.Equal(d(3)))

	// Sin stock previo, el costo pasa a ser el de la entrada.
	cost = inventory.WeightedAverageCost(d(0), d(0), d(5), d(7.5))
	assert.True(t, cost.Equal(d(7.5)))

	// Entrada cero con stock cero no divide por cero.
	cost = inventory.WeightedAverageCost(d(0), d(0), d(0), d(9))
	assert.True(t, cost.IsZero())
}
