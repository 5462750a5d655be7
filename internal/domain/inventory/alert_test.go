package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestDetermineAlertLevel(t *testing.T) {
	min := d(10)

	casos := []struct {
		nombre   string
		current  decimal.Decimal
		expected inventory.AlertLevel
	}{
		{"stock en cero es crítico", d(0), inventory.AlertLevelCritical},
		{"stock negativo es crítico", d(-2), inventory.AlertLevelCritical},
		{"bajo el mínimo es alto", d(8), inventory.AlertLevelHigh},
		{"justo en el mínimo es medio", d(10), inventory.AlertLevelMedium},
		{"hasta 120% del mínimo es medio", d(11), inventory.AlertLevelMedium},
		{"sobre 120% del mínimo es bajo", d(20), inventory.AlertLevelLow},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.expected, inventory.DetermineAlertLevel(c.current, min))
		})
	}
}

func TestNewStockAlert_SugiereHastaTresVecesElMinimo(t *testing.T) {
	alert := inventory.NewStockAlert("p1", "Harina", d(8), d(10))

	assert.Equal(t, inventory.AlertLevelHigh, alert.Level)
	assert.True(t, alert.SuggestedOrder.Equal(d(22)), "3*min - actual = 30 - 8")
	assert.Contains(t, alert.Message, "Harina")
	assert.False(t, alert.Acknowledged)
}

func TestNewStockAlert_SugerenciaNuncaNegativa(t *testing.T) {
	alert := inventory.NewStockAlert("p1", "Harina", d(50), d(10))
	assert.True(t, alert.SuggestedOrder.IsZero())
}

func TestAddSupplierInfo_AnotaProveedorYExtiendeMensaje(t *testing.T) {
	alert := inventory.NewStockAlert("p1", "Harina", d(0), d(10))
	alert.AddSupplierInfo("s1", "Molinos del Sur", d(3.20))

	assert.Equal(t, "s1", alert.BestSupplierID)
	assert.Equal(t, "Molinos del Sur", alert.BestSupplierName)
	require.NotNil(t, alert.BestPrice)
	assert.True(t, alert.BestPrice.Equal(d(3.20)))
	assert.Contains(t, alert.Message, "Molinos del Sur")
	assert.Contains(t, alert.Message, "R$ 3.20")
}

func TestAlertManager_FiltrosYAcknowledge(t *testing.T) {
	m := inventory.NewAlertManager()

	critical := inventory.NewStockAlert("p1", "Harina", d(0), d(10))
	high := inventory.NewStockAlert("p2", "Azúcar", d(4), d(10))
	medium := inventory.NewStockAlert("p3", "Sal", d(11), d(10))
	m.Add(critical)
	m.Add(high)
	m.Add(medium)

	assert.Len(t, m.CriticalAlerts(), 1)
	assert.Len(t, m.HighPriorityAlerts(), 2, "prioridad alta incluye críticas y altas")
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, 1, m.CriticalCount())

	// Acknowledge saca la alerta de los filtros pero no del conjunto.
	require.True(t, m.Acknowledge(critical.ID))
	assert.Len(t, m.CriticalAlerts(), 0)
	assert.Equal(t, 2, m.Count())
	assert.NotNil(t, m.Get(critical.ID))

	assert.False(t, m.Acknowledge("no-existe"))

	// ClearAcknowledged sí la elimina.
	m.ClearAcknowledged()
	assert.Nil(t, m.Get(critical.ID))
	assert.Equal(t, 2, m.Count())
}

func TestAlertManager_RebuildEsIdempotente(t *testing.T) {
	m := inventory.NewAlertManager()
	m.Add(inventory.NewStockAlert("viejo", "Viejo", d(0), d(10)))

	nuevas := []*inventory.StockAlert{
		inventory.NewStockAlert("p1", "Harina", d(0), d(10)),
		inventory.NewStockAlert("p2", "Azúcar", d(5), d(10)),
	}
	m.Rebuild(nuevas)
	assert.Equal(t, 2, m.Count(), "rebuild reemplaza el conjunto completo")

	m.Rebuild(nuevas)
	assert.Equal(t, 2, m.Count(), "dos rebuilds seguidos dejan el mismo estado")
}
