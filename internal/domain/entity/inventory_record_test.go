package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestNewInventoryRecord_IniciaEnCero(t *testing.T) {
	rec := entity.NewInventoryRecord("prod-1")

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "prod-1", rec.ProductID)
	assert.True(t, rec.Quantity.IsZero())
	assert.True(t, rec.Reserved.IsZero())
	assert.True(t, rec.Available.IsZero())
	assert.Nil(t, rec.LastMovementAt, "sin movimientos todavía")
}

func TestAdd_ActualizaDisponibleYTimestamp(t *testing.T) {
	rec := entity.NewInventoryRecord("prod-1")
	rec.Add(d(50))

	assert.True(t, rec.Quantity.Equal(d(50)))
	assert.True(t, rec.Available.Equal(d(50)))
	require.NotNil(t, rec.LastMovementAt)
}

// Escenario: reserva y remoción operan sobre contadores independientes,
// pero ambas se validan contra el disponible.
func TestReserveYRemove_CompartenUmbralDeDisponible(t *testing.T) {
	rec := entity.NewInventoryRecord("prod-1")
	rec.Add(d(100))

	require.NoError(t, rec.Reserve(d(30)))
	assert.True(t, rec.Quantity.Equal(d(100)), "reservar no cambia el stock físico")
	assert.True(t, rec.Reserved.Equal(d(30)))
	assert.True(t, rec.Available.Equal(d(70)))

	// Remover más de lo disponible falla aunque el total alcance.
	err := rec.Remove(d(80))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, rec.Quantity.Equal(d(100)), "un fallo no debe mutar el registro")

	// Remover dentro del disponible descuenta solo la cantidad física.
	require.NoError(t, rec.Remove(d(70)))
	assert.True(t, rec.Quantity.Equal(d(30)))
	assert.True(t, rec.Reserved.Equal(d(30)))
	assert.True(t, rec.Available.IsZero())
}

func TestReserve_SinDisponible_Falla(t *testing.T) {
	rec := entity.NewInventoryRecord("prod-1")
	rec.Add(d(10))
	require.NoError(t, rec.Reserve(d(10)))

	err := rec.Reserve(d(1))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, rec.Reserved.Equal(d(10)))
}

func TestReleaseReservation_PisoEnCero(t *testing.T) {
	rec := entity.NewInventoryRecord("prod-1")
	rec.Add(d(20))
	require.NoError(t, rec.Reserve(d(5)))

	// Liberar más de lo reservado no deja la reserva negativa.
	rec.ReleaseReservation(d(8))
	assert.True(t, rec.Reserved.IsZero())
	assert.True(t, rec.Available.Equal(d(20)))

	// Doble liberación es inocua.
	rec.ReleaseReservation(d(8))
	assert.True(t, rec.Reserved.IsZero())
}

func TestSetQuantity_DevuelveMagnitudDelCambio(t *testing.T) {
	rec := entity.NewInventoryRecord("prod-1")
	rec.Add(d(55))

	diff := rec.SetQuantity(d(40))
	assert.True(t, diff.Equal(d(15)), "la magnitud del ajuste es |nueva - anterior|")
	assert.True(t, rec.Quantity.Equal(d(40)))

	// Ajuste hacia arriba también devuelve magnitud positiva.
	diff = rec.SetQuantity(d(60))
	assert.True(t, diff.Equal(d(20)))
}

// Invariante: Available siempre es Quantity - Reserved, tras cualquier
// secuencia de operaciones.
func TestAvailable_SiempreDerivado(t *testing.T) {
	rec := entity.NewInventoryRecord("prod-1")
	rec.Add(d(100))
	require.NoError(t, rec.Reserve(d(40)))
	require.NoError(t, rec.Remove(d(10)))
	rec.ReleaseReservation(d(15))
	rec.SetQuantity(d(77))

	assert.True(t, rec.Available.Equal(rec.Quantity.Sub(rec.Reserved)))
}
