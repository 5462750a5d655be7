package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch se retorna al operar montos de monedas distintas.
var ErrCurrencyMismatch = errors.New("monedas incompatibles")

// Moneda por defecto de la aplicación.
const DefaultCurrency = "BRL"

// Money es un monto etiquetado con su moneda. Usa decimal de punto fijo para
// evitar acumulación de error en miles de movimientos; las operaciones entre
// monedas distintas fallan, nunca convierten en silencio.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// New construye un Money con la moneda indicada.
func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// BRL construye un Money en reales.
func BRL(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: DefaultCurrency}
}

// Zero devuelve el monto cero en la moneda indicada.
func Zero(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add suma dos montos de la misma moneda.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub resta dos montos de la misma moneda.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Mul multiplica el monto por un factor (ej. cantidad de unidades).
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

// IsPositive indica si el monto es mayor que cero.
func (m Money) IsPositive() bool {
	return m.Amount.GreaterThan(decimal.Zero)
}

// IsZero indica si el monto es exactamente cero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Formatted devuelve el monto con símbolo y dos decimales (ej. "R$ 12.50").
func (m Money) Formatted() string {
	symbol := m.Currency + " "
	if m.Currency == DefaultCurrency {
		symbol = "R$ "
	}
	return symbol + m.Amount.StringFixed(2)
}
