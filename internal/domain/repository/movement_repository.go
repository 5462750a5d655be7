package repository

import (
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// MovementRepository define el puerto del diario de movimientos: inserción
// solamente, los movimientos son inmutables una vez creados.
type MovementRepository interface {
	Append(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
}
