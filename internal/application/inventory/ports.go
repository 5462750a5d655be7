package inventory

import (
	"context"

	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La actualización del registro y el append al
// diario de una misma operación lógica comparten transacción: ambos quedan o
// ninguno queda.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		recordRepo repository.InventoryRecordRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReportGenerator genera la representación PDF de la lista de reposición.
type ReportGenerator interface {
	GenerateReplenishmentPDF(ctx context.Context, suggestions []*domaininv.ReplenishmentSuggestion) ([]byte, error)
}
