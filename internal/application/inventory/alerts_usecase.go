package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

// AlertUseCase deriva alertas de stock del estado actual del ledger y las
// mantiene en un AlertManager reconstruible. Lectura pura: puede correr en
// paralelo con mutaciones al costo de un snapshot levemente desactualizado,
// aceptable porque las alertas son consultivas, no autoritativas.
type AlertUseCase struct {
	recordRepo   repository.InventoryRecordRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	manager      *domaininv.AlertManager
	log          *logger.Logger
}

// NewAlertUseCase construye el caso de uso de alertas.
func NewAlertUseCase(
	recordRepo repository.InventoryRecordRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	log *logger.Logger,
) *AlertUseCase {
	return &AlertUseCase{
		recordRepo:   recordRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		manager:      domaininv.NewAlertManager(),
		log:          log,
	}
}

// Manager expone el conjunto de alertas vigente.
func (uc *AlertUseCase) Manager() *domaininv.AlertManager {
	return uc.manager
}

// maxScan límite de registros a escanear por reconstrucción.
const maxScan = 5000

// RebuildAlerts reconstruye el conjunto completo de alertas desde el ledger:
// clasifica cada producto con registro de stock y nivel mínimo definido, y
// enriquece las alertas accionables con el mejor proveedor. Idempotente.
func (uc *AlertUseCase) RebuildAlerts(ctx context.Context) ([]*domaininv.StockAlert, error) {
	records, err := uc.recordRepo.List(maxScan, 0)
	if err != nil {
		return nil, err
	}

	alerts := make([]*domaininv.StockAlert, 0)
	for _, record := range records {
		product, err := uc.productRepo.GetByID(record.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		alert := domaininv.NewStockAlert(product.ID, product.Name, record.Quantity, product.MinStockLevel)
		if alert.Level == domaininv.AlertLevelLow {
			continue
		}
		uc.enrichWithBestSupplier(product, alert)
		alerts = append(alerts, alert)
	}

	uc.manager.Rebuild(alerts)
	uc.log.Info().
		Int("total", len(alerts)).
		Int("critical", uc.manager.CriticalCount()).
		Msg("alertas de stock reconstruidas")
	return alerts, nil
}

// enrichWithBestSupplier anota el proveedor mejor rankeado si existe alguna
// oferta disponible. Best effort: sin ofertas la alerta queda igual.
func (uc *AlertUseCase) enrichWithBestSupplier(product *entity.Product, alert *domaininv.StockAlert) {
	offers, err := uc.supplierRepo.ListOffersByProduct(product.ID)
	if err != nil || len(offers) == 0 {
		return
	}
	candidates := make([]domaininv.SupplierCandidate, 0, len(offers))
	for _, o := range offers {
		candidates = append(candidates, domaininv.SupplierCandidate{Supplier: o.Supplier, Offer: o.Offer})
	}
	suggestion := domaininv.GenerateSuggestion(product, alert.CurrentQuantity, candidates)
	if best := suggestion.BestQuote; best != nil {
		alert.AddSupplierInfo(best.SupplierID, best.SupplierName, best.UnitPrice)
	}
}

// Acknowledge marca una alerta como atendida. ErrNotFound si no existe.
func (uc *AlertUseCase) Acknowledge(ctx context.Context, alertID string) error {
	if !uc.manager.Acknowledge(alertID) {
		return domain.ErrNotFound
	}
	return nil
}

// ClearAcknowledged elimina del conjunto las alertas ya atendidas.
func (uc *AlertUseCase) ClearAcknowledged(ctx context.Context) {
	uc.manager.ClearAcknowledged()
}
