package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ReplenishmentUseCase convierte un faltante en una sugerencia de compra
// accionable: cantidad a pedir, cotizaciones de proveedores y la mejor.
// Lectura pura sobre el ledger y el catálogo de proveedores.
type ReplenishmentUseCase struct {
	recordRepo   repository.InventoryRecordRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	pdfGenerator ReportGenerator
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	recordRepo repository.InventoryRecordRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	pdfGenerator ReportGenerator,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{
		recordRepo:   recordRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		pdfGenerator: pdfGenerator,
	}
}

// Suggest genera la sugerencia de reposición de un producto con el stock
// actual del ledger y las ofertas vigentes de proveedores.
func (uc *ReplenishmentUseCase) Suggest(ctx context.Context, productID string) (*domaininv.ReplenishmentSuggestion, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	currentStock := decimal.Zero
	record, err := uc.recordRepo.Get(productID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		currentStock = record.Quantity
	}

	offers, err := uc.supplierRepo.ListOffersByProduct(productID)
	if err != nil {
		return nil, err
	}
	candidates := make([]domaininv.SupplierCandidate, 0, len(offers))
	for _, o := range offers {
		if !o.Supplier.IsActive {
			continue
		}
		candidates = append(candidates, domaininv.SupplierCandidate{Supplier: o.Supplier, Offer: o.Offer})
	}

	return domaininv.GenerateSuggestion(product, currentStock, candidates), nil
}

// SuggestBelowMinimum genera sugerencias para todos los productos cuyo stock
// está por debajo del nivel mínimo, ordenadas por urgencia descendente.
func (uc *ReplenishmentUseCase) SuggestBelowMinimum(ctx context.Context) ([]*domaininv.ReplenishmentSuggestion, error) {
	records, err := uc.recordRepo.List(maxScan, 0)
	if err != nil {
		return nil, err
	}
	suggestions := make([]*domaininv.ReplenishmentSuggestion, 0)
	for _, record := range records {
		product, err := uc.productRepo.GetByID(record.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !record.Quantity.LessThan(product.MinStockLevel) {
			continue
		}
		suggestion, err := uc.Suggest(ctx, record.ProductID)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, suggestion)
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].UrgencyScore > suggestions[j].UrgencyScore
	})
	return suggestions, nil
}

// GenerateReport genera el PDF de la lista de reposición de los productos
// bajo mínimo.
func (uc *ReplenishmentUseCase) GenerateReport(ctx context.Context) ([]byte, error) {
	suggestions, err := uc.SuggestBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateReplenishmentPDF(ctx, suggestions)
}
