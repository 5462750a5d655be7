package nfe

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

// Importer convierte una factura parseada en entradas de stock. Es un
// productor aguas arriba del ledger: por cada ítem que corresponde a un
// producto del catálogo (por SKU o código de barras) llama AddStock con la
// clave de acceso como proveniencia.
type Importer struct {
	inventorySvc *inventory.Service
	productRepo  repository.ProductRepository
	log          *logger.Logger
}

// NewImporter construye el importador.
func NewImporter(inventorySvc *inventory.Service, productRepo repository.ProductRepository, log *logger.Logger) *Importer {
	return &Importer{inventorySvc: inventorySvc, productRepo: productRepo, log: log}
}

// ImportResult resume la importación de una factura.
type ImportResult struct {
	AccessKey    string   `json:"access_key"`
	SupplierName string   `json:"supplier_name"`
	TotalItems   int      `json:"total_items"`
	Imported     []string `json:"imported_product_ids"`
	Skipped      []string `json:"skipped_descriptions"`
}

// Import registra las entradas de stock de la factura. Los ítems sin
// producto correspondiente en el catálogo se omiten y reportan; los demás
// quedan en el diario como compras con costo y clave de la factura.
func (im *Importer) Import(ctx context.Context, invoice *Invoice, userID string) (*ImportResult, error) {
	result := &ImportResult{
		AccessKey:    invoice.AccessKey,
		SupplierName: invoice.Supplier.Name,
		TotalItems:   len(invoice.Items),
		Imported:     []string{},
		Skipped:      []string{},
	}

	for _, item := range invoice.Items {
		product, err := im.productRepo.GetBySKU(item.ProductCode)
		if err != nil {
			return nil, err
		}
		if product == nil {
			im.log.Warn().
				Str("access_key", invoice.AccessKey).
				Str("code", item.ProductCode).
				Str("description", item.Description).
				Msg("ítem de factura sin producto en catálogo, omitido")
			result.Skipped = append(result.Skipped, item.Description)
			continue
		}
		unitCost := item.UnitCost
		err = im.inventorySvc.AddStock(ctx, inventory.AddStockInput{
			ProductID:  product.ID,
			Quantity:   item.Quantity,
			UnitCost:   &unitCost,
			InvoiceKey: invoice.AccessKey,
			UserID:     userID,
		})
		if err != nil {
			return nil, err
		}
		result.Imported = append(result.Imported, product.ID)
	}

	im.log.Info().
		Str("access_key", invoice.AccessKey).
		Int("imported", len(result.Imported)).
		Int("skipped", len(result.Skipped)).
		Msg("factura de proveedor importada")
	return result, nil
}
