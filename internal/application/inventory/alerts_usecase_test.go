package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/memory"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

type alertFixture struct {
	uc       *appinv.AlertUseCase
	runner   *memory.TxRunner
	supplier *memory.SupplierRepo
	svc      *appinv.Service
}

func newAlertFixture(t *testing.T) *alertFixture {
	t.Helper()
	runner := memory.NewTxRunner()
	supplier := memory.NewSupplierRepository()
	svc := appinv.NewService(runner, runner.RecordRepo, runner.MovRepo, logger.Nop())
	uc := appinv.NewAlertUseCase(runner.RecordRepo, runner.ProductRepo, supplier, logger.Nop())
	return &alertFixture{uc: uc, runner: runner, supplier: supplier, svc: svc}
}

func (f *alertFixture) addProduct(t *testing.T, id, sku, name string, min float64) {
	t.Helper()
	now := time.Now()
	require.NoError(t, f.runner.ProductRepo.Create(&entity.Product{
		ID: id, SKU: sku, Name: name,
		MinStockLevel: d(min), UnitMeasure: "unidad",
		CreatedAt: now, UpdatedAt: now,
	}))
}

func TestRebuildAlerts_ClasificaYDescartaNivelBajo(t *testing.T) {
	f := newAlertFixture(t)
	ctx := context.Background()

	f.addProduct(t, "p-agotado", "S1", "Agotado", 10)
	f.addProduct(t, "p-bajo", "S2", "Bajo mínimo", 10)
	f.addProduct(t, "p-sano", "S3", "Sano", 10)

	// p-agotado queda en cero; p-bajo con 8; p-sano con 50.
	require.NoError(t, f.svc.AddStock(ctx, appinv.AddStockInput{ProductID: "p-agotado", Quantity: d(5), UserID: "u"}))
	require.NoError(t, f.svc.RemoveStock(ctx, "p-agotado", d(5), "o", "u"))
	require.NoError(t, f.svc.AddStock(ctx, appinv.AddStockInput{ProductID: "p-bajo", Quantity: d(8), UserID: "u"}))
	require.NoError(t, f.svc.AddStock(ctx, appinv.AddStockInput{ProductID: "p-sano", Quantity: d(50), UserID: "u"}))

	alerts, err := f.uc.RebuildAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2, "el producto sano no genera alerta")

	niveles := map[string]domaininv.AlertLevel{}
	for _, a := range alerts {
		niveles[a.ProductID] = a.Level
	}
	assert.Equal(t, domaininv.AlertLevelCritical, niveles["p-agotado"])
	assert.Equal(t, domaininv.AlertLevelHigh, niveles["p-bajo"])
	assert.Equal(t, 1, f.uc.Manager().CriticalCount())
}

func TestRebuildAlerts_EnriqueceConMejorProveedor(t *testing.T) {
	f := newAlertFixture(t)
	ctx := context.Background()

	f.addProduct(t, "p1", "S1", "Harina", 10)
	require.NoError(t, f.svc.AddStock(ctx, appinv.AddStockInput{ProductID: "p1", Quantity: d(2), UserID: "u"}))

	f.supplier.AddSupplier(entity.Supplier{ID: "s-caro", Name: "Caro Pero Preferido", IsActive: true, IsPreferred: true})
	f.supplier.AddSupplier(entity.Supplier{ID: "s-barato", Name: "Barato", IsActive: true})
	f.supplier.AddOffer(entity.SupplierOffer{SupplierID: "s-caro", ProductID: "p1", UnitPrice: d(5), MinOrderQty: d(1), IsAvailable: true})
	f.supplier.AddOffer(entity.SupplierOffer{SupplierID: "s-barato", ProductID: "p1", UnitPrice: d(3), MinOrderQty: d(1), IsAvailable: true})

	alerts, err := f.uc.RebuildAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	assert.Equal(t, "s-caro", alerts[0].BestSupplierID, "preferido gana al más barato")
	assert.Contains(t, alerts[0].Message, "Caro Pero Preferido")
}

func TestRebuildAlerts_EsIdempotente(t *testing.T) {
	f := newAlertFixture(t)
	ctx := context.Background()
	f.addProduct(t, "p1", "S1", "Harina", 10)
	require.NoError(t, f.svc.AddStock(ctx, appinv.AddStockInput{ProductID: "p1", Quantity: d(3), UserID: "u"}))

	_, err := f.uc.RebuildAlerts(ctx)
	require.NoError(t, err)
	_, err = f.uc.RebuildAlerts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, f.uc.Manager().Count(), "dos reconstrucciones no duplican alertas")
}

func TestAcknowledge_Alerta(t *testing.T) {
	f := newAlertFixture(t)
	ctx := context.Background()
	f.addProduct(t, "p1", "S1", "Harina", 10)
	require.NoError(t, f.svc.AddStock(ctx, appinv.AddStockInput{ProductID: "p1", Quantity: d(3), UserID: "u"}))

	alerts, err := f.uc.RebuildAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	require.NoError(t, f.uc.Acknowledge(ctx, alerts[0].ID))
	assert.Equal(t, 0, f.uc.Manager().Count())

	assert.ErrorIs(t, f.uc.Acknowledge(ctx, "no-existe"), domain.ErrNotFound)

	f.uc.ClearAcknowledged(ctx)
	assert.Nil(t, f.uc.Manager().Get(alerts[0].ID))
}
