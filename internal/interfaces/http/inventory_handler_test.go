package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	appinv "github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/nfe"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stock-ledger-api/internal/interfaces/http"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

// noopPDF generador mínimo para no depender de Maroto en estos tests.
type noopPDF struct{}

func (noopPDF) GenerateReplenishmentPDF(context.Context, []*domaininv.ReplenishmentSuggestion) ([]byte, error) {
	return []byte("%PDF-test"), nil
}

type apiFixture struct {
	app    *fiber.App
	runner *memory.TxRunner
}

// newAPIFixture levanta la API completa sobre repositorios en memoria.
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	runner := memory.NewTxRunner()
	supplierRepo := memory.NewSupplierRepository()
	userRepo := memory.NewUserRepository()
	log := logger.Nop()

	svc := appinv.NewService(runner, runner.RecordRepo, runner.MovRepo, log)
	alertUC := appinv.NewAlertUseCase(runner.RecordRepo, runner.ProductRepo, supplierRepo, log)
	replenishmentUC := appinv.NewReplenishmentUseCase(runner.RecordRepo, runner.ProductRepo, supplierRepo, noopPDF{})
	importer := nfe.NewImporter(svc, runner.ProductRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InventorySvc:    svc,
		AlertUC:         alertUC,
		ReplenishmentUC: replenishmentUC,
		NFeImporter:     importer,
		ProductRepo:     runner.ProductRepo,
		AuthUC:          authUC,
		JWTSecret:       testJWTSecret,
	})
	return &apiFixture{app: app, runner: runner}
}

func (f *apiFixture) addProduct(t *testing.T, id, sku, name string, min float64) {
	t.Helper()
	now := time.Now()
	require.NoError(t, f.runner.ProductRepo.Create(&entity.Product{
		ID: id, SKU: sku, Name: name,
		MinStockLevel: decimal.NewFromFloat(min), UnitMeasure: "unidad",
		CreatedAt: now, UpdatedAt: now,
	}))
}

// postJSON lanza un POST autenticado con el rol indicado.
func (f *apiFixture) postJSON(t *testing.T, role, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (f *apiFixture) get(t *testing.T, role, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAPI_FlujoEntradaSalida(t *testing.T) {
	f := newAPIFixture(t)
	f.addProduct(t, "p1", "SKU-1", "Harina", 10)

	// Entrada de 50 unidades.
	resp := f.postJSON(t, "bodeguero", "/api/inventory/stock/add", map[string]interface{}{
		"product_id": "p1", "quantity": "50",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Salida de 20.
	resp = f.postJSON(t, "vendedor", "/api/inventory/stock/remove", map[string]interface{}{
		"product_id": "p1", "quantity": "20", "order_id": "orden-1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Estado del registro.
	resp = f.get(t, "vendedor", "/api/inventory/products/p1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rec map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	resp.Body.Close()
	assert.Equal(t, "30", rec["quantity"])
	assert.Equal(t, "30", rec["available"])

	// Historial con dos movimientos.
	resp = f.get(t, "vendedor", "/api/inventory/products/p1/movements")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hist struct {
		Total     int `json:"total"`
		Movements []struct {
			Type string `json:"type"`
		} `json:"movements"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&hist))
	resp.Body.Close()
	require.Equal(t, 2, hist.Total)
	assert.Equal(t, entity.MovementTypeSALE, hist.Movements[0].Type, "más reciente primero")
}

func TestAPI_StockInsuficiente_409(t *testing.T) {
	f := newAPIFixture(t)
	f.addProduct(t, "p1", "SKU-1", "Harina", 10)

	resp := f.postJSON(t, "bodeguero", "/api/inventory/stock/add", map[string]interface{}{
		"product_id": "p1", "quantity": "5",
	})
	resp.Body.Close()

	resp = f.postJSON(t, "vendedor", "/api/inventory/stock/remove", map[string]interface{}{
		"product_id": "p1", "quantity": "8",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestAPI_ProductoSinRegistro_404(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.get(t, "vendedor", "/api/inventory/products/fantasma")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_VendedorNoPuedeAgregarStock(t *testing.T) {
	f := newAPIFixture(t)
	f.addProduct(t, "p1", "SKU-1", "Harina", 10)

	resp := f.postJSON(t, "vendedor", "/api/inventory/stock/add", map[string]interface{}{
		"product_id": "p1", "quantity": "5",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_ReservaYDisponibilidad(t *testing.T) {
	f := newAPIFixture(t)
	f.addProduct(t, "p1", "SKU-1", "Harina", 10)

	resp := f.postJSON(t, "bodeguero", "/api/inventory/stock/add", map[string]interface{}{
		"product_id": "p1", "quantity": "10",
	})
	resp.Body.Close()

	resp = f.postJSON(t, "vendedor", "/api/inventory/reservations", map[string]interface{}{
		"product_id": "p1", "quantity": "6", "order_id": "orden-1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = f.get(t, "vendedor", "/api/inventory/products/p1/availability?quantity=5")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var avail map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&avail))
	resp.Body.Close()
	assert.Equal(t, false, avail["available"], "la disponibilidad descuenta lo reservado: 10 - 6 < 5")
}

func TestAPI_AlertasYReposicion(t *testing.T) {
	f := newAPIFixture(t)
	f.addProduct(t, "p1", "SKU-1", "Harina", 10)

	resp := f.postJSON(t, "bodeguero", "/api/inventory/stock/add", map[string]interface{}{
		"product_id": "p1", "quantity": "3",
	})
	resp.Body.Close()

	// Reconstrucción de alertas: 3 < 10 -> HIGH.
	resp = f.postJSON(t, "bodeguero", "/api/alerts/rebuild", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rebuilt struct {
		Total  int `json:"total"`
		Alerts []struct {
			ID    string `json:"id"`
			Level string `json:"level"`
		} `json:"alerts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rebuilt))
	resp.Body.Close()
	require.Equal(t, 1, rebuilt.Total)
	assert.Equal(t, "HIGH", rebuilt.Alerts[0].Level)

	// Acknowledge de la alerta.
	resp = f.postJSON(t, "vendedor", "/api/alerts/"+rebuilt.Alerts[0].ID+"/acknowledge", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Sugerencia de reposición del producto.
	resp = f.get(t, "vendedor", "/api/replenishment/products/p1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var suggestion map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&suggestion))
	resp.Body.Close()
	assert.Equal(t, "47", suggestion["suggested_order_qty"], "5*min - actual = 50 - 3")

	// Reporte PDF.
	resp = f.get(t, "vendedor", "/api/replenishment/report")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	resp.Body.Close()
}
