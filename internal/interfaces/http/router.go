package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/nfe"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventorySvc    *inventory.Service
	AlertUC         *inventory.AlertUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	NFeImporter     *nfe.Importer
	ProductRepo     repository.ProductRepository
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductRepo)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Ledger de inventario (protegido)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventorySvc)
	almacen := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	inv.Post("/stock/add", almacen, inventoryHandler.AddStock)
	inv.Post("/stock/remove", inventoryHandler.RemoveStock)
	inv.Post("/stock/return", inventoryHandler.ReturnStock)
	inv.Post("/stock/adjust", almacen, inventoryHandler.AdjustStock)
	inv.Post("/stock/loss", almacen, inventoryHandler.RegisterLoss)
	inv.Post("/reservations", inventoryHandler.Reserve)
	inv.Delete("/reservations", inventoryHandler.ReleaseReservation)
	inv.Get("/products/:id", inventoryHandler.GetRecord)
	inv.Get("/products/:id/availability", inventoryHandler.GetAvailability)
	inv.Get("/products/:id/movements", inventoryHandler.ListMovements)

	// Alertas de stock (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Post("/rebuild", almacen, alertHandler.Rebuild)
	alerts.Get("/", alertHandler.List)
	alerts.Get("/critical", alertHandler.Critical)
	alerts.Get("/high-priority", alertHandler.HighPriority)
	alerts.Post("/:id/acknowledge", alertHandler.Acknowledge)
	alerts.Delete("/acknowledged", almacen, alertHandler.ClearAcknowledged)

	// Reposición (protegido)
	replenishment := protected.Group("/replenishment")
	replenishmentHandler := NewReplenishmentHandler(deps.ReplenishmentUC)
	replenishment.Get("/products/:id", replenishmentHandler.Suggest)
	replenishment.Get("/below-minimum", replenishmentHandler.ListBelowMinimum)
	replenishment.Get("/report", replenishmentHandler.Report)

	// Importación de facturas NFe (protegido)
	nfeGroup := protected.Group("/nfe")
	nfeHandler := NewNFeHandler(deps.NFeImporter)
	nfeGroup.Post("/import", almacen, nfeHandler.Import)
}
