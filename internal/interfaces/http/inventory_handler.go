package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// InventoryHandler maneja las mutaciones y consultas del ledger (protegido).
type InventoryHandler struct {
	svc *inventory.Service
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// mapLedgerError traduce errores de dominio a respuesta HTTP.
func mapLedgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto sin registro de inventario"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// AddStock registra una entrada de stock (compra).
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.svc.AddStock(c.Context(), inventory.AddStockInput{
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		SupplierID: in.SupplierID,
		InvoiceKey: in.InvoiceKey,
		UserID:     GetUserID(c),
	})
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "entrada registrada"})
}

// RemoveStock registra una salida por venta.
func (h *InventoryHandler) RemoveStock(c *fiber.Ctx) error {
	var in dto.RemoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.RemoveStock(c.Context(), in.ProductID, in.Quantity, in.OrderID, GetUserID(c)); err != nil {
		return mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "salida registrada"})
}

// ReturnStock reingresa una devolución de cliente.
func (h *InventoryHandler) ReturnStock(c *fiber.Ctx) error {
	var in dto.ReturnStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.ReturnStock(c.Context(), in.ProductID, in.Quantity, in.OrderID, GetUserID(c)); err != nil {
		return mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "devolución registrada"})
}

// Reserve compromete unidades para un pedido.
func (h *InventoryHandler) Reserve(c *fiber.Ctx) error {
	var in dto.ReserveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.Reserve(c.Context(), in.ProductID, in.Quantity, in.OrderID); err != nil {
		return mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "reserva registrada"})
}

// ReleaseReservation libera unidades reservadas.
func (h *InventoryHandler) ReleaseReservation(c *fiber.Ctx) error {
	var in dto.ReleaseReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.ReleaseReservation(c.Context(), in.ProductID, in.Quantity); err != nil {
		return mapLedgerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "reserva liberada"})
}

// AdjustStock fija la cantidad física tras un conteo manual.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.AdjustStock(c.Context(), in.ProductID, in.NewQuantity, in.Reason, GetUserID(c)); err != nil {
		return mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ajuste registrado"})
}

// RegisterLoss registra una pérdida o merma.
func (h *InventoryHandler) RegisterLoss(c *fiber.Ctx) error {
	var in dto.RegisterLossRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.RegisterLoss(c.Context(), in.ProductID, in.Quantity, in.Reason, GetUserID(c)); err != nil {
		return mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "pérdida registrada"})
}

// GetAvailability indica si hay disponible suficiente para una cantidad.
// GET /api/inventory/products/:id/availability?quantity=N
func (h *InventoryHandler) GetAvailability(c *fiber.Ctx) error {
	productID := c.Params("id")
	qty, err := decimal.NewFromString(c.Query("quantity", "1"))
	if err != nil || !qty.GreaterThan(decimal.Zero) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity inválida"})
	}
	ok, err := h.svc.CheckAvailability(c.Context(), productID, qty)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.JSON(dto.AvailabilityResponse{ProductID: productID, Requested: qty, Available: ok})
}

// GetRecord devuelve el estado de stock de un producto.
func (h *InventoryHandler) GetRecord(c *fiber.Ctx) error {
	record, err := h.svc.GetRecord(c.Context(), c.Params("id"))
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.JSON(dto.InventoryRecordResponse{
		ProductID:      record.ProductID,
		Quantity:       record.Quantity,
		Reserved:       record.Reserved,
		Available:      record.Available,
		LastMovementAt: record.LastMovementAt,
	})
}

// ListMovements historial del diario de un producto.
// GET /api/inventory/products/:id/movements?from=RFC3339&to=RFC3339&limit=&offset=
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	productID := c.Params("id")
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
		}
		to = &t
	}

	movements, err := h.svc.ListMovements(c.Context(), productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return mapLedgerError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToMovementResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}
