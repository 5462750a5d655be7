package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// AlertHandler expone las alertas de stock (protegido).
type AlertHandler struct {
	uc *inventory.AlertUseCase
}

// NewAlertHandler construye el handler de alertas.
func NewAlertHandler(uc *inventory.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// Rebuild reconstruye el conjunto de alertas desde el estado actual del ledger.
func (h *AlertHandler) Rebuild(c *fiber.Ctx) error {
	alerts, err := h.uc.RebuildAlerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": dto.ToStockAlertDTOs(alerts)})
}

// List devuelve las alertas sin atender, más recientes primero.
func (h *AlertHandler) List(c *fiber.Ctx) error {
	alerts := h.uc.Manager().AllUnacknowledged()
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": dto.ToStockAlertDTOs(alerts)})
}

// Critical devuelve solo las alertas críticas sin atender.
func (h *AlertHandler) Critical(c *fiber.Ctx) error {
	alerts := h.uc.Manager().CriticalAlerts()
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": dto.ToStockAlertDTOs(alerts)})
}

// HighPriority devuelve las alertas críticas y altas sin atender.
func (h *AlertHandler) HighPriority(c *fiber.Ctx) error {
	alerts := h.uc.Manager().HighPriorityAlerts()
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": dto.ToStockAlertDTOs(alerts)})
}

// Acknowledge marca una alerta como atendida.
func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	if err := h.uc.Acknowledge(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "alerta atendida"})
}

// ClearAcknowledged elimina las alertas ya atendidas.
func (h *AlertHandler) ClearAcknowledged(c *fiber.Ctx) error {
	h.uc.ClearAcknowledged(c.Context())
	return c.JSON(fiber.Map{"message": "alertas atendidas eliminadas"})
}
