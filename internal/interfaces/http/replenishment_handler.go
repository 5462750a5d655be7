package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// ReplenishmentHandler expone las sugerencias de reposición (protegido).
type ReplenishmentHandler struct {
	uc *inventory.ReplenishmentUseCase
}

// NewReplenishmentHandler construye el handler de reposición.
func NewReplenishmentHandler(uc *inventory.ReplenishmentUseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc}
}

// Suggest devuelve la sugerencia de reposición de un producto.
func (h *ReplenishmentHandler) Suggest(c *fiber.Ctx) error {
	suggestion, err := h.uc.Suggest(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToReplenishmentSuggestionDTO(suggestion))
}

// ListBelowMinimum devuelve las sugerencias de todos los productos bajo
// mínimo, ordenadas por urgencia.
func (h *ReplenishmentHandler) ListBelowMinimum(c *fiber.Ctx) error {
	suggestions, err := h.uc.SuggestBelowMinimum(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.ToReplenishmentSuggestionDTO(s))
	}
	return c.JSON(fiber.Map{"total": len(out), "replenishments": out})
}

// Report genera el PDF de la lista de reposición.
func (h *ReplenishmentHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.uc.GenerateReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="reposicion.pdf"`)
	return c.Send(pdf)
}
