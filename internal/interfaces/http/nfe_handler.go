package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/nfe"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// NFeHandler importa facturas electrónicas de proveedor (protegido).
type NFeHandler struct {
	importer *nfe.Importer
}

// NewNFeHandler construye el handler de importación NFe.
func NewNFeHandler(importer *nfe.Importer) *NFeHandler {
	return &NFeHandler{importer: importer}
}

// Import recibe el XML de la factura en el body, lo parsea y registra las
// entradas de stock de cada ítem conocido.
func (h *NFeHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "XML de factura requerido"})
	}
	invoice, err := nfe.ParseInvoice(body)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INVOICE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	result, err := h.importer.Import(c.Context(), invoice, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INVOICE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
