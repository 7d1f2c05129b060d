package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
)

// BillHandler maneja las peticiones HTTP de facturación.
type BillHandler struct {
	checkout   *billing.CheckoutUseCase
	settlement *billing.SettlementUseCase
	query      *billing.InvoiceQueryUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(
	checkout *billing.CheckoutUseCase,
	settlement *billing.SettlementUseCase,
	query *billing.InvoiceQueryUseCase,
) *BillHandler {
	return &BillHandler{checkout: checkout, settlement: settlement, query: query}
}

// Checkout registra una venta: resuelve cliente, descuenta stock y persiste
// la factura de forma atómica.
// POST /api/bills/checkout
func (h *BillHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkout.Checkout(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista todas las facturas con su cliente.
// GET /api/bills
func (h *BillHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get obtiene el detalle de una factura por referencia.
// GET /api/bills/:ref
func (h *BillHandler) Get(c *fiber.Ctx) error {
	ref := c.Params("ref")
	if ref == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "referencia requerida"})
	}
	out, err := h.query.Get(c.Context(), ref)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus liquida o ajusta el estado de pago de una factura.
// PATCH /api/bills/:ref/status
func (h *BillHandler) UpdateStatus(c *fiber.Ctx) error {
	ref := c.Params("ref")
	if ref == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "referencia requerida"})
	}
	var in dto.SettlementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.settlement.UpdateStatus(c.Context(), ref, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PublicInvoice devuelve la factura asociada a un token público, sin auth.
// El token es opaco y no adivinable; conocerlo ES la autorización.
// GET /api/bills/invoice/:token
func (h *BillHandler) PublicInvoice(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token requerido"})
	}
	out, err := h.query.Public(c.Context(), token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
