package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/application/usecase"
	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/internal/observability/metrics"
	"github.com/tokopos/tokopos-api/pkg/logger"
)

// OrderHandler transaction endpoints.
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	log *logger.Logger
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *usecase.OrderUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Record a completed sale
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Order payload"
// @Success      201  {object}  dto.IDResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kodeToko is required"})
		}
		return internalError(c, h.log, "create order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// List godoc
// @Summary      List orders for a store, optionally narrowed to a branch
// @Tags         orders
// @Produce      json
// @Param        kodeToko    query  string  true   "Store code"
// @Param        kodeCabang  query  string  false  "Branch code"
// @Success      200  {array}   dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("kodeToko"), c.Query("kodeCabang"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STORE_CODE_REQUIRED", Message: "kodeToko is required"})
		case errors.Is(err, domain.ErrNotFound):
			// An empty scope reads as no history, not an empty page.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no orders found"})
		default:
			return internalError(c, h.log, "list orders", err)
		}
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get one order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
		}
		return internalError(c, h.log, "get order", err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Render the printable receipt for an order
// @Tags         orders
// @Produce      application/pdf
// @Param        id  path  string  true  "Order ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Receipt(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
		}
		return internalError(c, h.log, "render receipt", err)
	}
	metrics.ObserveReceiptRendered()
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="receipt.pdf"`)
	return c.Send(pdfBytes)
}
