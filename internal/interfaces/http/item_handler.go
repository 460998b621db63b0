package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/application/usecase"
	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/pkg/logger"
)

// ItemHandler catalog endpoints. Create takes a multipart form because the
// item image travels in the same request.
type ItemHandler struct {
	uc  *usecase.ItemUseCase
	log *logger.Logger
}

// NewItemHandler builds the handler.
func NewItemHandler(uc *usecase.ItemUseCase, log *logger.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Create a catalog item with its image
// @Tags         items
// @Accept       multipart/form-data
// @Produce      json
// @Param        kodeToko    formData  string  true   "Store code"
// @Param        kodeCabang  formData  string  false  "Branch code"
// @Param        name        formData  string  true   "Item name"
// @Param        price       formData  string  true   "Unit price"
// @Param        file        formData  file    true   "Item image"
// @Success      201  {object}  dto.IDResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_REQUIRED", Message: "image file is required"})
	}

	price := decimal.Zero
	if raw := c.FormValue("price"); raw != "" {
		price, err = decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price must be numeric"})
		}
	}

	in := dto.CreateItemRequest{
		KodeToko:   c.FormValue("kodeToko"),
		KodeCabang: c.FormValue("kodeCabang"),
		Name:       c.FormValue("name"),
		Price:      price,
	}

	file, err := fileHeader.Open()
	if err != nil {
		return internalError(c, h.log, "open upload", err)
	}
	defer file.Close()

	id, err := h.uc.Create(c.Context(), in, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name and kodeToko are required"})
		}
		return internalError(c, h.log, "create item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// List godoc
// @Summary      List catalog items for a store, optionally narrowed to a branch
// @Tags         items
// @Produce      json
// @Param        kodeToko    query  string  true   "Store code"
// @Param        kodeCabang  query  string  false  "Branch code"
// @Success      200  {array}   dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("kodeToko"), c.Query("kodeCabang"))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			// No store code means no addressable collection.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STORE_CODE_REQUIRED", Message: "kodeToko is required"})
		}
		return internalError(c, h.log, "list items", err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get one catalog item
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item not found"})
		}
		return internalError(c, h.log, "get item", err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Partially update a catalog item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Item ID"
// @Param        body  body  dto.UpdateItemRequest  true  "Fields to change"
// @Success      200  {object}  dto.IDResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	id, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FIELDS", Message: "no fields supplied"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item not found"})
		default:
			return internalError(c, h.log, "update item", err)
		}
	}
	return c.JSON(dto.IDResponse{ID: id})
}

// Delete godoc
// @Summary      Delete a catalog item
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return internalError(c, h.log, "delete item", err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
