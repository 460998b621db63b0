package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/application/usecase"
	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/pkg/logger"
)

// AccountHandler account maintenance (update, delete).
type AccountHandler struct {
	uc  *usecase.AccountUseCase
	log *logger.Logger
}

// NewAccountHandler builds the handler.
func NewAccountHandler(uc *usecase.AccountUseCase, log *logger.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, log: log}
}

// Update godoc
// @Summary      Partially update an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Account ID"
// @Param        body  body  dto.UpdateAccountRequest  true  "Fields to change; password is re-hashed"
// @Success      200   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FIELDS", Message: "no fields supplied"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "account not found"})
		default:
			return internalError(c, h.log, "update account", err)
		}
	}
	return c.JSON(dto.IDResponse{ID: out})
}

// Delete godoc
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "Account ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "account not found"})
		}
		return internalError(c, h.log, "delete account", err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
