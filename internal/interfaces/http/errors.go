package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/pkg/logger"
)

// internalError logs the collaborator failure for operators and returns a
// generic 500 body; the cause never reaches the caller.
func internalError(c *fiber.Ctx, log *logger.Logger, op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("infrastructure failure")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "internal server error",
	})
}
