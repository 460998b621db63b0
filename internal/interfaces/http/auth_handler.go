package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tokopos/tokopos-api/internal/application/auth"
	"github.com/tokopos/tokopos-api/internal/application/dto"
	"github.com/tokopos/tokopos-api/internal/domain"
	"github.com/tokopos/tokopos-api/internal/observability/metrics"
	"github.com/tokopos/tokopos-api/pkg/logger"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Register a store-owner or branch account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "kodeToko+namaToko for owner, kodeCabang+namaCabang for branch, plus username and password"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username and password are required"})
	}

	// The store pair wins when both pairs are present; checked in this order.
	var (
		uid string
		err error
	)
	switch {
	case in.KodeToko != "" && in.NamaToko != "":
		uid, err = h.uc.RegisterStore(c.Context(), dto.StoreRegistration{
			KodeToko: in.KodeToko,
			NamaToko: in.NamaToko,
			Username: in.Username,
			Password: in.Password,
		})
	case in.KodeCabang != "" && in.NamaCabang != "":
		uid, err = h.uc.RegisterBranch(c.Context(), dto.BranchRegistration{
			KodeToko:   in.KodeToko,
			KodeCabang: in.KodeCabang,
			NamaCabang: in.NamaCabang,
			Username:   in.Username,
			Password:   in.Password,
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "neither store nor branch identity supplied"})
	}
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "incomplete registration data"})
		}
		return internalError(c, h.log, "register", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{UID: uid})
}

// Login godoc
// @Summary      Verify credentials for a store or branch code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "kode, username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kode, username and password are required"})
		case errors.Is(err, domain.ErrUnauthorized):
			// One shared rejection for every failed factor.
			metrics.ObserveLogin("unauthorized")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid credentials"})
		default:
			metrics.ObserveLogin("error")
			return internalError(c, h.log, "login", err)
		}
	}
	metrics.ObserveLogin("success")
	return c.JSON(out)
}
