package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tokopos/tokopos-api/internal/application/auth"
	"github.com/tokopos/tokopos-api/internal/application/usecase"
	"github.com/tokopos/tokopos-api/internal/infrastructure/blob"
	infrapdf "github.com/tokopos/tokopos-api/internal/infrastructure/pdf"
	"github.com/tokopos/tokopos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tokopos/tokopos-api/internal/interfaces/http"
	"github.com/tokopos/tokopos-api/pkg/config"
	"github.com/tokopos/tokopos-api/pkg/logger"
	"github.com/tokopos/tokopos-api/pkg/vault"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	blobStore, err := blob.NewMinioStore(cfg.Blob)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to blob store")
	}

	accountRepo := postgres.NewAccountRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	credVault := vault.New()
	receiptGen := infrapdf.NewReceiptGenerator()

	authUC := auth.NewAuthUseCase(accountRepo, credVault)
	accountUC := usecase.NewAccountUseCase(accountRepo, credVault)
	itemUC := usecase.NewItemUseCase(itemRepo, blobStore)
	orderUC := usecase.NewOrderUseCase(orderRepo, receiptGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI in local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TokoPOS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		AccountUC: accountUC,
		ItemUC:    itemUC,
		OrderUC:   orderUC,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
