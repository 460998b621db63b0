package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tokopos/tokopos-api/internal/application/auth"
	"github.com/tokopos/tokopos-api/internal/application/usecase"
	"github.com/tokopos/tokopos-api/pkg/logger"
)

// RouterDeps dependencies for the router. Everything is constructed by the
// process entry point and passed down; nothing is ambient.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	AccountUC *usecase.AccountUseCase
	ItemUC    *usecase.ItemUseCase
	OrderUC   *usecase.OrderUseCase
	Log       *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	accountHandler := NewAccountHandler(deps.AccountUC, deps.Log)
	users := api.Group("/users")
	users.Put("/:id", accountHandler.Update)
	users.Delete("/:id", accountHandler.Delete)

	itemHandler := NewItemHandler(deps.ItemUC, deps.Log)
	items := api.Group("/items")
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.Log)
	orders := api.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)
}
