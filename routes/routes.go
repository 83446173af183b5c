package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"belshop/config"
	"belshop/controllers"
	"belshop/middleware"
)

func RegisterRoutes(app *fiber.App, cfg config.Settings, pc *controllers.ProductController, oc *controllers.OrderController, tc *controllers.TokenController) {

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Belcorp Shop API"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// auth
	app.Post("/token", tc.IssueToken)

	auth := middleware.JWT(cfg.SecretKey)

	// the legacy storefront variant serves the listing unauthenticated
	catalogAuth := auth
	if cfg.LegacyMode() {
		catalogAuth = func(c *fiber.Ctx) error { return c.Next() }
	}

	// catalog
	app.Get("/products", catalogAuth, pc.GetProducts)
	app.Get("/products/:id", auth, pc.GetProduct)
	app.Get("/categories", catalogAuth, pc.GetCategories)

	// orders
	app.Post("/orders", auth, oc.CreateOrder)
}
