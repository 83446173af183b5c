package main

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"

	"belshop/config"
	"belshop/controllers"
	"belshop/notify"
	"belshop/routes"
	"belshop/scraper"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg := config.Load()

	if cfg.ScrapeUsername == "" || cfg.ScrapePassword == "" {
		log.Warn("scrape credentials not configured, upstream login will fail")
	}

	session := scraper.NewSession(cfg.ScrapeBaseURL, cfg.ScrapeUsername, cfg.ScrapePassword)
	catalog := scraper.NewCatalog(session)
	legacy := scraper.NewLegacy(nil)
	whatsapp := notify.NewWhatsApp(cfg.WhatsAppBaseURL, cfg.WhatsAppAPIKey, cfg.WhatsAppPhone)

	pc := &controllers.ProductController{Catalog: catalog, Legacy: legacy, LegacyMode: cfg.LegacyMode()}
	oc := &controllers.OrderController{Catalog: catalog, Notifier: whatsapp}
	tc := &controllers.TokenController{Auth: session, SecretKey: cfg.SecretKey, TokenExpiry: cfg.TokenExpiry()}

	app := fiber.New()

	allow := cfg.AllowOrigins
	if strings.TrimSpace(allow) == "" {
		// dev defaults
		allow = "http://127.0.0.1:5000,http://localhost:5000,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allow, // comma-separated
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Static("/static", "./static")

	routes.RegisterRoutes(app, cfg, pc, oc, tc)

	log.WithField("mode", cfg.ScrapeMode).Info("belshop API starting")
	log.Fatal(app.Listen(":" + cfg.Port))
}
