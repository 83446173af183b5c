package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"belshop/models"
	"belshop/scraper"
)

// CatalogSource is the scrape-backed product source the handlers read from.
type CatalogSource interface {
	GetCatalog(category string, page int) ([]models.Product, error)
	GetProductDetails(id string) (*models.Product, error)
	GetCategories() ([]string, error)
}

// BrandSource is the legacy unauthenticated storefront scraper.
type BrandSource interface {
	GetProducts() []models.Product
	GetCategories() []models.Category
}

// Authenticator checks shop credentials against the upstream site.
type Authenticator interface {
	Login() bool
}

// Notifier relays a created order to the shop owner.
type Notifier interface {
	SendOrderNotification(order *models.Order) bool
}

// scrapeError maps classified scrape failures onto HTTP responses. Unknown
// errors become a generic 500; the detail goes to the log, not the client.
func scrapeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scraper.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	case errors.Is(err, scraper.ErrAuth):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upstream authentication failed"})
	case errors.Is(err, scraper.ErrUpstream):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upstream site unavailable"})
	default:
		log.WithError(err).Error("unexpected error handling request")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
