package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"belshop/metrics"
	"belshop/models"
	"belshop/scraper"
)

type OrderController struct {
	Catalog  CatalogSource
	Notifier Notifier
}

// POST /orders
func (oc *OrderController) CreateOrder(c *fiber.Ctx) error {
	var req models.OrderCreate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "order has no items"})
	}

	// Total is the server-side sum over the line items; a client-supplied
	// total field would be ignored.
	total := decimal.Zero
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "quantity must be positive"})
		}
		if _, err := oc.Catalog.GetProductDetails(item.ProductID); err != nil {
			if errors.Is(err, scraper.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": fmt.Sprintf("Product %s not found", item.ProductID),
				})
			}
			return scrapeError(c, err)
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &models.Order{
		OrderCreate: req,
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		Total:       total,
		Status:      "pending",
	}

	// Notification failure never blocks the order.
	if !oc.Notifier.SendOrderNotification(order) {
		log.WithField("order_id", order.ID).Warn("failed to send order notification")
	}
	metrics.OrdersCreated.Inc()

	return c.Status(fiber.StatusCreated).JSON(order)
}
