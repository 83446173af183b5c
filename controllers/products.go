package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ProductController struct {
	Catalog    CatalogSource
	Legacy     BrandSource
	LegacyMode bool
}

// GET /products?category&page
func (pc *ProductController) GetProducts(c *fiber.Ctx) error {
	if pc.LegacyMode {
		return c.JSON(pc.Legacy.GetProducts())
	}

	category := c.Query("category")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	products, err := pc.Catalog.GetCatalog(category, page)
	if err != nil {
		return scrapeError(c, err)
	}
	return c.JSON(products)
}

// GET /products/:id
func (pc *ProductController) GetProduct(c *fiber.Ctx) error {
	product, err := pc.Catalog.GetProductDetails(c.Params("id"))
	if err != nil {
		return scrapeError(c, err)
	}
	return c.JSON(product)
}

// GET /categories
func (pc *ProductController) GetCategories(c *fiber.Ctx) error {
	if pc.LegacyMode {
		return c.JSON(pc.Legacy.GetCategories())
	}

	categories, err := pc.Catalog.GetCategories()
	if err != nil {
		return scrapeError(c, err)
	}
	return c.JSON(categories)
}
