package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"belshop/models"
)

// All knowledge of the upstream markup lives in this file. The class names
// are undocumented and versioned only by the live sites; when they change,
// this adapter is the one place that should need touching.

const defaultStock = 100 // the catalog never exposes stock, fake value

const (
	selProductCard  = "div.producto"
	selProductName  = "h3.nombre"
	selProductPrice = "span.precio"

	selDetailName  = "h1.nombre-producto"
	selDetailDesc  = "div.descripcion-producto"
	selDetailPrice = "span.precio-producto"
	selDetailImage = "img.imagen-producto"
	selDetailSKU   = "span.sku-producto"

	selCategoryMenu = "ul.menu-categorias"

	selLegacyProduct  = "div.product"
	selLegacyName     = "h2.product-name"
	selLegacyPrice    = "span.price"
	selLegacyCategory = "li.category"
)

// extractProducts pulls product cards out of a catalog listing page. Cards
// that do not match the expected shape are skipped and logged; the rest of
// the batch survives.
func extractProducts(doc *goquery.Document, category string) []models.Product {
	if category == "" {
		category = "general"
	}

	products := make([]models.Product, 0)
	doc.Find(selProductCard).Each(func(_ int, card *goquery.Selection) {
		id := card.AttrOr("data-id", "")
		name := strings.TrimSpace(card.Find(selProductName).Text())
		if name == "" {
			log.WithField("product_id", id).Warn("skipping product card without a name")
			return
		}

		price := decimal.Zero
		if el := card.Find(selProductPrice); el.Length() > 0 {
			price = ParsePrice(el.Text())
		}

		p := models.Product{
			ID:       id,
			Name:     name,
			Price:    price,
			Category: category,
			Stock:    defaultStock,
		}
		if src, ok := card.Find("img").Attr("src"); ok {
			p.ImageURL = &src
		}
		products = append(products, p)
	})
	return products
}

// extractProductDetails reads a single product page. The name is required;
// everything else defaults to absent or zero.
func extractProductDetails(doc *goquery.Document, id string) (*models.Product, error) {
	name := strings.TrimSpace(doc.Find(selDetailName).Text())
	if name == "" {
		return nil, ErrNotFound
	}

	p := &models.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.Zero,
		Category: "general",
		Stock:    defaultStock,
	}
	if el := doc.Find(selDetailDesc); el.Length() > 0 {
		desc := strings.TrimSpace(el.Text())
		p.Description = &desc
	}
	if el := doc.Find(selDetailPrice); el.Length() > 0 {
		p.Price = ParsePrice(el.Text())
	}
	if src, ok := doc.Find(selDetailImage).Attr("src"); ok {
		p.ImageURL = &src
	}
	if el := doc.Find(selDetailSKU); el.Length() > 0 {
		sku := strings.TrimSpace(el.Text())
		p.SKU = &sku
	}
	return p, nil
}

func extractCategories(doc *goquery.Document) []string {
	categories := make([]string, 0)
	doc.Find(selCategoryMenu).Find("li a").Each(func(_ int, a *goquery.Selection) {
		if name := strings.TrimSpace(a.Text()); name != "" {
			categories = append(categories, name)
		}
	})
	return categories
}

// extractLegacyProducts reads product tiles off a public brand storefront.
// Tiles missing a name or price are dropped.
func extractLegacyProducts(doc *goquery.Document, brand string) []models.Product {
	products := make([]models.Product, 0)
	doc.Find(selLegacyProduct).Each(func(_ int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find(selLegacyName).Text())
		priceEl := card.Find(selLegacyPrice)
		if name == "" || priceEl.Length() == 0 {
			return
		}
		products = append(products, models.Product{
			Name:     name,
			Price:    ParsePrice(priceEl.Text()),
			Category: "general",
			Stock:    defaultStock,
			Brand:    brand,
		})
	})
	return products
}

func extractLegacyCategories(doc *goquery.Document, brand string) []models.Category {
	categories := make([]models.Category, 0)
	doc.Find(selLegacyCategory).Each(func(_ int, li *goquery.Selection) {
		if name := strings.TrimSpace(li.Find("a").Text()); name != "" {
			categories = append(categories, models.Category{Name: name, Brand: brand})
		}
	})
	return categories
}
