package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belshop/models"
	"belshop/scraper"
)

type stubLegacy struct {
	products   []models.Product
	categories []models.Category
}

func (s *stubLegacy) GetProducts() []models.Product    { return s.products }
func (s *stubLegacy) GetCategories() []models.Category { return s.categories }

func productApp(pc *ProductController) *fiber.App {
	app := fiber.New()
	app.Get("/products", pc.GetProducts)
	app.Get("/products/:id", pc.GetProduct)
	app.Get("/categories", pc.GetCategories)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestGetProductsListsCatalog(t *testing.T) {
	pc := &ProductController{Catalog: &stubCatalog{
		listing: []models.Product{
			{ID: "A", Name: "Perfume", Price: decimal.RequireFromString("10"), Category: "perfumes", Stock: 100},
		},
	}}
	app := productApp(pc)

	resp := get(t, app, "/products?category=perfumes&page=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Perfume", products[0].Name)
}

func TestGetProductsUpstreamErrorIs502(t *testing.T) {
	pc := &ProductController{Catalog: &stubCatalog{err: scraper.ErrUpstream}}
	app := productApp(pc)

	resp := get(t, app, "/products")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestGetProductsAuthErrorIs502(t *testing.T) {
	pc := &ProductController{Catalog: &stubCatalog{err: scraper.ErrAuth}}
	app := productApp(pc)

	resp := get(t, app, "/products")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestGetProductByID(t *testing.T) {
	pc := &ProductController{Catalog: &stubCatalog{products: knownProducts()}}
	app := productApp(pc)

	resp := get(t, app, "/products/A")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "A", p.ID)

	resp = get(t, app, "/products/NOPE")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetCategories(t *testing.T) {
	pc := &ProductController{Catalog: &stubCatalog{categories: []string{"Perfumes", "Maquillaje"}}}
	app := productApp(pc)

	resp := get(t, app, "/categories")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	assert.Equal(t, []string{"Perfumes", "Maquillaje"}, categories)
}

func TestLegacyModeServesBrandScrape(t *testing.T) {
	pc := &ProductController{
		Catalog: &stubCatalog{err: scraper.ErrUpstream}, // must never be hit
		Legacy: &stubLegacy{
			products:   []models.Product{{Name: "Labial", Brand: "esika", Price: decimal.RequireFromString("35.9")}},
			categories: []models.Category{{Name: "Fragancias", Brand: "cyzone"}},
		},
		LegacyMode: true,
	}
	app := productApp(pc)

	resp := get(t, app, "/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "esika", products[0].Brand)

	resp = get(t, app, "/categories")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var categories []models.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "cyzone", categories[0].Brand)
}
