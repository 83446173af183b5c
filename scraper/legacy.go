package scraper

import (
	"bytes"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"belshop/metrics"
	"belshop/models"
)

var defaultBrands = map[string]string{
	"esika":  "https://www.esika.com/pe/",
	"lbel":   "https://www.lbel.com/pe/",
	"cyzone": "https://www.cyzone.com/pe/",
}

// Legacy scrapes the public brand storefronts directly, without login. It
// predates the session-based catalog and survives behind the SCRAPE_MODE
// flag because it is unclear which path production actually uses.
type Legacy struct {
	client *resty.Client
	brands map[string]string
}

// NewLegacy builds the storefront scraper. A nil brands map selects the
// default brand sites.
func NewLegacy(brands map[string]string) *Legacy {
	if brands == nil {
		brands = defaultBrands
	}
	return &Legacy{
		client: resty.New().
			SetRetryCount(0).
			SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
		brands: brands,
	}
}

// GetProducts collects product tiles from every brand storefront. A brand
// that fails to fetch or parse is skipped; the others still contribute.
func (l *Legacy) GetProducts() []models.Product {
	products := make([]models.Product, 0)
	for brand, baseURL := range l.brands {
		doc, ok := l.fetchBrand(brand, baseURL)
		if !ok {
			continue
		}
		products = append(products, extractLegacyProducts(doc, brand)...)
	}
	return products
}

func (l *Legacy) GetCategories() []models.Category {
	categories := make([]models.Category, 0)
	for brand, baseURL := range l.brands {
		doc, ok := l.fetchBrand(brand, baseURL)
		if !ok {
			continue
		}
		categories = append(categories, extractLegacyCategories(doc, brand)...)
	}
	return categories
}

func (l *Legacy) fetchBrand(brand, baseURL string) (*goquery.Document, bool) {
	resp, err := l.client.R().Get(baseURL)
	if err != nil {
		log.WithError(err).WithField("brand", brand).Warn("skipping brand storefront")
		metrics.ScrapeRequests.WithLabelValues("legacy", "error").Inc()
		return nil, false
	}
	if resp.StatusCode() != http.StatusOK {
		log.WithFields(log.Fields{"brand": brand, "status": resp.StatusCode()}).Warn("skipping brand storefront")
		metrics.ScrapeRequests.WithLabelValues("legacy", "error").Inc()
		return nil, false
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		log.WithError(err).WithField("brand", brand).Warn("skipping brand storefront")
		metrics.ScrapeRequests.WithLabelValues("legacy", "error").Inc()
		return nil, false
	}
	metrics.ScrapeRequests.WithLabelValues("legacy", "ok").Inc()
	return doc, true
}
