package scraper

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"belshop/metrics"
	"belshop/models"
)

// Catalog scrapes the authenticated upstream catalog through a shared
// Session. Every call re-fetches live HTML; there is no cache.
type Catalog struct {
	session *Session
}

func NewCatalog(session *Session) *Catalog {
	return &Catalog{session: session}
}

// ensureAuth re-logs-in on demand before every catalog-facing operation.
func (c *Catalog) ensureAuth() error {
	if c.session.IsAuthenticated() {
		return nil
	}
	if !c.session.Login() {
		log.Error("failed to authenticate against upstream catalog")
		return ErrAuth
	}
	return nil
}

// GetCatalog lists products, optionally scoped to a category segment and
// always carrying a page query parameter.
func (c *Catalog) GetCatalog(category string, page int) ([]models.Product, error) {
	if err := c.ensureAuth(); err != nil {
		metrics.ScrapeRequests.WithLabelValues("catalog", "auth_error").Inc()
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	path := "/Catalogo"
	if category != "" {
		path += "/Categoria/" + category
	}
	doc, err := c.fetch("catalog", path, map[string]string{"pagina": strconv.Itoa(page)})
	if err != nil {
		return nil, err
	}

	metrics.ScrapeRequests.WithLabelValues("catalog", "ok").Inc()
	return extractProducts(doc, category), nil
}

// GetProductDetails fetches a single product page. ErrNotFound when the
// upstream answers 404 or the page carries no product.
func (c *Catalog) GetProductDetails(id string) (*models.Product, error) {
	if err := c.ensureAuth(); err != nil {
		metrics.ScrapeRequests.WithLabelValues("product", "auth_error").Inc()
		return nil, err
	}

	resp, err := c.session.Get("/Producto/"+id, nil)
	if err != nil {
		log.WithError(err).WithField("product_id", id).Error("failed to fetch product page")
		metrics.ScrapeRequests.WithLabelValues("product", "error").Inc()
		return nil, ErrUpstream
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		log.WithFields(log.Fields{"status": resp.StatusCode(), "product_id": id}).Error("failed to fetch product page")
		metrics.ScrapeRequests.WithLabelValues("product", "error").Inc()
		return nil, ErrUpstream
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		log.WithError(err).Error("failed to parse product page")
		metrics.ScrapeRequests.WithLabelValues("product", "error").Inc()
		return nil, ErrUpstream
	}

	metrics.ScrapeRequests.WithLabelValues("product", "ok").Inc()
	return extractProductDetails(doc, id)
}

// GetCategories reads the category menu off the catalog root page.
func (c *Catalog) GetCategories() ([]string, error) {
	if err := c.ensureAuth(); err != nil {
		metrics.ScrapeRequests.WithLabelValues("categories", "auth_error").Inc()
		return nil, err
	}

	doc, err := c.fetch("categories", "/Catalogo", nil)
	if err != nil {
		return nil, err
	}

	metrics.ScrapeRequests.WithLabelValues("categories", "ok").Inc()
	return extractCategories(doc), nil
}

func (c *Catalog) fetch(op, path string, query map[string]string) (*goquery.Document, error) {
	resp, err := c.session.Get(path, query)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("upstream fetch failed")
		metrics.ScrapeRequests.WithLabelValues(op, "error").Inc()
		return nil, ErrUpstream
	}
	if resp.StatusCode() != http.StatusOK {
		log.WithFields(log.Fields{"status": resp.StatusCode(), "path": path}).Error("upstream fetch failed")
		metrics.ScrapeRequests.WithLabelValues(op, "error").Inc()
		return nil, ErrUpstream
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		log.WithError(err).WithField("path", path).Error("failed to parse upstream page")
		metrics.ScrapeRequests.WithLabelValues(op, "error").Inc()
		return nil, ErrUpstream
	}
	return doc, nil
}
