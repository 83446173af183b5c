package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogBuildsCategoryURL(t *testing.T) {
	up := newFakeUpstream(t)

	var gotPath, gotPage string
	up.mux.HandleFunc("/Catalogo/Categoria/perfumes", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPage = r.URL.Query().Get("pagina")
		fmt.Fprint(w, catalogPage)
	})

	c := NewCatalog(NewSession(up.srv.URL, "123456", "secret"))
	products, err := c.GetCatalog("perfumes", 2)
	require.NoError(t, err)

	assert.Equal(t, "/Catalogo/Categoria/perfumes", gotPath)
	assert.Equal(t, "2", gotPage)
	require.Len(t, products, 2)
	assert.Equal(t, "perfumes", products[0].Category)
}

func TestGetCatalogDefaultsToFirstPage(t *testing.T) {
	up := newFakeUpstream(t)

	var gotPage string
	up.mux.HandleFunc("/Catalogo", func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("pagina")
		fmt.Fprint(w, catalogPage)
	})

	c := NewCatalog(NewSession(up.srv.URL, "123456", "secret"))
	_, err := c.GetCatalog("", 0)
	require.NoError(t, err)
	assert.Equal(t, "1", gotPage)
}

func TestGetCatalogAuthFailure(t *testing.T) {
	up := newFakeUpstream(t)
	up.denyLogin = true

	c := NewCatalog(NewSession(up.srv.URL, "123456", "secret"))
	_, err := c.GetCatalog("", 1)
	assert.ErrorIs(t, err, ErrAuth)
}

func TestGetCatalogUpstreamFailure(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("/Catalogo", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := NewCatalog(NewSession(up.srv.URL, "123456", "secret"))
	_, err := c.GetCatalog("", 1)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGetProductDetails(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("/Producto/P001", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<h1 class="nombre-producto">Perfume Vibranza</h1>
			<span class="precio-producto">$ 89,90</span>
		</body></html>`)
	})

	c := NewCatalog(NewSession(up.srv.URL, "123456", "secret"))
	p, err := c.GetProductDetails("P001")
	require.NoError(t, err)
	assert.Equal(t, "P001", p.ID)
	assert.Equal(t, "Perfume Vibranza", p.Name)
	assert.True(t, decimal.RequireFromString("89.9").Equal(p.Price))
}

func TestGetProductDetailsNotFound(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("/Producto/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	c := NewCatalog(NewSession(up.srv.URL, "123456", "secret"))
	_, err := c.GetProductDetails("NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCategories(t *testing.T) {
	up := newFakeUpstream(t)
	up.mux.HandleFunc("/Catalogo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<ul class="menu-categorias">
				<li><a>Perfumes</a></li>
				<li><a>Maquillaje</a></li>
			</ul>
		</body></html>`)
	})

	c := NewCatalog(NewSession(up.srv.URL, "123456", "secret"))
	categories, err := c.GetCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Perfumes", "Maquillaje"}, categories)
}

func TestLegacyGetProductsSkipsDeadBrand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<div class="product">
				<h2 class="product-name">Labial Rouge</h2>
				<span class="price">S/ 35,90</span>
			</div>
		</body></html>`)
	}))
	defer srv.Close()

	l := NewLegacy(map[string]string{
		"esika": srv.URL,
		"dead":  "http://127.0.0.1:1",
	})

	products := l.GetProducts()
	require.Len(t, products, 1)
	assert.Equal(t, "esika", products[0].Brand)
	assert.Equal(t, "Labial Rouge", products[0].Name)
}

func TestLegacyGetCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<li class="category"><a>Fragancias</a></li>
			<li class="category"><a>Cuidado Personal</a></li>
		</body></html>`)
	}))
	defer srv.Close()

	l := NewLegacy(map[string]string{"cyzone": srv.URL})

	categories := l.GetCategories()
	require.Len(t, categories, 2)
	assert.Equal(t, "cyzone", categories[0].Brand)
}
