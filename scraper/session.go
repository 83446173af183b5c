package scraper

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

const authCookieName = ".ASPXAUTH"

// Session owns the cookie-bearing HTTP client used for every scrape call.
// One Session is shared by all request handlers; concurrent logins race on
// the shared cookie jar and can corrupt authentication state. Known
// limitation.
type Session struct {
	client   *resty.Client
	baseURL  string
	username string
	password string
}

func NewSession(baseURL, username, password string) *Session {
	jar, _ := cookiejar.New(nil)
	client := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetRetryCount(0).
		SetHeaders(map[string]string{
			"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.9,es-US;q=0.8,es;q=0.7",
		})

	return &Session{
		client:   client,
		baseURL:  baseURL,
		username: username,
		password: password,
	}
}

// Get issues a GET through the shared session, cookies included.
func (s *Session) Get(path string, query map[string]string) (*resty.Response, error) {
	req := s.client.R()
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	return req.Get(path)
}

// IsAuthenticated probes the authenticated landing page. True only when the
// probe returns 200 and the auth cookie is in the jar; transport errors are
// reported as false.
func (s *Session) IsAuthenticated() bool {
	resp, err := s.client.R().Get("/Inicio")
	if err != nil {
		log.WithError(err).Error("auth check failed")
		return false
	}
	return resp.StatusCode() == http.StatusOK && s.hasAuthCookie()
}

// Login fetches the login page, scrapes the anti-forgery token and posts the
// credential form. Single attempt, no retry; success is whatever
// IsAuthenticated says afterwards.
func (s *Session) Login() bool {
	resp, err := s.client.R().Get("/Login")
	if err != nil {
		log.WithError(err).Error("failed to fetch login page")
		return false
	}
	if resp.StatusCode() != http.StatusOK {
		log.WithField("status", resp.StatusCode()).Error("failed to fetch login page")
		return false
	}

	form := s.loginForm(antiForgeryToken(resp.String()))
	if _, err := s.client.R().SetFormData(form).Post("/Login/Login"); err != nil {
		log.WithError(err).Error("login request failed")
		return false
	}

	return s.IsAuthenticated()
}

func (s *Session) hasAuthCookie() bool {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return false
	}
	for _, c := range s.client.GetClient().Jar.Cookies(u) {
		if c.Name == authCookieName {
			return true
		}
	}
	return false
}

// loginForm mirrors the fixed form the upstream login endpoint expects. The
// Salt/ClaveSecreta/Key/Iv blobs and country constants are what the site
// serves every visitor; only the user code varies.
func (s *Session) loginForm(token string) map[string]string {
	return map[string]string{
		"returnUrl":                        "",
		"UsuarioExterno.Proveedor":         "",
		"UsuarioExterno.IdAplicacion":      "",
		"UsuarioExterno.Login":             "",
		"UsuarioExterno.Nombres":           "",
		"UsuarioExterno.Apellidos":         "",
		"UsuarioExterno.FechaNacimiento":   "",
		"UsuarioExterno.Correo":            "",
		"UsuarioExterno.Genero":            "",
		"UsuarioExterno.Ubicacion":         "",
		"UsuarioExterno.LinkPerfil":        "",
		"UsuarioExterno.FotoPerfil":        "",
		"UsuarioExterno.Redireccionar":     "true",
		"hdeCodigoISO":                     "CO",
		"PaisID":                           "4",
		"Salt":                             "2SXccYWpFDxepFgE+1kkQA==",
		"ClaveSecreta":                     "nYHNy0VEf28pU1Pn62ifyg==",
		"Key":                              "8IBfm92u6Bq5Aevxcpykukuc7JPaZVyutWWmUqeZNsE=",
		"Iv":                               "xLTp8isMN5WKWjLcqvmLrQ==",
		"CodigoISO":                        "CO",
		"CodigoUsuario":                    s.username,
		"__RequestVerificationToken":       token,
	}
}

// antiForgeryToken pulls the hidden verification input off the login page.
// Empty string when the input is absent.
func antiForgeryToken(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	val, _ := doc.Find(`input[name="__RequestVerificationToken"]`).Attr("value")
	return val
}
