package handlers

import (
	"context"
	"io"
	"net/http"

	"agenz_site/config"
	"agenz_site/content"
	"agenz_site/middleware"
	"agenz_site/models"
	"agenz_site/services"
	"agenz_site/services/i18n"
	"agenz_site/templates/components"
	"agenz_site/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

var (
	// Content is the site content every page reads from
	Content *content.Store
	// Dispatcher forwards validated submissions to the intake endpoint
	Dispatcher *services.Dispatcher
)

// Setup wires the content store and dispatcher used by the handlers
func Setup(store *content.Store, dispatcher *services.Dispatcher) {
	Content = store
	Dispatcher = dispatcher
}

// getConfig returns the request's config, or an empty one outside the server
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok && cfg != nil {
		return cfg
	}
	return &config.Config{}
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// component adapts a gomponents node to templ. Nothing is written once the request is gone.
func component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// render writes node as an HTML response
func render(c echo.Context, status int, node g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component(node).Render(c.Request().Context(), c.Response().Writer)
}

// newPage collects the per-request values a full page needs
func newPage(c echo.Context, seo *models.SEO) components.Page {
	cfg := getConfig(c)
	locale := middleware.GetLocale(c)

	if seo == nil {
		seo = models.DefaultSEO(Content.Site.Name, Content.Site.Description)
	}
	seo.WithLocale(locale, alternateLocales(locale)...)

	return components.Page{
		SEO:              seo,
		Site:             &Content.Site,
		Locale:           locale,
		Path:             c.Request().URL.Path,
		CSRFToken:        middleware.GetCSRFToken(c),
		Nonce:            templ.GetNonce(c.Request().Context()),
		TurnstileSiteKey: turnstileSiteKey(cfg),
	}
}

// newFormView collects the per-request values a form fragment needs
func newFormView(c echo.Context, errs services.FieldErrors) components.FormView {
	return components.FormView{
		Locale:           middleware.GetLocale(c),
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: turnstileSiteKey(getConfig(c)),
		Errors:           errs,
	}
}

// turnstileSiteKey is empty unless the CAPTCHA can be verified
func turnstileSiteKey(cfg *config.Config) string {
	if !cfg.TurnstileEnabled() {
		return ""
	}
	return cfg.TurnstileSiteKey
}

func alternateLocales(locale string) []string {
	var alts []string
	for _, l := range i18n.SupportedLocales() {
		if l != locale {
			alts = append(alts, l)
		}
	}
	return alts
}

// notFound renders the branded 404 page
func notFound(c echo.Context) error {
	seo := models.DefaultSEO("Page Not Found | "+Content.Site.Name, Content.Site.Description).WithNoIndex()
	return render(c, http.StatusNotFound, pages.NotFound(newPage(c, seo)))
}
