package components

import (
	"strings"
	"testing"
	"time"

	"agenz_site/content"
	"agenz_site/models"
	"agenz_site/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestLogoTickerRendersTwoSequences(t *testing.T) {
	ticker := content.Ticker{
		Label: "Trusted by",
		Logos: []content.Logo{
			{Src: "/static/img/partners/a.png", Alt: "Alpha"},
			{Src: "/static/img/partners/b.png", Alt: "Beta", Href: "https://beta.example"},
		},
	}

	html := render(t, LogoTicker(ticker))

	assert.Equal(t, 2, strings.Count(html, `class="ticker-sequence"`))
	assert.Equal(t, 1, strings.Count(html, `data-ticker-segment`))
	assert.Equal(t, 1, strings.Count(html, `aria-hidden="true"`))
	assert.Equal(t, 2, strings.Count(html, `alt="Alpha"`))
	assert.Contains(t, html, "--ticker-duration: 22s")
	assert.Contains(t, html, "--ticker-logo-height: 56px")
	assert.Contains(t, html, "--ticker-card-height: 96px")
	assert.Contains(t, html, `href="https://beta.example"`)
	assert.Contains(t, html, `tabindex="-1"`)
}

func TestLogoTickerEmpty(t *testing.T) {
	assert.Nil(t, LogoTicker(content.Ticker{}))
}

func TestLeadFormShowsErrorsAndValues(t *testing.T) {
	form := services.LeadForm{FullName: "Jane", Email: "jane@", SourcePage: "/pricing", Budget: "5k-15k"}
	view := FormView{Locale: "en", CSRFToken: "tok", Errors: form.Validate()}

	html := render(t, LeadForm(view, form))

	assert.Contains(t, html, `hx-post="/lead-form"`)
	assert.Contains(t, html, `hx-disabled-elt="find button[type=&#39;submit&#39;]"`)
	assert.Contains(t, html, `name="_csrf" value="tok"`)
	assert.Contains(t, html, `name="sourcePage" value="/pricing"`)
	assert.Contains(t, html, `value="Jane"`)
	assert.Contains(t, html, "Please enter a valid email")
	assert.Contains(t, html, "Phone number is required")
	assert.Contains(t, html, "Company name is required")
	assert.Contains(t, html, "Please select a service")
	assert.NotContains(t, html, "Please select your budget")
	assert.Contains(t, html, `<option value="5k-15k" selected>`)
	assert.NotContains(t, html, "cf-turnstile")
}

func TestFreshLeadFormHasNoErrors(t *testing.T) {
	html := render(t, LeadForm(FormView{Locale: "en", TurnstileSiteKey: "site"}, services.LeadForm{}))

	assert.NotContains(t, html, "field-error")
	assert.NotContains(t, html, "aria-invalid")
	assert.Contains(t, html, `data-sitekey="site"`)
}

func TestLeadFormTranslated(t *testing.T) {
	html := render(t, LeadFormSuccess("ms"))
	assert.Contains(t, html, "Terima Kasih!")
	assert.Contains(t, html, "data-lead-close")
}

func TestContactFormSuccessOffersFreshForm(t *testing.T) {
	html := render(t, ContactFormSuccess("en"))
	assert.Contains(t, html, "Message Sent!")
	assert.Contains(t, html, `hx-get="/contact/form"`)
	assert.Contains(t, html, "Send another message")
}

func TestContactFormOptionalPhone(t *testing.T) {
	form := services.ContactForm{Name: "Jane", Email: "jane@co.my", Phone: "abc"}
	html := render(t, ContactForm(FormView{Locale: "en", Errors: form.Validate()}, form))

	assert.Contains(t, html, "Please enter a valid phone number")
	assert.Contains(t, html, "Message is required")
	assert.Contains(t, html, "General Inquiry")
}

func TestSEOHeadArticle(t *testing.T) {
	seo := models.DefaultSEO("Post | Agenz", "desc").
		WithCanonical("https://agenz.my/blog/x").
		WithOGImage("https://img/x.png")
	seo.WithArticle("Agenz Team", mustDate(t, "2025-01-15"))

	html := render(t, g.El("head", SEOHead(seo)))

	assert.Contains(t, html, "<title>Post | Agenz</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://agenz.my/blog/x">`)
	assert.Contains(t, html, `hreflang="ms"`)
	assert.Contains(t, html, `content="article"`)
	assert.Contains(t, html, `property="article:author" content="Agenz Team"`)
	assert.Contains(t, html, `content="index, follow"`)
}

func TestLeadButtonEscapesSourcePage(t *testing.T) {
	html := render(t, LeadButton(Page{Locale: "en", Path: "/blog/a b"}, "Go", ""))
	assert.Contains(t, html, `hx-get="/lead-form?sourcePage=%2Fblog%2Fa+b"`)
}

func TestCategoryFilterMarksCurrent(t *testing.T) {
	html := render(t, CategoryFilter("/blog", []string{content.AllCategories, "AI & Automation"}, "AI & Automation"))
	assert.Contains(t, html, `href="/blog?category=AI+%26+Automation"`)
	assert.Equal(t, 1, strings.Count(html, "aria-current"))
}

func TestOrganizationData(t *testing.T) {
	site := &content.Site{
		Name:        "Agenz",
		Description: "Growth </script> partner",
		Social: []content.Link{
			{Name: "Instagram", Href: "https://instagram.com/agenz"},
			{Name: "TikTok", Href: "#"},
		},
	}
	seo := models.DefaultSEO("Agenz", "").WithCanonical("https://agenz.test/")
	html := render(t, OrganizationData(Page{Site: site, SEO: seo, Nonce: "n1"}))

	assert.Contains(t, html, `type="application/ld+json"`)
	assert.Contains(t, html, `nonce="n1"`)
	assert.Contains(t, html, `"sameAs":["https://instagram.com/agenz"]`)
	assert.Contains(t, html, `"url":"https://agenz.test/"`)
	assert.NotContains(t, html, "</script> partner")
	assert.Nil(t, OrganizationData(Page{}))
}
