package components

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"agenz_site/content"
	"agenz_site/models"
	"agenz_site/services/i18n"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Page carries the per-request values every full page needs
type Page struct {
	SEO              *models.SEO
	Site             *content.Site
	Locale           string
	Path             string
	CSRFToken        string
	Nonce            string
	TurnstileSiteKey string
}

// T translates key in the page locale
func (p Page) T(key string) string {
	return i18n.Translate(p.Locale, key)
}

// Icon renders a Tabler icon through Iconify. An empty label hides it from assistive tech.
func Icon(name, class, label string) g.Node {
	classes := "iconify inline-block"
	if class != "" {
		classes += " " + class
	}
	return h.Span(
		h.Class(classes),
		g.Attr("data-icon", "tabler:"+name),
		g.If(label == "", g.Attr("aria-hidden", "true")),
		g.If(label != "", g.Group([]g.Node{g.Attr("role", "img"), g.Attr("aria-label", label)})),
	)
}

// SectionHeading is the eyebrow, title and intro used at the top of most sections
func SectionHeading(eyebrow, title, intro string) g.Node {
	return h.Div(
		h.Class("section-heading"),
		g.If(eyebrow != "", h.P(h.Class("eyebrow"), g.Text(eyebrow))),
		h.H2(g.Text(title)),
		g.If(intro != "", h.P(h.Class("lead"), g.Text(intro))),
	)
}

// LeadButton opens the lead form overlay, remembering the page it was opened from
func LeadButton(p Page, label, class string) g.Node {
	if class == "" {
		class = "btn btn-primary"
	}
	return h.Button(
		h.Type("button"),
		h.Class(class),
		g.Attr("data-lead-open", ""),
		g.Attr("hx-get", "/lead-form?sourcePage="+url.QueryEscape(p.Path)),
		g.Attr("hx-target", "#lead-modal-body"),
		g.Attr("hx-swap", "innerHTML"),
		g.Text(label),
	)
}

// CSRFField is the hidden token input checked by the CSRF middleware
func CSRFField(token string) g.Node {
	return h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(token))
}

func classes(parts ...string) string {
	return joinNonEmpty(" ", parts...)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func queryEscape(s string) string {
	return url.QueryEscape(s)
}

func px(n int) string {
	return fmt.Sprintf("%dpx", n)
}

func currentYear() int {
	return time.Now().Year()
}
