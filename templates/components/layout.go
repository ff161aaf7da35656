package components

import (
	"time"

	"agenz_site/middleware"
	"agenz_site/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Layout wraps page content in the document shell with header, footer and the lead form overlay
func Layout(p Page, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			h.Lang(p.Locale),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				SEOHead(p.SEO),
				OrganizationData(p),
				h.Link(h.Rel("icon"), h.Href(middleware.AssetURL("images/favicon.png"))),
				h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL("css/site.css"))),
				h.Script(h.Src(htmxSrc), g.Attr("nonce", p.Nonce), h.Defer()),
				h.Script(h.Src("https://code.iconify.design/3/3.1.1/iconify.min.js"), g.Attr("nonce", p.Nonce), h.Defer()),
				g.If(p.TurnstileSiteKey != "",
					h.Script(h.Src("https://challenges.cloudflare.com/turnstile/v0/api.js"), g.Attr("nonce", p.Nonce), h.Async(), h.Defer()),
				),
			),
			h.Body(
				g.Attr("hx-headers", `{"X-CSRF-Token": "`+p.CSRFToken+`"}`),
				SiteHeader(p),
				h.Main(h.ID("main"), g.Group(content)),
				SiteFooter(p),
				LeadModal(p),
				h.Script(h.Src(middleware.AssetURL("js/app.js")), g.Attr("nonce", p.Nonce), h.Defer()),
			),
		),
	})
}

// SEOHead renders title, description, canonical, Open Graph and Twitter tags
func SEOHead(seo *models.SEO) g.Node {
	if seo == nil {
		return nil
	}
	return g.Group([]g.Node{
		h.TitleEl(g.Text(seo.Title)),
		h.Meta(h.Name("description"), h.Content(seo.Description)),
		g.If(seo.Keywords != "", h.Meta(h.Name("keywords"), h.Content(seo.Keywords))),
		h.Meta(h.Name("robots"), h.Content(seo.Robots())),
		g.If(seo.Canonical != "", g.Group([]g.Node{
			h.Link(h.Rel("canonical"), h.Href(seo.Canonical)),
			h.Link(h.Rel("alternate"), g.Attr("hreflang", seo.Locale), h.Href(seo.Canonical+"?lang="+seo.Locale)),
			g.Group(g.Map(seo.AltLocales, func(alt string) g.Node {
				return h.Link(h.Rel("alternate"), g.Attr("hreflang", alt), h.Href(seo.Canonical+"?lang="+alt))
			})),
		})),
		h.Meta(g.Attr("property", "og:title"), h.Content(seo.Title)),
		h.Meta(g.Attr("property", "og:description"), h.Content(seo.Description)),
		h.Meta(g.Attr("property", "og:type"), h.Content(seo.OGType)),
		h.Meta(g.Attr("property", "og:locale"), h.Content(seo.Locale)),
		g.If(seo.Canonical != "", h.Meta(g.Attr("property", "og:url"), h.Content(seo.Canonical))),
		g.If(seo.OGImage != "", h.Meta(g.Attr("property", "og:image"), h.Content(seo.OGImage))),
		g.If(seo.OGType == "article" && !seo.PublishedAt.IsZero(),
			h.Meta(g.Attr("property", "article:published_time"), h.Content(seo.PublishedAt.Format(time.RFC3339))),
		),
		g.If(seo.OGType == "article" && seo.Author != "",
			h.Meta(g.Attr("property", "article:author"), h.Content(seo.Author)),
		),
		h.Meta(h.Name("twitter:card"), h.Content(seo.TwitterCard)),
		h.Meta(h.Name("twitter:title"), h.Content(seo.Title)),
		h.Meta(h.Name("twitter:description"), h.Content(seo.Description)),
		g.If(seo.OGImage != "", h.Meta(h.Name("twitter:image"), h.Content(seo.OGImage))),
	})
}
