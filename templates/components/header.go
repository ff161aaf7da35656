package components

import (
	"strings"

	"agenz_site/content"
	"agenz_site/services/i18n"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SiteHeader is the top navigation with the services mega menu and language switch
func SiteHeader(p Page) g.Node {
	return h.Header(
		h.Class("site-header"),
		h.Div(
			h.Class("container header-inner"),
			h.A(h.Href("/"), h.Class("brand"), g.Text(p.Site.Name)),
			h.Button(
				h.Type("button"),
				h.Class("menu-toggle"),
				g.Attr("data-menu-toggle", ""),
				g.Attr("aria-controls", "primary-nav"),
				g.Attr("aria-expanded", "false"),
				Icon("menu-2", "", "Menu"),
			),
			h.Nav(
				h.ID("primary-nav"),
				h.Class("primary-nav"),
				h.Ul(g.Group(g.Map(p.Site.Nav, func(link content.Link) g.Node {
					return navItem(p, link)
				}))),
				languageSwitch(p),
				LeadButton(p, p.T("nav.cta"), "btn btn-primary btn-sm"),
			),
		),
	)
}

func navItem(p Page, link content.Link) g.Node {
	active := p.Path == link.Href || strings.HasPrefix(p.Path, link.Href+"/")
	anchor := h.A(
		h.Href(link.Href),
		g.If(active, g.Attr("aria-current", "page")),
		g.Text(link.Name),
	)
	if !link.Dropdown {
		return h.Li(anchor)
	}
	return h.Li(
		h.Class("has-dropdown"),
		anchor,
		h.Div(
			h.Class("mega-menu"),
			g.Group(g.Map(p.Site.ServiceMenu, func(group content.LinkGroup) g.Node {
				return h.Div(
					h.Class("mega-menu-group"),
					h.P(h.Class("mega-menu-title"), g.Text(group.Title)),
					h.Ul(g.Group(g.Map(group.Items, func(item content.Link) g.Node {
						return h.Li(h.A(h.Href(item.Href), Icon(item.Icon, "", ""), g.Text(item.Name)))
					}))),
				)
			})),
		),
	)
}

func languageSwitch(p Page) g.Node {
	return h.Div(
		h.Class("lang-switch"),
		g.Attr("aria-label", p.T("nav.language")),
		g.Group(g.Map(i18n.SupportedLocales(), func(lang string) g.Node {
			return h.A(
				h.Href(p.Path+"?lang="+lang),
				g.If(lang == p.Locale, g.Attr("aria-current", "true")),
				g.Text(strings.ToUpper(lang)),
			)
		})),
	)
}

// SiteFooter lists the footer link columns, contact details and social links
func SiteFooter(p Page) g.Node {
	site := p.Site
	return h.Footer(
		h.Class("site-footer"),
		h.Div(
			h.Class("container footer-grid"),
			h.Div(
				h.A(h.Href("/"), h.Class("brand"), g.Text(site.Name)),
				h.P(g.Text(p.T("footer.tagline"))),
				SocialLinks(site.Social),
			),
			footerColumn(p.T("nav.services"), site.Footer.Services),
			footerColumn("Company", site.Footer.Company),
			footerColumn("Resources", site.Footer.Resources),
		),
		h.Div(
			h.Class("container footer-bottom"),
			h.P(g.Textf("© %d %s. %s", currentYear(), site.Name, p.T("footer.rights"))),
		),
	)
}

func footerColumn(title string, links []content.Link) g.Node {
	return h.Div(
		h.P(h.Class("footer-title"), g.Text(title)),
		h.Ul(g.Group(g.Map(links, func(link content.Link) g.Node {
			return h.Li(h.A(h.Href(link.Href), g.Text(link.Name)))
		}))),
	)
}

// SocialLinks renders icon links that open in a new tab
func SocialLinks(links []content.Link) g.Node {
	return h.Ul(
		h.Class("social-links"),
		g.Group(g.Map(links, func(link content.Link) g.Node {
			return h.Li(h.A(
				h.Href(link.Href),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				Icon(link.Icon, "", link.Name),
			))
		})),
	)
}
