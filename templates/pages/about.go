package pages

import (
	"agenz_site/content"
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// About covers the company story, values and milestones
func About(p Page, site content.Site) g.Node {
	return Layout(p,
		h.Section(
			h.Class("page-hero"),
			h.Div(
				h.Class("container"),
				h.H1(g.Text("We build growth systems, not campaigns")),
				h.P(h.Class("lead"), g.Text(site.Description)),
				StatGrid(site.AboutStats),
			),
		),
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container"),
				SectionHeading("Our values", "What drives us", ""),
				h.Div(
					h.Class("card-grid"),
					g.Group(g.Map(site.Values, func(v content.Value) g.Node {
						return h.Div(
							h.Class("card"),
							h.Div(h.Class("card-icon"), Icon(v.Icon, "", "")),
							h.H3(g.Text(v.Title)),
							h.P(g.Text(v.Description)),
						)
					})),
				),
			),
		),
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container narrow"),
				SectionHeading("Our journey", "From solar specialists to growth engineers", ""),
				h.Ol(
					h.Class("timeline"),
					g.Group(g.Map(site.Timeline, func(m content.Milestone) g.Node {
						return h.Li(
							h.Span(h.Class("timeline-year"), g.Text(m.Year)),
							h.H3(g.Text(m.Title)),
							h.P(g.Text(m.Description)),
						)
					})),
				),
			),
		),
		LogoTicker(site.Ticker),
		g.If(site.ProfileURL != "", h.P(
			h.Class("center"),
			h.A(h.Href(site.ProfileURL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text("View our company profile →")),
		)),
		CTASection(p, "Let's build your growth system", "Tell us about your business and we'll take it from there."),
	)
}
