package pages

import (
	"agenz_site/content"
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Home is the landing page
func Home(p Page, store *content.Store) g.Node {
	site := store.Site
	return Layout(p,
		hero(p, site),
		philosophy(site.Philosophy),
		LogoTicker(site.Ticker),
		capabilities(site.Capabilities),
		howItWorks(site.Steps),
		results(site),
		pricingTeaser(p, store.Pricing.Tiers),
		h.Section(
			h.Class("section"),
			h.ID("faq"),
			h.Div(
				h.Class("container narrow"),
				SectionHeading("FAQ", "Questions, answered", ""),
				FAQList(site.FAQs),
			),
		),
		CTASection(p, "Ready to build your growth system?", "Tell us where you want to grow and we'll map out the system that gets you there."),
	)
}

func hero(p Page, site content.Site) g.Node {
	return h.Section(
		h.Class("hero"),
		h.Div(
			h.Class("container"),
			h.P(h.Class("eyebrow"), g.Text(site.Tagline)),
			h.H1(g.Text("Autonomous growth systems for ambitious businesses")),
			h.P(h.Class("lead"), g.Text(site.Description)),
			h.Div(
				h.Class("hero-actions"),
				LeadButton(p, p.T("form.lead.submit"), "btn btn-primary btn-lg"),
				h.A(h.Href("/case-studies"), h.Class("btn btn-ghost btn-lg"), g.Text(p.T("nav.case_studies"))),
			),
			StatGrid(site.HeroStats),
		),
	)
}

func philosophy(paragraphs []content.Paragraph) g.Node {
	return h.Section(
		h.Class("section philosophy"),
		h.Div(
			h.Class("container narrow"),
			g.Group(g.Map(paragraphs, func(para content.Paragraph) g.Node {
				return h.P(
					h.Class(joinClass("philosophy-line", para.Kind, highlightClass(para.Highlight))),
					g.Text(para.Text),
				)
			})),
		),
	)
}

func capabilities(caps []content.Capability) g.Node {
	return h.Section(
		h.Class("section"),
		h.ID("services"),
		h.Div(
			h.Class("container"),
			SectionHeading("What we do", "Four systems, one growth engine", ""),
			h.Div(
				h.Class("card-grid"),
				g.Group(g.Map(caps, func(c content.Capability) g.Node {
					return h.A(
						h.Class("card capability"),
						h.Href(c.Href),
						h.Div(h.Class("card-icon"), Icon(c.Icon, "", "")),
						h.H3(g.Text(c.Title)),
						h.P(g.Text(c.Description)),
						h.Ul(h.Class("feature-list"), g.Group(g.Map(c.Features, func(f string) g.Node {
							return h.Li(Icon("check", "", ""), g.Text(f))
						}))),
					)
				})),
			),
		),
	)
}

func howItWorks(steps []content.Step) g.Node {
	return h.Section(
		h.Class("section"),
		h.ID("how-it-works"),
		h.Div(
			h.Class("container"),
			SectionHeading("How it works", "From discovery to autopilot", ""),
			h.Ol(
				h.Class("steps"),
				g.Group(g.Map(steps, func(s content.Step) g.Node {
					return h.Li(
						h.Span(h.Class("step-number"), g.Text(s.Number)),
						Icon(s.Icon, "step-icon", ""),
						h.H3(g.Text(s.Title)),
						h.P(g.Text(s.Description)),
					)
				})),
			),
		),
	)
}

func results(site content.Site) g.Node {
	return h.Section(
		h.Class("section results"),
		h.Div(
			h.Class("container"),
			SectionHeading("Results", "Numbers our clients care about", ""),
			StatGrid(site.ResultStats),
			h.Div(
				h.Class("card-grid"),
				g.Group(g.Map(site.Testimonials, TestimonialCard)),
			),
		),
	)
}

func pricingTeaser(p Page, tiers []content.Tier) g.Node {
	return h.Section(
		h.Class("section"),
		h.ID("pricing"),
		h.Div(
			h.Class("container"),
			SectionHeading(p.T("nav.pricing"), "Plans that scale with you", ""),
			h.Div(
				h.Class("tier-grid"),
				g.Group(g.Map(tiers, func(t content.Tier) g.Node {
					return tierCard(p, t)
				})),
			),
			h.P(h.Class("center"), h.A(h.Href("/pricing"), g.Text("Compare all plans →"))),
		),
	)
}
