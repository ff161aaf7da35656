package pages

import (
	"strings"

	"agenz_site/content"
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Pricing lists the retainer tiers, one-off services and pricing FAQ
func Pricing(p Page, pricing content.Pricing) g.Node {
	return Layout(p,
		h.Section(
			h.Class("page-hero"),
			h.Div(
				h.Class("container"),
				h.H1(g.Text("Simple, transparent pricing")),
				h.P(h.Class("lead"), g.Text("Monthly growth retainers with no hidden fees. Prepay and save.")),
			),
		),
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container"),
				h.Div(
					h.Class("tier-grid"),
					g.Group(g.Map(pricing.Tiers, func(t content.Tier) g.Node {
						return tierCard(p, t)
					})),
				),
				h.Div(
					h.Class("prepay-banner"),
					Icon("discount-check", "", ""),
					h.P(g.Text("Prepay 6 or 12 months and every plan's monthly discount applies for the whole term.")),
				),
			),
		),
		g.If(len(pricing.IndividualServices) > 0, h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container narrow"),
				SectionHeading("", "Individual services", "Need just one thing? Start with a single service."),
				h.Table(
					h.Class("price-table"),
					h.TBody(g.Group(g.Map(pricing.IndividualServices, func(s content.PricedService) g.Node {
						return h.Tr(
							h.Td(g.Text(s.Name)),
							h.Td(h.Class("price"), g.Text(s.Price+s.Unit)),
						)
					}))),
				),
			),
		)),
		g.If(len(pricing.FAQs) > 0, h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container narrow"),
				SectionHeading("FAQ", "Pricing questions", ""),
				FAQList(pricing.FAQs),
			),
		)),
		CTASection(p, "Not sure which plan fits?", "Book a free strategy call and we'll recommend the right setup."),
	)
}

func tierCard(p Page, t content.Tier) g.Node {
	return h.Div(
		h.Class(joinClass("card tier", highlightClass(t.Highlighted))),
		g.If(t.Badge != "", h.Span(h.Class("badge"), g.Text(t.Badge))),
		h.H3(g.Text(t.Name)),
		h.P(h.Class("tier-price"), h.Strong(g.Text(t.Price)), h.Span(g.Text(t.Period))),
		g.If(t.OneTime != "", h.P(h.Class("muted"), g.Text(t.OneTime))),
		g.If(t.Discount != "", h.P(h.Class("tier-discount"), g.Text("Prepay: "+t.Discount))),
		g.If(t.Contract != "", h.P(h.Class("muted"), g.Text(t.Contract))),
		h.Ul(h.Class("feature-list"), g.Group(g.Map(t.Features, func(f string) g.Node {
			return h.Li(Icon("check", "", ""), g.Text(f))
		}))),
		g.If(t.Guarantee, h.P(h.Class("tier-guarantee"), Icon("shield-check", "", ""), g.Text("Results guarantee"))),
		LeadButton(p, p.T("nav.cta"), classForTier(t)),
	)
}

func classForTier(t content.Tier) string {
	if t.Highlighted {
		return "btn btn-primary btn-block"
	}
	return "btn btn-secondary btn-block"
}

func highlightClass(on bool) string {
	if on {
		return "highlight"
	}
	return ""
}

func joinClass(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}
