package pages

import (
	"agenz_site/content"
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CaseStudies lists case studies filtered by category
func CaseStudies(p Page, studies []content.CaseStudy, categories []string, current string) g.Node {
	return Layout(p,
		h.Section(
			h.Class("page-hero"),
			h.Div(
				h.Class("container"),
				h.H1(g.Text("Real results for real businesses")),
				h.P(h.Class("lead"), g.Text("See how we've helped businesses across Malaysia grow with AI and automation.")),
			),
		),
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container"),
				CategoryFilter("/case-studies", categories, current),
				g.If(len(studies) == 0, h.P(h.Class("empty"), g.Text("No case studies in this category yet."))),
				h.Div(h.Class("card-grid"), g.Group(g.Map(studies, CaseStudyCard))),
			),
		),
		CTASection(p, "Want results like these?", "Let's talk about what we can build for your business."),
	)
}

// CaseStudyDetail is the page for one case study
func CaseStudyDetail(p Page, cs *content.CaseStudy) g.Node {
	return Layout(p,
		h.Section(
			h.Class("page-hero"),
			h.Div(
				h.Class("container"),
				h.A(h.Href("/case-studies"), h.Class("back-link"), Icon("arrow-left", "", ""), g.Text(" All case studies")),
				h.Span(h.Class("badge"), g.Text(cs.Category)),
				h.H1(g.Text(cs.Title)),
				h.P(h.Class("lead"), g.Text(cs.Summary)),
				h.Dl(
					h.Class("facts"),
					fact("Client", cs.Client),
					fact("Industry", cs.Industry),
					fact("Duration", cs.Duration),
				),
			),
		),
		h.Div(h.Class("container"), h.Img(h.Class("hero-image"), h.Src(cs.Image), h.Alt(cs.Title), g.Attr("data-dim-on-error", ""))),
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container narrow"),
				MetricList(cs.Highlights),
				h.H2(g.Text("The challenge")),
				h.P(g.Text(cs.Challenge)),
				h.H2(g.Text("Our solution")),
				h.Ul(h.Class("feature-list"), g.Group(g.Map(cs.Solution, func(s string) g.Node {
					return h.Li(Icon("check", "", ""), g.Text(s))
				}))),
				h.H2(g.Text("Results")),
				h.Div(
					h.Class("result-grid"),
					g.Group(g.Map(cs.Results, func(r content.Result) g.Node {
						return h.Div(
							h.Class("card result"),
							h.P(h.Class("stat-value"), g.Text(r.Value)),
							h.P(h.Class("stat-label"), g.Text(r.Metric)),
							g.If(r.Description != "", h.P(h.Class("muted"), g.Text(r.Description))),
						)
					})),
				),
				g.Iff(cs.Testimonial != nil, func() g.Node {
					return TestimonialCard(*cs.Testimonial)
				}),
				g.If(len(cs.Services) > 0, h.Div(
					h.H2(g.Text("Services used")),
					h.Ul(h.Class("chip-list"), g.Group(g.Map(cs.Services, func(name string) g.Node {
						return h.Li(h.Class("chip"), g.Text(name))
					}))),
				)),
			),
		),
		CTASection(p, "Want results like these?", "Let's talk about what we can build for your business."),
	)
}

func fact(label, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Div(h.Dt(g.Text(label)), h.Dd(g.Text(value)))
}
