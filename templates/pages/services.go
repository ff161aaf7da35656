package pages

import (
	"agenz_site/content"
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ServicesIndex lists every service grouped by category. focus scrolls to one category.
func ServicesIndex(p Page, store *content.Store, focus string) g.Node {
	return Layout(p,
		h.Section(
			h.Class("page-hero"),
			h.Div(
				h.Class("container"),
				h.H1(g.Text("Services built to grow your business")),
				h.P(h.Class("lead"), g.Text("AI creatives, digital marketing, web solutions and automation under one roof.")),
			),
		),
		g.Group(g.Map(store.ServiceCategories, func(cat content.ServiceCategory) g.Node {
			return h.Section(
				h.Class(joinClass("section", highlightClass(cat.Key == focus))),
				h.ID(cat.Key),
				h.Div(
					h.Class("container"),
					SectionHeading("", cat.Name, ""),
					h.Div(
						h.Class("card-grid"),
						g.Group(g.Map(cat.Services, func(svc content.ServiceSummary) g.Node {
							_, ok := store.Service(svc.Slug)
							return ServiceCard(svc, ok)
						})),
					),
				),
			)
		})),
		CTASection(p, "Not sure where to start?", "Tell us about your goals and we'll recommend the right mix of services."),
	)
}

// ServiceDetail is the page for one service. price may be empty.
func ServiceDetail(p Page, svc *content.Service, price string) g.Node {
	return Layout(p,
		h.Section(
			h.Class("page-hero"),
			h.Div(
				h.Class("container"),
				h.A(h.Href("/services"), h.Class("back-link"), Icon("arrow-left", "", ""), g.Text(" All services")),
				h.Div(h.Class("card-icon"), Icon(svc.Icon, "", "")),
				h.H1(g.Text(svc.Name)),
				h.P(h.Class("eyebrow"), g.Text(svc.Tagline)),
				h.P(h.Class("lead"), g.Text(svc.Description)),
				g.If(price != "", h.P(h.Class("price"), g.Text("From "+price))),
				LeadButton(p, p.T("form.lead.submit"), "btn btn-primary btn-lg"),
			),
		),
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container two-col"),
				h.Div(
					h.H2(g.Text("Benefits")),
					h.Ul(h.Class("feature-list"), g.Group(g.Map(svc.Benefits, func(b string) g.Node {
						return h.Li(Icon("check", "", ""), g.Text(b))
					}))),
				),
				h.Div(
					h.H2(g.Text("Features")),
					g.Group(g.Map(svc.Features, func(f content.Feature) g.Node {
						return h.Div(h.Class("feature"), h.H3(g.Text(f.Title)), h.P(g.Text(f.Description)))
					})),
				),
			),
		),
		g.If(len(svc.Platforms) > 0, h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container"),
				SectionHeading("", "Platforms we manage", ""),
				h.Ul(h.Class("chip-list"), g.Group(g.Map(svc.Platforms, func(name string) g.Node {
					return h.Li(h.Class("chip"), g.Text(name))
				}))),
			),
		)),
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container"),
				SectionHeading("Process", "How we deliver", ""),
				h.Ol(h.Class("steps"), g.Group(g.Map(svc.Process, func(s content.ProcessStep) g.Node {
					return h.Li(
						h.Span(h.Class("step-number"), g.Text(s.Step)),
						h.H3(g.Text(s.Title)),
						h.P(g.Text(s.Description)),
					)
				}))),
			),
		),
		CTASection(p, "Ready to get started with "+svc.Name+"?", "Book a free strategy call and we'll show you what's possible."),
	)
}
