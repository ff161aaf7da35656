package pages

import (
	"agenz_site/content"
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Contact shows contact details beside form, which is the contact form or its success state
func Contact(p Page, site content.Site, form g.Node) g.Node {
	return Layout(p,
		h.Section(
			h.Class("page-hero"),
			h.Div(
				h.Class("container"),
				h.H1(g.Text("Let's talk")),
				h.P(h.Class("lead"), g.Text("Have a question or ready to start? We reply within 24 hours.")),
			),
		),
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container two-col"),
				h.Div(
					h.Class("contact-info"),
					h.Ul(g.Group(g.Map(site.Contact, func(item content.ContactItem) g.Node {
						return h.Li(
							h.Div(h.Class("card-icon"), Icon(item.Icon, "", "")),
							h.Div(
								h.P(h.Class("muted"), g.Text(item.Label)),
								g.If(item.Href != "", h.A(h.Href(item.Href), g.Text(item.Value))),
								g.If(item.Href == "", h.P(g.Text(item.Value))),
							),
						)
					}))),
					SocialLinks(site.Social),
				),
				h.Div(
					h.Class("card"),
					form,
				),
			),
		),
	)
}
