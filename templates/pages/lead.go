package pages

import (
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LeadPage shows the lead form as a standalone page for visitors without JavaScript
func LeadPage(p Page, form g.Node) g.Node {
	return Layout(p,
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container narrow"),
				h.Div(h.Class("card"), form),
			),
		),
	)
}
