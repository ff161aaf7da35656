package pages

import (
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound is the branded 404 page
func NotFound(p Page) g.Node {
	return errorPage(p, "404", p.T("errors.not_found_title"), p.T("errors.not_found_body"))
}

// ServerError is the branded 500 page
func ServerError(p Page) g.Node {
	return errorPage(p, "500", p.T("errors.server_title"), p.T("errors.server_body"))
}

func errorPage(p Page, code, title, body string) g.Node {
	return Layout(p,
		h.Section(
			h.Class("page-hero error-page"),
			h.Div(
				h.Class("container narrow center"),
				h.P(h.Class("error-code"), g.Text(code)),
				h.H1(g.Text(title)),
				h.P(h.Class("lead"), g.Text(body)),
				h.A(h.Href("/"), h.Class("btn btn-primary"), g.Text(p.T("errors.back_home"))),
			),
		),
	)
}
