package components

import (
	"agenz_site/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ServiceCard links to the service page when one exists
func ServiceCard(svc content.ServiceSummary, hasDetail bool) g.Node {
	body := g.Group([]g.Node{
		h.Div(h.Class("card-icon"), Icon(svc.Icon, "", "")),
		h.H3(g.Text(svc.Name)),
		h.P(g.Text(svc.Description)),
		h.Ul(h.Class("feature-list"), g.Group(g.Map(svc.Features, func(f string) g.Node {
			return h.Li(Icon("check", "", ""), g.Text(f))
		}))),
		g.If(svc.Price != "", h.P(h.Class("price"), g.Text(svc.Price))),
	})
	if !hasDetail {
		return h.Div(h.Class("card service-card"), body)
	}
	return h.A(h.Class("card service-card"), h.Href("/services/"+svc.Slug), body)
}

// CaseStudyCard summarises a case study with its headline metrics
func CaseStudyCard(cs content.CaseStudy) g.Node {
	return h.A(
		h.Class("card case-card"),
		h.Href("/case-studies/"+cs.Slug),
		h.Img(h.Src(cs.Image), h.Alt(cs.Title), h.Loading("lazy"), g.Attr("data-dim-on-error", "")),
		h.Div(
			h.Class("card-body"),
			h.Span(h.Class("badge"), g.Text(cs.Category)),
			h.H3(g.Text(cs.Title)),
			h.P(h.Class("muted"), g.Text(cs.Client)),
			h.P(g.Text(cs.Summary)),
			MetricList(cs.Highlights),
		),
	)
}

// MetricList renders value/metric pairs
func MetricList(results []content.Result) g.Node {
	if len(results) == 0 {
		return nil
	}
	return h.Dl(
		h.Class("metrics"),
		g.Group(g.Map(results, func(r content.Result) g.Node {
			return h.Div(
				h.Dt(g.Text(r.Value)),
				h.Dd(g.Text(r.Metric)),
			)
		})),
	)
}

// PostCard summarises a blog post
func PostCard(p content.Post) g.Node {
	return h.A(
		h.Class("card post-card"),
		h.Href("/blog/"+p.Slug),
		g.If(p.Image != "", h.Img(h.Src(p.Image), h.Alt(p.Title), h.Loading("lazy"), g.Attr("data-dim-on-error", ""))),
		h.Div(
			h.Class("card-body"),
			h.Span(h.Class("badge"), g.Text(p.Category)),
			h.H3(g.Text(p.Title)),
			h.P(g.Text(p.Excerpt)),
			PostMeta(p),
		),
	)
}

// PostMeta is the author, date and reading time line
func PostMeta(p content.Post) g.Node {
	return h.P(
		h.Class("post-meta"),
		g.Text(p.Author),
		g.If(!p.Date.IsZero(), g.Group([]g.Node{
			g.Text(" · "),
			g.El("time", g.Attr("datetime", p.Date.Format("2006-01-02")), g.Text(p.Date.Format("Jan 2, 2006"))),
		})),
		g.If(p.ReadTime != "", g.Text(" · "+p.ReadTime)),
	)
}

// StatGrid renders headline numbers
func StatGrid(stats []content.Stat) g.Node {
	return h.Div(
		h.Class("stat-grid"),
		g.Group(g.Map(stats, func(s content.Stat) g.Node {
			return h.Div(
				h.Class("stat"),
				h.P(h.Class("stat-value"), g.Text(s.Value)),
				h.P(h.Class("stat-label"), g.Text(s.Label)),
				g.If(s.Sublabel != "", h.P(h.Class("stat-sublabel"), g.Text(s.Sublabel))),
			)
		})),
	)
}

// FAQList uses details/summary so answers open without script
func FAQList(faqs []content.FAQ) g.Node {
	return h.Div(
		h.Class("faq-list"),
		g.Group(g.Map(faqs, func(f content.FAQ) g.Node {
			return h.Details(
				h.Summary(g.Text(f.Question)),
				h.P(g.Text(f.Answer)),
			)
		})),
	)
}

func TestimonialCard(t content.Testimonial) g.Node {
	return h.Figure(
		h.Class("card testimonial"),
		h.BlockQuote(h.P(g.Text(t.Quote))),
		h.FigCaption(
			g.If(t.Avatar != "", h.Img(h.Src(t.Avatar), h.Alt(t.Author), h.Class("avatar"), h.Loading("lazy"), g.Attr("data-dim-on-error", ""))),
			h.Strong(g.Text(t.Author)),
			h.Span(g.Text(joinNonEmpty(", ", t.Role, t.Company))),
		),
	)
}

// CTASection closes most pages with a lead form prompt
func CTASection(p Page, title, body string) g.Node {
	return h.Section(
		h.Class("cta-band"),
		h.Div(
			h.Class("container"),
			h.H2(g.Text(title)),
			h.P(g.Text(body)),
			LeadButton(p, p.T("form.lead.submit"), "btn btn-primary btn-lg"),
		),
	)
}

// CategoryFilter renders filter links for list pages; the current category is marked
func CategoryFilter(basePath string, categories []string, current string) g.Node {
	if current == "" {
		current = content.AllCategories
	}
	return h.Nav(
		h.Class("category-filter"),
		g.Attr("aria-label", "Filter by category"),
		g.Group(g.Map(categories, func(cat string) g.Node {
			href := basePath
			if cat != content.AllCategories {
				href += "?category=" + queryEscape(cat)
			}
			return h.A(
				h.Href(href),
				h.Class("chip"),
				g.If(cat == current, g.Attr("aria-current", "true")),
				g.Text(cat),
			)
		})),
	)
}
