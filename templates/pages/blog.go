package pages

import (
	"agenz_site/content"
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// BlogFilter is the current state of the blog list controls
type BlogFilter struct {
	Category   string
	Query      string
	Categories []string
}

func (f BlogFilter) active() bool {
	return f.Query != "" || (f.Category != "" && f.Category != content.AllCategories)
}

// Blog lists posts. The featured post is shown separately unless a filter is active.
func Blog(p Page, featured *content.Post, posts []content.Post, filter BlogFilter) g.Node {
	showFeatured := featured != nil && !filter.active()
	return Layout(p,
		h.Section(
			h.Class("page-hero"),
			h.Div(
				h.Class("container"),
				h.H1(g.Text("Insights & resources")),
				h.P(h.Class("lead"), g.Text("Practical guides on AI, automation and digital marketing for Malaysian businesses.")),
			),
		),
		h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container"),
				h.Form(
					h.Class("blog-search"),
					h.Method("get"),
					h.Action("/blog"),
					g.Attr("role", "search"),
					g.If(filter.Category != "" && filter.Category != content.AllCategories,
						h.Input(h.Type("hidden"), h.Name("category"), h.Value(filter.Category)),
					),
					h.Label(h.For("blog-q"), h.Class("sr-only"), g.Text("Search articles")),
					h.Input(h.ID("blog-q"), h.Type("search"), h.Name("q"), h.Value(filter.Query), h.Placeholder("Search articles...")),
					h.Button(h.Type("submit"), h.Class("btn btn-secondary"), Icon("search", "", "Search")),
				),
				CategoryFilter("/blog", filter.Categories, filter.Category),
				g.Iff(showFeatured, func() g.Node {
					return featuredPost(*featured)
				}),
				g.If(len(posts) == 0, h.P(h.Class("empty"), g.Text("No articles match your search."))),
				h.Div(
					h.Class("card-grid"),
					g.Group(g.Map(posts, func(post content.Post) g.Node {
						if showFeatured && post.Slug == featured.Slug {
							return nil
						}
						return PostCard(post)
					})),
				),
			),
		),
		CTASection(p, "Want these results for your business?", "Book a free strategy call with our team."),
	)
}

func featuredPost(post content.Post) g.Node {
	return h.A(
		h.Class("card featured-post"),
		h.Href("/blog/"+post.Slug),
		g.If(post.Image != "", h.Img(h.Src(post.Image), h.Alt(post.Title), g.Attr("data-dim-on-error", ""))),
		h.Div(
			h.Class("card-body"),
			h.Span(h.Class("badge"), g.Text("Featured")),
			h.H2(g.Text(post.Title)),
			h.P(g.Text(post.Excerpt)),
			PostMeta(post),
		),
	)
}

// BlogPost renders an article and related reading
func BlogPost(p Page, post *content.Post, related []content.Post) g.Node {
	return Layout(p,
		h.Article(
			h.Class("post"),
			h.Header(
				h.Class("page-hero"),
				h.Div(
					h.Class("container narrow"),
					h.A(h.Href("/blog"), h.Class("back-link"), Icon("arrow-left", "", ""), g.Text(" All articles")),
					h.Span(h.Class("badge"), g.Text(post.Category)),
					h.H1(g.Text(post.Title)),
					h.Div(
						h.Class("post-author"),
						g.If(post.AuthorImage != "", h.Img(h.Src(post.AuthorImage), h.Alt(post.Author), h.Class("avatar"), g.Attr("data-dim-on-error", ""))),
						PostMeta(*post),
					),
				),
			),
			g.If(post.Image != "", h.Div(h.Class("container"), h.Img(h.Class("hero-image"), h.Src(post.Image), h.Alt(post.Title), g.Attr("data-dim-on-error", "")))),
			h.Div(
				h.Class("container narrow prose"),
				g.Raw(post.HTML),
			),
		),
		g.If(len(related) > 0, h.Section(
			h.Class("section"),
			h.Div(
				h.Class("container"),
				SectionHeading("", "Related articles", ""),
				h.Div(h.Class("card-grid"), g.Group(g.Map(related, PostCard))),
			),
		)),
		CTASection(p, "Want these results for your business?", "Book a free strategy call with our team."),
	)
}
