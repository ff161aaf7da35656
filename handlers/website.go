package handlers

import (
	"net/http"

	"agenz_site/templates/pages"

	"github.com/labstack/echo/v4"
)

// HomeHandler renders the landing page
func HomeHandler(c echo.Context) error {
	p := newPage(c, GetSEO(getConfig(c), "home"))
	return render(c, http.StatusOK, pages.Home(p, Content))
}

// PricingHandler renders the pricing tiers and individual services
func PricingHandler(c echo.Context) error {
	p := newPage(c, GetSEO(getConfig(c), "pricing"))
	return render(c, http.StatusOK, pages.Pricing(p, Content.Pricing))
}

// AboutHandler renders the company page
func AboutHandler(c echo.Context) error {
	p := newPage(c, GetSEO(getConfig(c), "about"))
	return render(c, http.StatusOK, pages.About(p, Content.Site))
}

// ServicesHandler lists every service. ?category= highlights one category.
func ServicesHandler(c echo.Context) error {
	focus := c.QueryParam("category")
	if _, ok := Content.ServiceCategory(focus); !ok {
		focus = ""
	}
	p := newPage(c, GetSEO(getConfig(c), "services"))
	return render(c, http.StatusOK, pages.ServicesIndex(p, Content, focus))
}

// ServiceDetailHandler renders one service, 404 for unknown slugs
func ServiceDetailHandler(c echo.Context) error {
	slug := c.Param("slug")
	svc, ok := Content.Service(slug)
	if !ok {
		return notFound(c)
	}

	price := ""
	if summary, ok := Content.ServiceSummary(slug); ok {
		price = summary.Price
	}

	seo := contentSEO(getConfig(c), svc.Name, svc.Description, "/services/"+svc.Slug, "")
	return render(c, http.StatusOK, pages.ServiceDetail(newPage(c, seo), svc, price))
}

// CaseStudiesHandler lists case studies, optionally filtered by ?category=
func CaseStudiesHandler(c echo.Context) error {
	categories := Content.CaseStudyCategories()
	current := validCategory(categories, c.QueryParam("category"))

	p := newPage(c, GetSEO(getConfig(c), "case-studies"))
	return render(c, http.StatusOK, pages.CaseStudies(p, Content.CaseStudiesIn(current), categories, current))
}

// CaseStudyDetailHandler renders one case study, 404 for unknown slugs
func CaseStudyDetailHandler(c echo.Context) error {
	cs, ok := Content.CaseStudy(c.Param("slug"))
	if !ok {
		return notFound(c)
	}
	seo := contentSEO(getConfig(c), cs.Title, cs.Summary, "/case-studies/"+cs.Slug, cs.Image)
	return render(c, http.StatusOK, pages.CaseStudyDetail(newPage(c, seo), cs))
}

// BlogHandler lists posts filtered by ?category= and searched by ?q=
func BlogHandler(c echo.Context) error {
	categories := Content.PostCategories()
	filter := pages.BlogFilter{
		Category:   validCategory(categories, c.QueryParam("category")),
		Query:      c.QueryParam("q"),
		Categories: categories,
	}

	featured, _ := Content.FeaturedPost()
	posts := Content.SearchPosts(filter.Category, filter.Query)

	p := newPage(c, GetSEO(getConfig(c), "blog"))
	return render(c, http.StatusOK, pages.Blog(p, featured, posts, filter))
}

// BlogPostHandler renders one article with related posts, 404 for unknown slugs
func BlogPostHandler(c echo.Context) error {
	post, ok := Content.Post(c.Param("slug"))
	if !ok {
		return notFound(c)
	}

	seo := contentSEO(getConfig(c), post.Title, post.Excerpt, "/blog/"+post.Slug, post.Image).
		WithArticle(post.Author, post.Date)
	return render(c, http.StatusOK, pages.BlogPost(newPage(c, seo), post, Content.RelatedPosts(post, 3)))
}

// validCategory returns category when it is one of categories, else AllCategories
func validCategory(categories []string, category string) string {
	for _, known := range categories {
		if known == category {
			return category
		}
	}
	return categories[0]
}
