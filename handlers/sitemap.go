package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the XML sitemap from the static pages and every content slug
func GetSitemapHandler(c echo.Context) error {
	baseURL := getConfig(c).AppURL

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/services", ChangeFreq: "monthly", Priority: 0.9},
		{Loc: baseURL + "/pricing", ChangeFreq: "monthly", Priority: 0.9},
		{Loc: baseURL + "/case-studies", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/blog", ChangeFreq: "weekly", Priority: 0.8},
		{Loc: baseURL + "/about", ChangeFreq: "monthly", Priority: 0.7},
		{Loc: baseURL + "/contact", ChangeFreq: "monthly", Priority: 0.7},
	}

	for _, cat := range Content.ServiceCategories {
		for _, svc := range cat.Services {
			if _, ok := Content.Service(svc.Slug); ok {
				urls = append(urls, SitemapURL{Loc: baseURL + "/services/" + svc.Slug, ChangeFreq: "monthly", Priority: 0.8})
			}
		}
	}
	for _, cs := range Content.CaseStudies {
		urls = append(urls, SitemapURL{Loc: baseURL + "/case-studies/" + cs.Slug, ChangeFreq: "yearly", Priority: 0.6})
	}
	for _, post := range Content.Posts {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/blog/" + post.Slug,
			LastMod:    post.Date.Format("2006-01-02"),
			ChangeFreq: "yearly",
			Priority:   0.6,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// RobotsHandler serves robots.txt pointing at the sitemap
func RobotsHandler(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", getConfig(c).AppURL)
	return c.String(http.StatusOK, body)
}

// HealthHandler reports liveness
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
