package handlers

import (
	"agenz_site/config"
	"agenz_site/models"
)

const defaultOGImage = "/static/images/og-image.png"

type seoEntry struct {
	Path        string
	Title       string
	Description string
	Keywords    string
}

// SEO configurations for the static pages
var pageSEO = map[string]seoEntry{
	"home": {
		Path:        "/",
		Title:       "Agenz | AI-Powered Digital Marketing Agency in Malaysia",
		Description: "Agenz helps Malaysian businesses grow with AI creatives, digital marketing, websites and business automation. Book a free strategy call.",
		Keywords:    "digital marketing agency malaysia, AI marketing, social media management, website design, business automation",
	},
	"services": {
		Path:        "/services",
		Title:       "Services | Agenz",
		Description: "AI creatives, social media, paid ads, websites, CRM and automation. Everything your business needs to grow online.",
		Keywords:    "AI creative, social media management, digital ads, website building, CRM setup, automation",
	},
	"pricing": {
		Path:        "/pricing",
		Title:       "Pricing | Agenz",
		Description: "Transparent packages for businesses at every stage, plus individually priced services. No hidden fees.",
		Keywords:    "digital marketing pricing malaysia, social media package, website price",
	},
	"case-studies": {
		Path:        "/case-studies",
		Title:       "Case Studies | Agenz",
		Description: "Real results from real clients. See how Agenz helped businesses across industries grow leads, sales and efficiency.",
		Keywords:    "marketing case studies, client results, digital marketing success",
	},
	"blog": {
		Path:        "/blog",
		Title:       "Blog | Agenz",
		Description: "Insights on AI, marketing and automation for growing businesses in Malaysia.",
		Keywords:    "marketing blog, AI marketing tips, automation guides",
	},
	"about": {
		Path:        "/about",
		Title:       "About Us | Agenz",
		Description: "Meet Agenz, the team combining AI and human creativity to help Malaysian businesses grow.",
		Keywords:    "about Agenz, digital agency malaysia, AI agency",
	},
	"contact": {
		Path:        "/contact",
		Title:       "Contact Us | Agenz",
		Description: "Talk to Agenz about your marketing, website or automation project. We reply within 24 hours.",
		Keywords:    "contact Agenz, marketing consultation, free strategy call",
	},
}

// GetSEO returns a fresh SEO configuration for a static page, or nil when unknown
func GetSEO(cfg *config.Config, page string) *models.SEO {
	entry, ok := pageSEO[page]
	if !ok {
		return nil
	}
	return models.DefaultSEO(entry.Title, entry.Description).
		WithKeywords(entry.Keywords).
		WithCanonical(cfg.AppURL + entry.Path).
		WithOGImage(cfg.AppURL + defaultOGImage)
}

// contentSEO builds SEO for a content detail page at path
func contentSEO(cfg *config.Config, title, description, path, image string) *models.SEO {
	seo := models.DefaultSEO(title+" | Agenz", description).
		WithCanonical(cfg.AppURL + path).
		WithOGImage(cfg.AppURL + defaultOGImage)
	if image != "" {
		if image[0] == '/' {
			image = cfg.AppURL + image
		}
		seo.WithOGImage(image)
	}
	return seo
}
