package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSEO(t *testing.T) {
	seo := DefaultSEO("Pricing | Agenz", "Simple, transparent pricing")

	assert.Equal(t, "website", seo.OGType)
	assert.Equal(t, "summary_large_image", seo.TwitterCard)
	assert.Equal(t, "en", seo.Locale)
	assert.Equal(t, []string{"ms"}, seo.AltLocales)
	assert.Equal(t, "index, follow", seo.Robots())
}

func TestSEOBuilders(t *testing.T) {
	published := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	seo := DefaultSEO("Post", "Desc").
		WithCanonical("https://agenz.my/blog/post").
		WithOGImage("").
		WithArticle("Agenz Team", published).
		WithNoIndex()

	assert.Equal(t, "https://agenz.my/blog/post", seo.Canonical)
	assert.Empty(t, seo.OGImage, "empty image must not override")
	assert.Equal(t, "article", seo.OGType)
	assert.Equal(t, "Agenz Team", seo.Author)
	assert.Equal(t, published, seo.PublishedAt)
	assert.Equal(t, "noindex, nofollow", seo.Robots())
}
