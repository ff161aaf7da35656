package components

import (
	"encoding/json"
	"log"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type organizationSchema struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`
}

// JSON marshals v for embedding in a script element, returning "{}" on error
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Failed to marshal structured data: %v", err)
		return "{}"
	}
	return string(b)
}

// OrganizationData renders the schema.org Organization block for the site
func OrganizationData(p Page) g.Node {
	if p.Site == nil {
		return nil
	}
	schema := organizationSchema{
		Context:     "https://schema.org",
		Type:        "Organization",
		Name:        p.Site.Name,
		Description: p.Site.Description,
	}
	if p.SEO != nil && p.SEO.Canonical != "" {
		schema.URL = p.SEO.Canonical
	}
	for _, link := range p.Site.Social {
		if link.Href != "" && link.Href != "#" {
			schema.SameAs = append(schema.SameAs, link.Href)
		}
	}
	// json.Marshal escapes <, > and & so the payload cannot close the script element
	return h.Script(h.Type("application/ld+json"), g.Attr("nonce", p.Nonce), g.Raw(JSON(schema)))
}
