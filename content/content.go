// Package content loads the site copy, service catalogue, pricing, case studies
// and blog posts that are embedded into the binary.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml posts/*.md
var embedded embed.FS

// AllCategories is the filter value that matches every item
const AllCategories = "All"

const (
	postDateLayout = "2006-01-02"
	wordsPerMinute = 200
)

// Store holds every piece of loaded content. It is read-only after loading.
type Store struct {
	Site              Site
	ServiceCategories []ServiceCategory
	Services          []Service
	Pricing           Pricing
	CaseStudies       []CaseStudy
	Posts             []Post // newest first

	services    map[string]*Service
	caseStudies map[string]*CaseStudy
	posts       map[string]*Post
}

// Load reads the embedded content
func Load() (*Store, error) {
	return LoadFS(embedded)
}

// LoadFS reads content from fsys, which must contain data/*.yaml and posts/*.md
func LoadFS(fsys fs.FS) (*Store, error) {
	s := &Store{}

	if err := decodeYAML(fsys, "data/site.yaml", &s.Site); err != nil {
		return nil, err
	}

	var catalogue struct {
		Categories []ServiceCategory `yaml:"categories"`
		Services   []Service         `yaml:"services"`
	}
	if err := decodeYAML(fsys, "data/services.yaml", &catalogue); err != nil {
		return nil, err
	}
	s.ServiceCategories = catalogue.Categories
	s.Services = catalogue.Services

	if err := decodeYAML(fsys, "data/pricing.yaml", &s.Pricing); err != nil {
		return nil, err
	}

	var studies struct {
		CaseStudies []CaseStudy `yaml:"case_studies"`
	}
	if err := decodeYAML(fsys, "data/case_studies.yaml", &studies); err != nil {
		return nil, err
	}
	s.CaseStudies = studies.CaseStudies

	posts, err := loadPosts(fsys)
	if err != nil {
		return nil, err
	}
	s.Posts = posts

	if err := s.index(); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeYAML(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) index() error {
	s.services = make(map[string]*Service, len(s.Services))
	for i := range s.Services {
		svc := &s.Services[i]
		if _, dup := s.services[svc.Slug]; dup {
			return fmt.Errorf("duplicate service slug %q", svc.Slug)
		}
		s.services[svc.Slug] = svc
	}

	s.caseStudies = make(map[string]*CaseStudy, len(s.CaseStudies))
	for i := range s.CaseStudies {
		cs := &s.CaseStudies[i]
		if _, dup := s.caseStudies[cs.Slug]; dup {
			return fmt.Errorf("duplicate case study slug %q", cs.Slug)
		}
		s.caseStudies[cs.Slug] = cs
	}

	s.posts = make(map[string]*Post, len(s.Posts))
	for i := range s.Posts {
		s.posts[s.Posts[i].Slug] = &s.Posts[i]
	}
	return nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

func loadPosts(fsys fs.FS) ([]Post, error) {
	files, err := fs.Glob(fsys, "posts/*.md")
	if err != nil {
		return nil, err
	}

	md := newMarkdown()
	policy := bluemonday.UGCPolicy()
	titleCaser := cases.Title(language.English)

	posts := make([]Post, 0, len(files))
	for _, file := range files {
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		var meta postMeta
		body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
		if err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter for %s: %w", file, err)
		}
		if meta.Draft {
			continue
		}

		slug := strings.TrimSuffix(path.Base(file), path.Ext(file))
		if len(bytes.TrimSpace(body)) == 0 {
			body = []byte(meta.Excerpt)
		}

		var buf bytes.Buffer
		if err := md.Convert(body, &buf); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", file, err)
		}

		post := Post{
			Slug:        slug,
			Title:       meta.Title,
			Excerpt:     meta.Excerpt,
			Category:    meta.Category,
			Image:       meta.Image,
			Author:      meta.Author,
			AuthorImage: meta.AuthorImage,
			ReadTime:    meta.ReadTime,
			Featured:    meta.Featured,
			HTML:        policy.Sanitize(buf.String()),
		}
		if post.Title == "" {
			post.Title = titleCaser.String(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
		}
		if post.ReadTime == "" {
			post.ReadTime = estimateReadTime(body)
		}
		if meta.Date != "" {
			date, err := time.Parse(postDateLayout, meta.Date)
			if err != nil {
				return nil, fmt.Errorf("invalid date %q in %s: %w", meta.Date, file, err)
			}
			post.Date = date
		}

		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Slug < posts[j].Slug
		}
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

func estimateReadTime(body []byte) string {
	minutes := (len(strings.Fields(string(body))) + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Service returns the service detail page for slug
func (s *Store) Service(slug string) (*Service, bool) {
	svc, ok := s.services[slug]
	return svc, ok
}

// ServiceCategory returns the category with key
func (s *Store) ServiceCategory(key string) (*ServiceCategory, bool) {
	for i := range s.ServiceCategories {
		if s.ServiceCategories[i].Key == key {
			return &s.ServiceCategories[i], true
		}
	}
	return nil, false
}

// ServiceSummary returns the catalogue entry for slug, which carries the list price
func (s *Store) ServiceSummary(slug string) (*ServiceSummary, bool) {
	for i := range s.ServiceCategories {
		for j := range s.ServiceCategories[i].Services {
			if s.ServiceCategories[i].Services[j].Slug == slug {
				return &s.ServiceCategories[i].Services[j], true
			}
		}
	}
	return nil, false
}

func (s *Store) CaseStudy(slug string) (*CaseStudy, bool) {
	cs, ok := s.caseStudies[slug]
	return cs, ok
}

func (s *Store) Post(slug string) (*Post, bool) {
	p, ok := s.posts[slug]
	return p, ok
}

// CaseStudyCategories lists the distinct categories in file order, led by AllCategories
func (s *Store) CaseStudyCategories() []string {
	seen := map[string]bool{}
	out := []string{AllCategories}
	for _, cs := range s.CaseStudies {
		if !seen[cs.Category] {
			seen[cs.Category] = true
			out = append(out, cs.Category)
		}
	}
	return out
}

// CaseStudiesIn filters case studies by category. Empty or AllCategories returns all.
func (s *Store) CaseStudiesIn(category string) []CaseStudy {
	if category == "" || category == AllCategories {
		return s.CaseStudies
	}
	var out []CaseStudy
	for _, cs := range s.CaseStudies {
		if cs.Category == category {
			out = append(out, cs)
		}
	}
	return out
}

// PostCategories lists the distinct post categories, led by AllCategories
func (s *Store) PostCategories() []string {
	seen := map[string]bool{}
	out := []string{AllCategories}
	for _, p := range s.Posts {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// FeaturedPost returns the newest featured post
func (s *Store) FeaturedPost() (*Post, bool) {
	for i := range s.Posts {
		if s.Posts[i].Featured {
			return &s.Posts[i], true
		}
	}
	return nil, false
}

// SearchPosts filters posts by category and a case-insensitive query over title and excerpt
func (s *Store) SearchPosts(category, query string) []Post {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Post
	for _, p := range s.Posts {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Excerpt), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RelatedPosts returns up to limit other posts, same category first
func (s *Store) RelatedPosts(post *Post, limit int) []Post {
	var same, other []Post
	for _, p := range s.Posts {
		if p.Slug == post.Slug {
			continue
		}
		if p.Category == post.Category {
			same = append(same, p)
		} else {
			other = append(other, p)
		}
	}
	out := append(same, other...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
