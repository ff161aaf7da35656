package content

import "time"

// Link is a labelled navigation target
type Link struct {
	Name     string `yaml:"name"`
	Href     string `yaml:"href"`
	Icon     string `yaml:"icon,omitempty"`
	Dropdown bool   `yaml:"dropdown,omitempty"`
}

type LinkGroup struct {
	Title string `yaml:"title"`
	Items []Link `yaml:"items"`
}

type FooterLinks struct {
	Services  []Link `yaml:"services"`
	Company   []Link `yaml:"company"`
	Resources []Link `yaml:"resources"`
}

type ContactItem struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
}

type Stat struct {
	Value    string `yaml:"value"`
	Label    string `yaml:"label"`
	Sublabel string `yaml:"sublabel,omitempty"`
}

// Paragraph is one line of the philosophy section. Kind is "", "contrast", "stat" or "closing".
type Paragraph struct {
	Text      string `yaml:"text"`
	Highlight bool   `yaml:"highlight"`
	Kind      string `yaml:"kind,omitempty"`
}

type Capability struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Features    []string `yaml:"features"`
	Href        string   `yaml:"href"`
}

type Step struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Value struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Logo is one partner mark in the ticker. Href is optional.
type Logo struct {
	Src  string `yaml:"src"`
	Alt  string `yaml:"alt"`
	Href string `yaml:"href,omitempty"`
}

// Ticker configures the partner logo band
type Ticker struct {
	Label      string `yaml:"label"`
	Speed      int    `yaml:"speed"`       // seconds per full loop
	LogoHeight int    `yaml:"logo_height"` // px
	CardHeight int    `yaml:"card_height"` // px
	Logos      []Logo `yaml:"logos"`
}

type Testimonial struct {
	Quote   string `yaml:"quote"`
	Author  string `yaml:"author"`
	Role    string `yaml:"role"`
	Company string `yaml:"company,omitempty"`
	Avatar  string `yaml:"avatar,omitempty"`
}

// Site holds the site-wide copy and navigation
type Site struct {
	Name         string        `yaml:"name"`
	Tagline      string        `yaml:"tagline"`
	Description  string        `yaml:"description"`
	ProfileURL   string        `yaml:"profile_url"`
	Nav          []Link        `yaml:"nav"`
	ServiceMenu  []LinkGroup   `yaml:"service_menu"`
	Footer       FooterLinks   `yaml:"footer"`
	Social       []Link        `yaml:"social"`
	Contact      []ContactItem `yaml:"contact"`
	HeroStats    []Stat        `yaml:"hero_stats"`
	Philosophy   []Paragraph   `yaml:"philosophy"`
	Capabilities []Capability  `yaml:"capabilities"`
	Steps        []Step        `yaml:"steps"`
	FAQs         []FAQ         `yaml:"faqs"`
	Values       []Value       `yaml:"values"`
	Timeline     []Milestone   `yaml:"timeline"`
	AboutStats   []Stat        `yaml:"about_stats"`
	Ticker       Ticker        `yaml:"ticker"`
	Testimonials []Testimonial `yaml:"testimonials"`
	ResultStats  []Stat        `yaml:"result_stats"`
}

type ServiceSummary struct {
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	Icon        string   `yaml:"icon"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Price       string   `yaml:"price"`
}

// ServiceCategory groups services. Key matches the lead form's service values.
type ServiceCategory struct {
	Key      string           `yaml:"key"`
	Name     string           `yaml:"name"`
	Services []ServiceSummary `yaml:"services"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type ProcessStep struct {
	Step        string `yaml:"step"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Service is a service detail page
type Service struct {
	Slug        string        `yaml:"slug"`
	Name        string        `yaml:"name"`
	Icon        string        `yaml:"icon"`
	Tagline     string        `yaml:"tagline"`
	Description string        `yaml:"description"`
	Benefits    []string      `yaml:"benefits"`
	Features    []Feature     `yaml:"features"`
	Process     []ProcessStep `yaml:"process"`
	Platforms   []string      `yaml:"platforms,omitempty"`
}

type Tier struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Period      string   `yaml:"period"`
	Badge       string   `yaml:"badge,omitempty"`
	OneTime     string   `yaml:"one_time,omitempty"`
	Guarantee   bool     `yaml:"guarantee"`
	Contract    string   `yaml:"contract,omitempty"`
	Discount    string   `yaml:"discount"`
	Features    []string `yaml:"features"`
	Highlighted bool     `yaml:"highlighted"`
}

type PricedService struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Unit  string `yaml:"unit"`
}

type Pricing struct {
	Tiers              []Tier          `yaml:"tiers"`
	IndividualServices []PricedService `yaml:"individual_services"`
	FAQs               []FAQ           `yaml:"faqs"`
}

type Result struct {
	Metric      string `yaml:"metric"`
	Value       string `yaml:"value"`
	Description string `yaml:"description,omitempty"`
}

type CaseStudy struct {
	Slug        string       `yaml:"slug"`
	Title       string       `yaml:"title"`
	Category    string       `yaml:"category"`
	Client      string       `yaml:"client"`
	Industry    string       `yaml:"industry"`
	Duration    string       `yaml:"duration"`
	Image       string       `yaml:"image"`
	Summary     string       `yaml:"summary"`
	Highlights  []Result     `yaml:"highlights"`
	Challenge   string       `yaml:"challenge"`
	Solution    []string     `yaml:"solution"`
	Results     []Result     `yaml:"results"`
	Testimonial *Testimonial `yaml:"testimonial,omitempty"`
	Services    []string     `yaml:"services"`
}

// Post is a rendered blog article. HTML is sanitized.
type Post struct {
	Slug        string
	Title       string
	Excerpt     string
	Category    string
	Image       string
	Author      string
	AuthorImage string
	Date        time.Time
	ReadTime    string
	Featured    bool
	HTML        string
}

// postMeta is the frontmatter of a post file
type postMeta struct {
	Title       string `yaml:"title"`
	Excerpt     string `yaml:"excerpt"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
	Author      string `yaml:"author"`
	AuthorImage string `yaml:"author_image"`
	Date        string `yaml:"date"`
	ReadTime    string `yaml:"read_time"`
	Featured    bool   `yaml:"featured"`
	Draft       bool   `yaml:"draft"`
}
