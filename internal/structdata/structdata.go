// Package structdata synthesizes minimal schema.org linked-data graphs from
// content and page metadata.
//
// Optional fields are emitted only when supplied; an absent value leaves the
// key entirely unset, never present-with-null, which the linked-data
// vocabulary requires for validation.
package structdata

// SchemaContext is the linked-data vocabulary every graph declares.
const SchemaContext = "https://schema.org"

// Schema type tags.
const (
	TypePerson         = "Person"
	TypeWebSite        = "WebSite"
	TypeBlogPosting    = "BlogPosting"
	TypeBreadcrumbList = "BreadcrumbList"
	TypeListItem       = "ListItem"
)

// Schema is the tagged union over the supported graph variants.
type Schema interface {
	schemaType() string
}

func (Person) schemaType() string         { return TypePerson }
func (WebSite) schemaType() string        { return TypeWebSite }
func (BlogPosting) schemaType() string    { return TypeBlogPosting }
func (BreadcrumbList) schemaType() string { return TypeBreadcrumbList }

// Person is a schema.org Person graph.
type Person struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	URL         string   `json:"url,omitempty"`
	JobTitle    string   `json:"jobTitle,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`
}

// PersonConfig holds the required name plus named optional fields.
type PersonConfig struct {
	Name        string
	URL         string
	JobTitle    string
	Description string
	Image       string
	SameAs      []string
}

// NewPerson builds a Person graph from cfg.
func NewPerson(cfg PersonConfig) Person {
	return Person{
		Context:     SchemaContext,
		Type:        TypePerson,
		Name:        cfg.Name,
		URL:         cfg.URL,
		JobTitle:    cfg.JobTitle,
		Description: cfg.Description,
		Image:       cfg.Image,
		SameAs:      cfg.SameAs,
	}
}

// WebSite is a schema.org WebSite graph.
type WebSite struct {
	Context       string     `json:"@context"`
	Type          string     `json:"@type"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	Description   string     `json:"description,omitempty"`
	AlternateName string     `json:"alternateName,omitempty"`
	Publisher     *PersonRef `json:"publisher,omitempty"`
}

// WebSiteConfig holds the required name and URL plus named optional fields.
type WebSiteConfig struct {
	Name          string
	URL           string
	Description   string
	AlternateName string
	Publisher     string
}

// NewWebSite builds a WebSite graph from cfg.
func NewWebSite(cfg WebSiteConfig) WebSite {
	return WebSite{
		Context:       SchemaContext,
		Type:          TypeWebSite,
		Name:          cfg.Name,
		URL:           cfg.URL,
		Description:   cfg.Description,
		AlternateName: cfg.AlternateName,
		Publisher:     personRef(cfg.Publisher),
	}
}

// BlogPosting is a schema.org BlogPosting graph.
type BlogPosting struct {
	Context       string     `json:"@context"`
	Type          string     `json:"@type"`
	Headline      string     `json:"headline"`
	Description   string     `json:"description,omitempty"`
	URL           string     `json:"url,omitempty"`
	DatePublished string     `json:"datePublished,omitempty"`
	DateModified  string     `json:"dateModified,omitempty"`
	Author        *PersonRef `json:"author,omitempty"`
	Image         []string   `json:"image,omitempty"`
	Keywords      []string   `json:"keywords,omitempty"`
}

// BlogPostingConfig holds the required headline plus named optional fields.
// Dates are preformatted ISO 8601 strings as supplied by the CMS.
type BlogPostingConfig struct {
	Headline      string
	Description   string
	URL           string
	DatePublished string
	DateModified  string
	Author        string
	Image         []string
	Keywords      []string
}

// NewBlogPosting builds a BlogPosting graph from cfg.
func NewBlogPosting(cfg BlogPostingConfig) BlogPosting {
	return BlogPosting{
		Context:       SchemaContext,
		Type:          TypeBlogPosting,
		Headline:      cfg.Headline,
		Description:   cfg.Description,
		URL:           cfg.URL,
		DatePublished: cfg.DatePublished,
		DateModified:  cfg.DateModified,
		Author:        personRef(cfg.Author),
		Image:         cfg.Image,
		Keywords:      cfg.Keywords,
	}
}

// PersonRef is a nested person reference inside another graph.
type PersonRef struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

func personRef(name string) *PersonRef {
	if name == "" {
		return nil
	}
	return &PersonRef{Type: TypePerson, Name: name}
}
