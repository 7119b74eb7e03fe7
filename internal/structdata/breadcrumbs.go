package structdata

import (
	"net/url"

	"git.home.luguber.info/inful/storyrender/internal/errors"
)

// Crumb is one breadcrumb-trail entry as supplied by the caller. Position is
// derived from list order, not stored.
type Crumb struct {
	Name string
	URL  string
}

// BreadcrumbList is a schema.org BreadcrumbList graph.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one positioned breadcrumb.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

// NewBreadcrumbList builds a BreadcrumbList with 1-indexed positions assigned
// strictly in input order. Relative crumb URLs are resolved against baseURL
// when both are present; absolute URLs and crumbs without a URL pass through
// unchanged. An unparseable baseURL is a configuration error.
func NewBreadcrumbList(crumbs []Crumb, baseURL string) (BreadcrumbList, error) {
	var base *url.URL
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return BreadcrumbList{}, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "base url is not parseable").
				WithContext("base_url", baseURL)
		}
		base = u
	}

	items := make([]ListItem, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, ListItem{
			Type:     TypeListItem,
			Position: i + 1,
			Name:     c.Name,
			Item:     resolveItemURL(c.URL, base),
		})
	}

	return BreadcrumbList{
		Context:         SchemaContext,
		Type:            TypeBreadcrumbList,
		ItemListElement: items,
	}, nil
}

func resolveItemURL(raw string, base *url.URL) string {
	if raw == "" || base == nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil || ref.IsAbs() {
		return raw
	}
	return base.ResolveReference(ref).String()
}
