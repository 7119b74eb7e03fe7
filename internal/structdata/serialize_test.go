package structdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize_CompactOutput(t *testing.T) {
	out, err := Serialize(NewPerson(PersonConfig{Name: "Ada", URL: "https://example.com/ada"}))
	require.NoError(t, err)

	require.Equal(t, `{"@context":"https://schema.org","@type":"Person","name":"Ada","url":"https://example.com/ada"}`, out)
	require.NotContains(t, out, "\n")
	require.NotContains(t, out, "null")
}

func TestSerialize_ParseRoundTrips(t *testing.T) {
	breadcrumbs, err := NewBreadcrumbList([]Crumb{
		{Name: "Home", URL: "/"},
		{Name: "Blog", URL: "/blog"},
	}, "https://example.com")
	require.NoError(t, err)

	schemas := []Schema{
		NewPerson(PersonConfig{Name: "Ada", JobTitle: "Engineer", SameAs: []string{"https://example.com/ada"}}),
		NewWebSite(WebSiteConfig{Name: "Example", URL: "https://example.com", Publisher: "Ada"}),
		NewBlogPosting(BlogPostingConfig{
			Headline:      "A Post",
			Author:        "Ada",
			DatePublished: "2024-05-01T10:00:00Z",
			Keywords:      []string{"go", "cms"},
		}),
		breadcrumbs,
	}

	for _, original := range schemas {
		out, err := Serialize(original)
		require.NoError(t, err)

		parsed, err := Parse(out)
		require.NoError(t, err)
		require.Equal(t, original, parsed)
	}
}

func TestParse_UnknownType(t *testing.T) {
	_, err := Parse(`{"@context":"https://schema.org","@type":"Recipe","name":"Soup"}`)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "unknown schema type"))
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse("{")
	require.Error(t, err)
}
