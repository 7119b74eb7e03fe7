package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/storyrender/internal/errors"
	"git.home.luguber.info/inful/storyrender/internal/story"
)

func TestEntries_MapsStoriesInOrder(t *testing.T) {
	stories := []story.Story{
		{
			Name:        "First Post",
			FullSlug:    "blog/first-post",
			PublishedAt: "2024-05-01T10:00:00Z",
			Content:     map[string]any{"intro": "The first one"},
		},
		{
			Name:        "Second Post",
			FullSlug:    "blog/second-post",
			PublishedAt: "2024-06-01T09:00:00Z",
			Content:     map[string]any{"intro": "The second one"},
		},
	}

	entries, err := Entries(stories, Options{BaseURL: "https://example.com"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "First Post", entries[0].Title)
	require.Equal(t, "https://example.com/blog/first-post/", entries[0].Link)
	require.Equal(t, "The first one", entries[0].Summary)
	require.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), entries[0].PublishedAt)

	require.Equal(t, "Second Post", entries[1].Title)
	require.Equal(t, "https://example.com/blog/second-post/", entries[1].Link)
	require.NotEmpty(t, entries[1].Link)
}

func TestEntries_CustomSummaryField(t *testing.T) {
	stories := []story.Story{{
		Name:     "Post",
		FullSlug: "post",
		Content:  map[string]any{"teaser": "Teaser text", "intro": "ignored"},
	}}

	entries, err := Entries(stories, Options{BaseURL: "https://example.com", SummaryField: "teaser"})
	require.NoError(t, err)
	require.Equal(t, "Teaser text", entries[0].Summary)
}

func TestEntries_AbsentMetadataDegrades(t *testing.T) {
	entries, err := Entries([]story.Story{{Name: "Bare", FullSlug: "bare"}}, Options{BaseURL: "https://example.com/"})
	require.NoError(t, err)
	require.Equal(t, "", entries[0].Summary)
	require.True(t, entries[0].PublishedAt.IsZero())
	require.Equal(t, "https://example.com/bare/", entries[0].Link)
}

func TestEntries_RequiresBaseURL(t *testing.T) {
	_, err := Entries(nil, Options{})
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
}

func TestEntries_EmptyInput(t *testing.T) {
	entries, err := Entries(nil, Options{BaseURL: "https://example.com"})
	require.NoError(t, err)
	require.Empty(t, entries)
}
