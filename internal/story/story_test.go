package story

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecode_StoryPayload(t *testing.T) {
	payload := `{
		"name": "A Post",
		"slug": "a-post",
		"full_slug": "blog/a-post",
		"published_at": "2024-05-01T10:00:00Z",
		"tag_list": ["go"],
		"content": {"component": "post", "intro": "Short intro", "title": "A Post"}
	}`

	s, err := Decode([]byte(payload))
	require.NoError(t, err)
	require.Equal(t, "A Post", s.Name)
	require.Equal(t, "blog/a-post", s.FullSlug)

	intro, ok := s.StringField("intro")
	require.True(t, ok)
	require.Equal(t, "Short intro", intro)

	_, ok = s.StringField("missing")
	require.False(t, ok)
}

func TestStringField_NonStringValue(t *testing.T) {
	s := Story{Content: map[string]any{"count": float64(3)}}

	_, ok := s.StringField("count")
	require.False(t, ok)

	v, ok := s.Field("count")
	require.True(t, ok)
	require.Equal(t, float64(3), v)
}

func TestPublishedTime_Layouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2024-05-01T10:00:00Z", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01 10:00", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := Story{PublishedAt: tc.raw}.PublishedTime()
		require.True(t, ok, "raw %q", tc.raw)
		require.True(t, tc.want.Equal(got), "raw %q", tc.raw)
	}
}

func TestPublishedTime_FallsBackToCreated(t *testing.T) {
	s := Story{CreatedAt: "2024-01-15T08:30:00Z"}
	got, ok := s.PublishedTime()
	require.True(t, ok)
	require.Equal(t, 2024, got.Year())
}

func TestPublishedTime_AbsentMetadata(t *testing.T) {
	_, ok := Story{}.PublishedTime()
	require.False(t, ok)
}
