package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_BasicMarkdown(t *testing.T) {
	got, err := Render([]byte("## Getting Started\n\nSome *emphasis* and a [link](https://example.com).\n"))
	require.NoError(t, err)

	require.Contains(t, got, `<h2 id="getting-started">Getting Started</h2>`)
	require.Contains(t, got, "<em>emphasis</em>")
	require.Contains(t, got, `<a href="https://example.com"`)
}

func TestRender_SanitizesScriptContent(t *testing.T) {
	got, err := Render([]byte("Hello\n\n<script>alert(1)</script>\n"))
	require.NoError(t, err)
	require.NotContains(t, got, "<script>")
	require.Contains(t, got, "Hello")
}

func TestAnchors_DocumentOrderAndExplicitIDs(t *testing.T) {
	src := []byte("# Intro\n\ntext\n\n## Details {#custom-id}\n\n## Wrap Up\n")

	anchors, err := Anchors(src)
	require.NoError(t, err)
	require.Len(t, anchors, 3)
	require.Equal(t, "intro", anchors[0].ID)
	require.Equal(t, "Intro", anchors[0].Text)
	require.Equal(t, "custom-id", anchors[1].ID)
	require.Equal(t, "wrap-up", anchors[2].ID)
	require.Equal(t, "Wrap Up", anchors[2].Text)
}

func TestAnchors_DuplicateHeadingsGetSuffixedIDs(t *testing.T) {
	anchors, err := Anchors([]byte("## Notes\n\n## Notes\n"))
	require.NoError(t, err)
	require.Len(t, anchors, 2)
	require.Equal(t, "notes", anchors[0].ID)
	require.Equal(t, "notes-1", anchors[1].ID)
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Getting Started", "getting-started"},
		{"Héllo Wörld", "hello-world"},
		{"  spaces  &  symbols!  ", "spaces-symbols"},
		{"CamelCase123", "camelcase123"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Slug(tc.in), "input %q", tc.in)
	}
}
