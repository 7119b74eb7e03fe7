package richtext

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/storyrender/internal/errors"
)

func TestDecode_CMSPayload(t *testing.T) {
	payload := `{
		"type": "doc",
		"content": [
			{
				"type": "heading",
				"attrs": {"level": 2},
				"content": [
					{"type": "text", "text": "Intro", "marks": [{"type": "anchor", "attrs": {"id": "intro"}}]}
				]
			},
			{
				"type": "paragraph",
				"content": [{"type": "text", "text": "Body"}]
			}
		]
	}`

	n, err := Decode([]byte(payload))
	require.NoError(t, err)
	require.Equal(t, "doc", n.Kind)
	require.Len(t, n.Content, 2)
	require.Equal(t, "heading", n.Content[0].Kind)
	require.Equal(t, "anchor", n.Content[0].Content[0].Marks[0].Kind)
	require.Equal(t, "Intro Body", n.Content[0].PlainText()+" "+n.Content[1].PlainText())
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte("{nope"))
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryContent))
}

func TestPlainText_DocumentOrder(t *testing.T) {
	d := doc(
		Node{Kind: "paragraph", Content: []Node{text("a"), text("b")}},
		Node{Kind: "paragraph", Content: []Node{text("c")}},
	)
	require.Equal(t, "abc", d.PlainText())
}
