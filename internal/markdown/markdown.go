// Package markdown renders markdown-typed CMS content fields to sanitized
// HTML. Rich-text fields go through the richtext package instead; this path
// exists for components that author long-form content as markdown strings.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/storyrender/internal/errors"
	"git.home.luguber.info/inful/storyrender/internal/richtext"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithParserOptions(parser.WithHeadingAttribute(), parser.WithAutoHeadingID()),
	)
}

// parse runs the parser with a slug-aware id generator in the parse context.
func parse(md goldmark.Markdown, source []byte) gmast.Node {
	ctx := parser.NewContext(parser.WithIDs(newSlugIDs()))
	return md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// heading ids survive sanitization so in-page anchors keep working
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	return p
}

// Render converts a markdown body to a sanitized HTML fragment. Heading ids
// are generated from the heading text (or taken from an explicit attribute)
// and survive sanitization.
func Render(source []byte) (string, error) {
	md := newMarkdown()
	root := parse(md, source)

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, root); err != nil {
		return "", errors.RenderFailed("markdown", err)
	}
	return string(newPolicy().SanitizeBytes(buf.Bytes())), nil
}

// Anchors parses a markdown body and returns the heading anchors in document
// order, matching the richtext anchor contract. Every markdown heading gets
// an id, so every heading yields an entry; duplicate ids are suffixed by the
// id generator rather than deduplicated away.
func Anchors(source []byte) ([]richtext.Anchor, error) {
	root := parse(newMarkdown(), source)

	anchors := make([]richtext.Anchor, 0)
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		heading, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		id, found := heading.AttributeString("id")
		if !found {
			return gmast.WalkContinue, nil
		}
		idBytes, ok := id.([]byte)
		if !ok {
			return gmast.WalkContinue, nil
		}
		anchors = append(anchors, richtext.Anchor{
			ID:   string(idBytes),
			Text: string(headingText(heading, source)),
		})
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, errors.RenderFailed("markdown", err)
	}
	return anchors, nil
}

func headingText(n gmast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			buf.Write(t.Segment.Value(source))
			continue
		}
		buf.Write(headingText(c, source))
	}
	return buf.Bytes()
}
