// Package richtext renders CMS rich-text documents to HTML fragments and
// extracts heading anchors for table-of-contents generation.
//
// A document is a tree of kind-tagged nodes. Rendering is table-driven:
// every node and mark kind maps to a resolver, and unrecognized kinds degrade
// to a safe fallback instead of failing, so CMS schema additions never break
// existing deployments.
package richtext

import (
	"encoding/json"
	"strings"

	"git.home.luguber.info/inful/storyrender/internal/errors"
)

// Node is one element of a rich-text document tree. Its semantics are fully
// determined by Kind; all other fields are optional.
type Node struct {
	Kind    string         `json:"type"`
	Text    string         `json:"text,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Content []Node         `json:"content,omitempty"`
}

// Mark is a tag attached to a text node, e.g. emphasis or an anchor id.
// Authoring order within a node's mark list is preserved on output.
type Mark struct {
	Kind  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Decode parses a rich-text document from its CMS JSON payload.
func Decode(data []byte) (Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return Node{}, errors.ContentDecodeError(err)
	}
	return n, nil
}

// PlainText returns the concatenated text content of the subtree rooted at n,
// in document order.
func (n Node) PlainText() string {
	var sb strings.Builder
	n.appendText(&sb)
	return sb.String()
}

func (n Node) appendText(sb *strings.Builder) {
	sb.WriteString(n.Text)
	for _, child := range n.Content {
		child.appendText(sb)
	}
}

// attrString looks up a string attribute with an explicit presence check.
func attrString(attrs map[string]any, key string) (string, bool) {
	v, ok := attrs[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// attrInt looks up a numeric attribute. JSON numbers decode as float64.
func attrInt(attrs map[string]any, key string) (int, bool) {
	switch v := attrs[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
