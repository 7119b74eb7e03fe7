package richtext

// Anchor is one table-of-contents entry extracted from a heading.
type Anchor struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Anchors walks the document and collects, in document order, the anchor id
// and plain text of every heading whose first text-bearing child carries an
// anchor mark. Headings without an anchor id are skipped entirely. Duplicate
// ids are preserved as authored; deduplication is the caller's concern when
// building in-page navigation.
func Anchors(doc Node) []Anchor {
	anchors := make([]Anchor, 0)
	collectAnchors(doc, &anchors)
	return anchors
}

func collectAnchors(n Node, out *[]Anchor) {
	if n.Kind == "heading" {
		if id, ok := headingAnchorID(n); ok {
			*out = append(*out, Anchor{ID: id, Text: n.PlainText()})
		}
		return
	}
	for _, child := range n.Content {
		collectAnchors(child, out)
	}
}

func headingAnchorID(heading Node) (string, bool) {
	for _, child := range heading.Content {
		if child.Text == "" {
			continue
		}
		for _, m := range child.Marks {
			if m.Kind != "anchor" {
				continue
			}
			if id, ok := attrString(m.Attrs, "id"); ok {
				return id, true
			}
		}
		// only the first text-bearing child is inspected
		return "", false
	}
	return "", false
}
