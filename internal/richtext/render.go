package richtext

import (
	"fmt"
	"html"
	"strings"

	"git.home.luguber.info/inful/storyrender/internal/images"
	"git.home.luguber.info/inful/storyrender/internal/metrics"
)

// ImageSizing configures responsive derivation for embedded image nodes.
// When present, every image node is rendered with a srcset built from these
// breakpoints instead of the raw asset URL.
type ImageSizing struct {
	Breakpoints []int
	AspectRatio float64
	SizeHints   []string
}

// Options controls a single render invocation.
type Options struct {
	ImageSizing *ImageSizing
	// Metrics receives fallback observations for unrecognized node kinds.
	// Defaults to metrics.NoopRecorder.
	Metrics metrics.Recorder
}

// Render walks the document tree and returns an HTML fragment. Child output
// is concatenated in authored order. Unknown node kinds fall back to their
// text content; unknown marks are transparent. The only error conditions are
// caller-contract violations in Options (misconfigured image sizing) or an
// embedded asset URL that is not absolute.
func Render(doc Node, opts Options) (string, error) {
	if opts.Metrics == nil {
		opts.Metrics = metrics.NoopRecorder{}
	}
	r := &renderer{opts: opts}
	if err := r.node(doc); err != nil {
		return "", err
	}
	return r.sb.String(), nil
}

type renderer struct {
	sb   strings.Builder
	opts Options
}

type nodeFunc func(r *renderer, n Node) error

// nodeResolvers maps node kinds to resolvers. Kinds follow the CMS rich-text
// schema (ProseMirror-derived). Assigned in init because resolvers recurse
// through the table.
var nodeResolvers map[string]nodeFunc

func init() {
	nodeResolvers = map[string]nodeFunc{
		"doc":             (*renderer).children,
		"paragraph":       wrap("p"),
		"heading":         (*renderer).heading,
		"text":            (*renderer).text,
		"image":           (*renderer).image,
		"bullet_list":     wrap("ul"),
		"ordered_list":    wrap("ol"),
		"list_item":       wrap("li"),
		"blockquote":      wrap("blockquote"),
		"code_block":      (*renderer).codeBlock,
		"horizontal_rule": void("hr"),
		"hard_break":      void("br"),
	}
}

func (r *renderer) node(n Node) error {
	resolve, ok := nodeResolvers[n.Kind]
	if !ok {
		r.opts.Metrics.IncNodeFallback(n.Kind)
		return r.fallback(n)
	}
	return resolve(r, n)
}

func (r *renderer) children(n Node) error {
	for _, child := range n.Content {
		if err := r.node(child); err != nil {
			return err
		}
	}
	return nil
}

// fallback handles unrecognized node kinds: emit text content when present,
// otherwise descend into children. Never an error.
func (r *renderer) fallback(n Node) error {
	if n.Text != "" {
		r.sb.WriteString(html.EscapeString(n.Text))
		return nil
	}
	return r.children(n)
}

func wrap(tag string) nodeFunc {
	return func(r *renderer, n Node) error {
		r.sb.WriteString("<" + tag + ">")
		if err := r.children(n); err != nil {
			return err
		}
		r.sb.WriteString("</" + tag + ">")
		return nil
	}
}

func void(tag string) nodeFunc {
	return func(r *renderer, n Node) error {
		r.sb.WriteString("<" + tag + ">")
		return nil
	}
}

func (r *renderer) heading(n Node) error {
	level, ok := attrInt(n.Attrs, "level")
	if !ok || level < 1 || level > 6 {
		level = 1
	}
	tag := fmt.Sprintf("h%d", level)
	r.sb.WriteString("<" + tag + ">")
	if err := r.children(n); err != nil {
		return err
	}
	r.sb.WriteString("</" + tag + ">")
	return nil
}

func (r *renderer) codeBlock(n Node) error {
	r.sb.WriteString("<pre><code")
	if class, ok := attrString(n.Attrs, "class"); ok {
		r.sb.WriteString(` class="` + html.EscapeString(class) + `"`)
	}
	r.sb.WriteString(">")
	if err := r.children(n); err != nil {
		return err
	}
	r.sb.WriteString("</code></pre>")
	return nil
}

func (r *renderer) text(n Node) error {
	opening, closing := markTags(n.Marks)
	r.sb.WriteString(opening)
	r.sb.WriteString(html.EscapeString(n.Text))
	r.sb.WriteString(closing)
	return nil
}

func (r *renderer) image(n Node) error {
	src, ok := attrString(n.Attrs, "src")
	if !ok {
		return nil
	}

	var attrs []string
	if r.opts.ImageSizing != nil {
		s := r.opts.ImageSizing
		ri, err := images.BuildResponsive(src, s.Breakpoints, s.AspectRatio, s.SizeHints)
		if err != nil {
			return err
		}
		attrs = append(attrs, `src="`+html.EscapeString(ri.PrimaryURL)+`"`)
		attrs = append(attrs, `srcset="`+html.EscapeString(srcset(ri.Candidates))+`"`)
		if len(ri.SizeHints) > 0 {
			attrs = append(attrs, `sizes="`+html.EscapeString(strings.Join(ri.SizeHints, ", "))+`"`)
		}
	} else {
		attrs = append(attrs, `src="`+html.EscapeString(src)+`"`)
	}
	if alt, ok := attrString(n.Attrs, "alt"); ok {
		attrs = append(attrs, `alt="`+html.EscapeString(alt)+`"`)
	}
	if title, ok := attrString(n.Attrs, "title"); ok {
		attrs = append(attrs, `title="`+html.EscapeString(title)+`"`)
	}

	r.sb.WriteString("<img " + strings.Join(attrs, " ") + ">")
	return nil
}

func srcset(candidates []images.Candidate) string {
	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, fmt.Sprintf("%s %dw", c.URL, c.Width))
	}
	return strings.Join(parts, ", ")
}
