package richtext

import (
	"html"
	"strings"
)

type markFunc func(m Mark) (opening, closing string)

// markResolvers maps mark kinds to tag pairs. An unrecognized mark kind is a
// transparent wrapper, so new CMS mark types degrade to plain text.
var markResolvers = map[string]markFunc{
	"bold":      simpleMark("b"),
	"italic":    simpleMark("i"),
	"underline": simpleMark("u"),
	"strike":    simpleMark("s"),
	"code":      simpleMark("code"),
	"link":      linkMark,
	"anchor":    anchorMark,
}

// markTags renders the opening and closing tag sequences for a mark list.
// The first mark in authoring order becomes the outermost wrapper.
func markTags(marks []Mark) (opening, closing string) {
	var open strings.Builder
	for _, m := range marks {
		resolve, ok := markResolvers[m.Kind]
		if !ok {
			continue
		}
		o, _ := resolve(m)
		open.WriteString(o)
	}
	// closing tags nest in reverse of opening order
	return open.String(), reverseTags(marks)
}

func simpleMark(tag string) markFunc {
	return func(Mark) (string, string) {
		return "<" + tag + ">", "</" + tag + ">"
	}
}

func linkMark(m Mark) (string, string) {
	href, ok := attrString(m.Attrs, "href")
	if !ok {
		return "", ""
	}
	if linktype, ok := attrString(m.Attrs, "linktype"); ok && linktype == "email" {
		href = "mailto:" + href
	}
	if anchor, ok := attrString(m.Attrs, "anchor"); ok {
		href += "#" + anchor
	}
	opening := `<a href="` + html.EscapeString(href) + `"`
	if target, ok := attrString(m.Attrs, "target"); ok {
		opening += ` target="` + html.EscapeString(target) + `"`
	}
	return opening + ">", "</a>"
}

func anchorMark(m Mark) (string, string) {
	id, ok := attrString(m.Attrs, "id")
	if !ok {
		return "", ""
	}
	return `<span id="` + html.EscapeString(id) + `">`, "</span>"
}

func reverseTags(marks []Mark) string {
	var sb strings.Builder
	for i := len(marks) - 1; i >= 0; i-- {
		resolve, ok := markResolvers[marks[i].Kind]
		if !ok {
			continue
		}
		_, c := resolve(marks[i])
		sb.WriteString(c)
	}
	return sb.String()
}
