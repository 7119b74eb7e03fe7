package markdown

import (
	"fmt"
	"strings"
	"unicode"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugIDs implements parser.IDs with diacritic-stripped, deduplicated slugs.
type slugIDs struct {
	used map[string]bool
}

func newSlugIDs() parser.IDs {
	return &slugIDs{used: map[string]bool{}}
}

func (s *slugIDs) Generate(value []byte, kind gmast.NodeKind) []byte {
	slug := Slug(string(value))
	if slug == "" {
		slug = "heading"
	}
	candidate := slug
	for i := 1; s.used[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
	s.used[candidate] = true
	return []byte(candidate)
}

func (s *slugIDs) Put(value []byte) {
	s.used[string(value)] = true
}

// stripMarks removes combining marks left over after NFD decomposition.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a URL-safe anchor id from heading text: diacritics stripped,
// lowercased, non-alphanumeric runs collapsed to single hyphens.
func Slug(s string) string {
	stripped, _, err := transform.String(stripMarks, s)
	if err == nil {
		s = stripped
	}

	var sb strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			sb.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
