// Package feed maps published stories into syndication feed entries.
//
// The caller must restrict the input to publicly visible stories before
// calling; feeds are always public artifacts, so callers force published
// content regardless of the ambient build mode. No visibility filtering
// happens here.
package feed

import (
	"strings"
	"time"

	"git.home.luguber.info/inful/storyrender/internal/errors"
	"git.home.luguber.info/inful/storyrender/internal/story"
)

// DefaultSummaryField is the content field used for entry summaries unless
// the caller designates another.
const DefaultSummaryField = "intro"

// Options configures feed generation.
type Options struct {
	// BaseURL is the site root every entry link is resolved under. Required.
	BaseURL string
	// SummaryField names the content field holding the entry summary.
	// Defaults to DefaultSummaryField.
	SummaryField string
}

// Entry is one syndication feed item.
type Entry struct {
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	Summary     string    `json:"summary"`
	Link        string    `json:"link"`
}

// Entries maps stories to feed entries in input order. Absent publish
// metadata or summary fields degrade to zero values; a missing base URL is a
// configuration error.
func Entries(stories []story.Story, opts Options) ([]Entry, error) {
	if opts.BaseURL == "" {
		return nil, errors.ConfigRequired("base_url")
	}
	summaryField := opts.SummaryField
	if summaryField == "" {
		summaryField = DefaultSummaryField
	}

	entries := make([]Entry, 0, len(stories))
	for _, s := range stories {
		e := Entry{
			Title: s.Name,
			Link:  entryLink(opts.BaseURL, s.FullSlug),
		}
		if t, ok := s.PublishedTime(); ok {
			e.PublishedAt = t
		}
		if summary, ok := s.StringField(summaryField); ok {
			e.Summary = summary
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func entryLink(baseURL, fullSlug string) string {
	base := strings.TrimSuffix(baseURL, "/")
	slug := strings.Trim(fullSlug, "/")
	if slug == "" {
		return base + "/"
	}
	return base + "/" + slug + "/"
}
