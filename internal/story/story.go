// Package story models CMS story metadata as supplied by the caller's
// content fetch. The rendering core never fetches; it only consumes these
// already-retrieved payloads.
package story

import (
	"encoding/json"
	"time"

	"git.home.luguber.info/inful/storyrender/internal/errors"
)

// Story is one content entry. Content carries the component-specific fields
// as a loosely typed map; accessors perform explicit presence checks.
type Story struct {
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	FullSlug         string         `json:"full_slug"`
	UUID             string         `json:"uuid,omitempty"`
	CreatedAt        string         `json:"created_at,omitempty"`
	PublishedAt      string         `json:"published_at,omitempty"`
	FirstPublishedAt string         `json:"first_published_at,omitempty"`
	TagList          []string       `json:"tag_list,omitempty"`
	Content          map[string]any `json:"content,omitempty"`
}

// Decode parses a single story payload.
func Decode(data []byte) (Story, error) {
	var s Story
	if err := json.Unmarshal(data, &s); err != nil {
		return Story{}, errors.ContentDecodeError(err)
	}
	return s, nil
}

// DecodeList parses a list-of-stories payload.
func DecodeList(data []byte) ([]Story, error) {
	var stories []Story
	if err := json.Unmarshal(data, &stories); err != nil {
		return nil, errors.ContentDecodeError(err)
	}
	return stories, nil
}

// Field returns a content field with an explicit presence check.
func (s Story) Field(name string) (any, bool) {
	v, ok := s.Content[name]
	return v, ok
}

// StringField returns a content field when present and a non-empty string.
func (s Story) StringField(name string) (string, bool) {
	v, ok := s.Content[name]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	if !ok || str == "" {
		return "", false
	}
	return str, true
}

// timestampLayouts covers the formats the CMS emits for publish metadata.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// PublishedTime parses the story's publish timestamp, falling back to the
// first-published and created timestamps when the publish field is absent.
func (s Story) PublishedTime() (time.Time, bool) {
	for _, raw := range []string{s.PublishedAt, s.FirstPublishedAt, s.CreatedAt} {
		if raw == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
