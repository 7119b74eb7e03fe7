package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/storyrender/internal/config"
	"git.home.luguber.info/inful/storyrender/internal/feed"
	"git.home.luguber.info/inful/storyrender/internal/markdown"
	"git.home.luguber.info/inful/storyrender/internal/metrics"
	"git.home.luguber.info/inful/storyrender/internal/observability"
	"git.home.luguber.info/inful/storyrender/internal/richtext"
	"git.home.luguber.info/inful/storyrender/internal/story"
	"git.home.luguber.info/inful/storyrender/internal/structdata"
)

// artifacts is the render output bundle written next to each other in the
// output directory.
type artifacts struct {
	HTML         string            `json:"html"`
	MarkdownHTML string            `json:"markdown_html,omitempty"`
	Anchors      []richtext.Anchor `json:"anchors"`
	Schemas      []string          `json:"schemas"`
}

func runRender(cfg *config.Config) error {
	// Metrics default to noop in one-shot CLI runs; long-running embedders
	// inject a PrometheusRecorder instead.
	recorder := metrics.Recorder(metrics.NoopRecorder{})

	data, err := os.ReadFile(CLI.Render.Story)
	if err != nil {
		return err
	}
	s, err := story.Decode(data)
	if err != nil {
		return err
	}

	ctx := observability.WithStorySlug(context.Background(), s.FullSlug)
	start := time.Now()

	out, err := renderStory(ctx, cfg, s, recorder)
	recorder.ObserveRenderDuration("story", time.Since(start))
	if err != nil {
		recorder.IncRenderResult("story", metrics.ResultError)
		return err
	}
	recorder.IncRenderResult("story", metrics.ResultSuccess)

	return writeArtifacts(ctx, s, out)
}

func renderStory(ctx context.Context, cfg *config.Config, s story.Story, recorder metrics.Recorder) (*artifacts, error) {
	out := &artifacts{Anchors: []richtext.Anchor{}}

	if raw, ok := s.Field(CLI.Render.Field); ok {
		doc, err := decodeRichText(raw)
		if err != nil {
			return nil, err
		}
		html, err := richtext.Render(doc, richtext.Options{
			ImageSizing: &richtext.ImageSizing{
				Breakpoints: cfg.Image.Breakpoints,
				AspectRatio: cfg.Image.AspectRatio,
				SizeHints:   cfg.Image.SizeHints,
			},
			Metrics: recorder,
		})
		if err != nil {
			return nil, err
		}
		out.HTML = html
		out.Anchors = richtext.Anchors(doc)
		observability.DebugContext(ctx, "Rendered rich text", observability.FieldCount(len(out.Anchors)))
	} else {
		observability.WarnContext(ctx, "Story has no rich-text body", slog.String("field", CLI.Render.Field))
	}

	if err := renderMarkdownField(ctx, s, out); err != nil {
		return nil, err
	}

	schemas, err := buildSchemas(cfg, s)
	if err != nil {
		return nil, err
	}
	out.Schemas = schemas

	return out, nil
}

// decodeRichText accepts the field either as an embedded object or as a
// pre-serialized JSON string.
func decodeRichText(raw any) (richtext.Node, error) {
	if s, ok := raw.(string); ok {
		return richtext.Decode([]byte(s))
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return richtext.Node{}, err
	}
	return richtext.Decode(data)
}

func buildSchemas(cfg *config.Config, s story.Story) ([]string, error) {
	var published, modified string
	if t, ok := s.PublishedTime(); ok {
		published = t.Format(time.RFC3339)
	}
	if s.PublishedAt != "" && s.FirstPublishedAt != "" && s.PublishedAt != s.FirstPublishedAt {
		modified = s.PublishedAt
	}

	description, _ := s.StringField(cfg.Feed.SummaryField)
	posting := structdata.NewBlogPosting(structdata.BlogPostingConfig{
		Headline:      s.Name,
		Description:   description,
		URL:           strings.TrimSuffix(cfg.Site.BaseURL, "/") + "/" + s.FullSlug,
		DatePublished: published,
		DateModified:  modified,
		Author:        cfg.Site.Author,
		Keywords:      s.TagList,
	})

	site := structdata.NewWebSite(structdata.WebSiteConfig{
		Name:      cfg.Site.Name,
		URL:       cfg.Site.BaseURL,
		Publisher: cfg.Site.Author,
	})

	breadcrumbs, err := structdata.NewBreadcrumbList(storyCrumbs(s), cfg.Site.BaseURL)
	if err != nil {
		return nil, err
	}

	serialized := make([]string, 0, 3)
	for _, schema := range []structdata.Schema{site, posting, breadcrumbs} {
		out, err := structdata.Serialize(schema)
		if err != nil {
			return nil, err
		}
		serialized = append(serialized, out)
	}
	return serialized, nil
}

// storyCrumbs derives a breadcrumb trail from the story's path segments. The
// final segment is the story itself and carries no URL.
func storyCrumbs(s story.Story) []structdata.Crumb {
	segments := strings.Split(strings.Trim(s.FullSlug, "/"), "/")
	crumbs := make([]structdata.Crumb, 0, len(segments)+1)
	crumbs = append(crumbs, structdata.Crumb{Name: "Home", URL: "/"})
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if i == len(segments)-1 {
			crumbs = append(crumbs, structdata.Crumb{Name: s.Name})
			continue
		}
		crumbs = append(crumbs, structdata.Crumb{
			Name: seg,
			URL:  "/" + strings.Join(segments[:i+1], "/"),
		})
	}
	return crumbs
}

func renderMarkdownField(ctx context.Context, s story.Story, out *artifacts) error {
	if CLI.Render.MarkdownField == "" {
		return nil
	}
	body, ok := s.StringField(CLI.Render.MarkdownField)
	if !ok {
		observability.WarnContext(ctx, "Story has no markdown body", slog.String("field", CLI.Render.MarkdownField))
		return nil
	}
	html, err := markdown.Render([]byte(body))
	if err != nil {
		return err
	}
	out.MarkdownHTML = html
	return nil
}

func writeArtifacts(ctx context.Context, s story.Story, out *artifacts) error {
	if err := os.MkdirAll(CLI.Render.Output, 0o755); err != nil {
		return err
	}
	name := s.Slug
	if name == "" {
		name = "story"
	}
	path := filepath.Join(CLI.Render.Output, name+".json")

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	observability.InfoContext(ctx, "Artifacts written", observability.FieldPath(path))
	return nil
}

func runFeed(cfg *config.Config) error {
	data, err := os.ReadFile(CLI.Feed.Stories)
	if err != nil {
		return err
	}
	stories, err := story.DecodeList(data)
	if err != nil {
		return err
	}

	entries, err := feed.Entries(stories, feed.Options{
		BaseURL:      cfg.Site.BaseURL,
		SummaryField: cfg.Feed.SummaryField,
	})
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if CLI.Feed.Output == "-" {
		_, err = os.Stdout.Write(append(encoded, '\n'))
		return err
	}
	return os.WriteFile(CLI.Feed.Output, encoded, 0o644)
}
