// Package images derives optimized image URLs and responsive descriptors
// from CMS asset references using the asset host's transformation grammar.
//
// A transformed URL appends a /m/ segment carrying the requested geometry and
// filters, e.g.:
//
//	https://assets.example.com/f/1/img.jpg/m/800x400/filters:format(webp):quality(80)
//
// All functions are pure; validation failures surface as structured errors
// (category "validation" for malformed asset URLs, "config" for misconfigured
// sizing parameters).
package images

import (
	"fmt"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/storyrender/internal/errors"
)

// TransformOptions describes a single-image transformation. Zero values mean
// "not requested": a dimension of 0 is omitted from the geometry (the asset
// host scales proportionally), and geometry is dropped entirely when both
// dimensions are 0.
type TransformOptions struct {
	Width   int
	Height  int
	Quality int
	Format  string
}

// Transform appends a transformation segment to an asset URL. The URL must be
// absolute; relative references indicate a misconfigured call site.
func Transform(rawURL string, opts TransformOptions) (string, error) {
	if err := validateAssetURL(rawURL); err != nil {
		return "", err
	}

	parts := []string{"m"}
	if opts.Width > 0 || opts.Height > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", opts.Width, opts.Height))
	}
	if filters := buildFilters(opts); filters != "" {
		parts = append(parts, filters)
	}

	return strings.TrimSuffix(rawURL, "/") + "/" + strings.Join(parts, "/"), nil
}

func buildFilters(opts TransformOptions) string {
	var fs []string
	if opts.Format != "" {
		fs = append(fs, fmt.Sprintf("format(%s)", opts.Format))
	}
	if opts.Quality > 0 {
		fs = append(fs, fmt.Sprintf("quality(%d)", opts.Quality))
	}
	if len(fs) == 0 {
		return ""
	}
	return "filters:" + strings.Join(fs, ":")
}

func validateAssetURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(err, errors.CategoryValidation, errors.SeverityFatal, "asset url is not parseable").
			WithContext("url", rawURL)
	}
	if !u.IsAbs() || u.Host == "" {
		return errors.New(errors.CategoryValidation, errors.SeverityFatal, "asset url must be absolute").
			WithContext("url", rawURL)
	}
	return nil
}
