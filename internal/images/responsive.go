package images

import (
	"math"

	"git.home.luguber.info/inful/storyrender/internal/errors"
)

// Candidate is one width-keyed srcset entry.
type Candidate struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

// ResponsiveImage is a render-ready responsive descriptor: the primary source,
// the width-keyed candidate set in ascending width order, and the
// media-condition size hints in the order the caller supplied them.
type ResponsiveImage struct {
	PrimaryURL string      `json:"primary_url"`
	Candidates []Candidate `json:"candidates"`
	SizeHints  []string    `json:"size_hints,omitempty"`
}

// BuildResponsive derives one candidate per breakpoint, with each candidate's
// height computed from the aspect ratio (width/height). The primary URL is the
// transform at the largest breakpoint. Breakpoints must be strictly ascending
// and positive, and the aspect ratio must be positive; anything else is a
// configuration error at the call site.
func BuildResponsive(rawURL string, breakpoints []int, aspectRatio float64, sizeHints []string) (*ResponsiveImage, error) {
	if len(breakpoints) == 0 {
		return nil, errors.ConfigInvalid("breakpoints", "must not be empty")
	}
	if aspectRatio <= 0 {
		return nil, errors.ConfigInvalid("aspect_ratio", "must be positive").
			WithContext("value", aspectRatio)
	}
	prev := 0
	for _, bp := range breakpoints {
		if bp <= 0 {
			return nil, errors.ConfigInvalid("breakpoints", "must be positive").
				WithContext("value", bp)
		}
		if bp <= prev {
			return nil, errors.ConfigInvalid("breakpoints", "must be strictly ascending").
				WithContext("value", bp)
		}
		prev = bp
	}

	candidates := make([]Candidate, 0, len(breakpoints))
	for _, width := range breakpoints {
		u, err := Transform(rawURL, TransformOptions{
			Width:  width,
			Height: heightFor(width, aspectRatio),
		})
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{URL: u, Width: width})
	}

	return &ResponsiveImage{
		PrimaryURL: candidates[len(candidates)-1].URL,
		Candidates: candidates,
		SizeHints:  sizeHints,
	}, nil
}

func heightFor(width int, aspectRatio float64) int {
	return int(math.Round(float64(width) / aspectRatio))
}
