package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/storyrender/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storyrender.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
site:
  name: Example
  base_url: https://example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultBreakpoints, cfg.Image.Breakpoints)
	require.InDelta(t, 16.0/9.0, cfg.Image.AspectRatio, 1e-9)
	require.Equal(t, "intro", cfg.Feed.SummaryField)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("SITE_BASE_URL", "https://env.example.com")
	path := writeConfig(t, `
site:
  base_url: ${SITE_BASE_URL}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", cfg.Site.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	path := writeConfig(t, `
site:
  name: No URL
`)

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
}

func TestLoad_RejectsUnsortedBreakpoints(t *testing.T) {
	path := writeConfig(t, `
site:
  base_url: https://example.com
image:
  breakpoints: [640, 320]
`)

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryConfig))
}

func TestInit_WritesLoadableProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storyrender.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", cfg.Site.BaseURL)

	// refuses to overwrite without force
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
