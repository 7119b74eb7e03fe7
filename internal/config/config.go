// Package config loads the render profile: site identity, image sizing
// defaults, and feed settings.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/storyrender/internal/errors"
)

// Config represents the render profile
type Config struct {
	Site  SiteConfig  `yaml:"site"`
	Image ImageConfig `yaml:"image"`
	Feed  FeedConfig  `yaml:"feed"`
}

// SiteConfig identifies the site the artifacts are rendered for
type SiteConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
	Author  string `yaml:"author,omitempty"`
}

// ImageConfig holds responsive image derivation defaults
type ImageConfig struct {
	Breakpoints []int    `yaml:"breakpoints,omitempty"`
	AspectRatio float64  `yaml:"aspect_ratio,omitempty"`
	SizeHints   []string `yaml:"size_hints,omitempty"`
	Format      string   `yaml:"format,omitempty"`
	Quality     int      `yaml:"quality,omitempty"`
}

// FeedConfig holds feed generation settings
type FeedConfig struct {
	SummaryField string `yaml:"summary_field,omitempty"`
}

// Load loads the render profile from the specified file. Environment
// variables referenced in the YAML are expanded, with .env/.env.local
// consulted first.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "failed to read config file").
			WithContext("path", configPath)
	}

	expanded := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "failed to unmarshal config").
			WithContext("path", configPath)
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// DefaultBreakpoints matches the common device-width ladder.
var DefaultBreakpoints = []int{360, 640, 768, 1024, 1280, 1920}

func (c *Config) applyDefaults() {
	if len(c.Image.Breakpoints) == 0 {
		c.Image.Breakpoints = append([]int(nil), DefaultBreakpoints...)
	}
	if c.Image.AspectRatio == 0 {
		c.Image.AspectRatio = 16.0 / 9.0
	}
	if c.Feed.SummaryField == "" {
		c.Feed.SummaryField = "intro"
	}
}

func (c *Config) validate() error {
	if c.Site.BaseURL == "" {
		return errors.ConfigRequired("site.base_url")
	}
	if c.Image.AspectRatio < 0 {
		return errors.ConfigInvalid("image.aspect_ratio", "must be positive")
	}
	prev := 0
	for _, bp := range c.Image.Breakpoints {
		if bp <= prev {
			return errors.ConfigInvalid("image.breakpoints", "must be positive and strictly ascending")
		}
		prev = bp
	}
	return nil
}

// loadEnvFiles loads .env and .env.local when present. Existing process
// environment variables are not overwritten.
func loadEnvFiles() {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

// Init creates a new render profile with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.New(errors.CategoryConfig, errors.SeverityFatal, "configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath)
	}

	example := Config{
		Site: SiteConfig{
			Name:    "My Site",
			BaseURL: "https://example.com",
			Author:  "Site Author",
		},
		Image: ImageConfig{
			Breakpoints: DefaultBreakpoints,
			AspectRatio: 16.0 / 9.0,
			SizeHints:   []string{"(max-width: 768px) 100vw", "768px"},
			Format:      "webp",
			Quality:     80,
		},
		Feed: FeedConfig{SummaryField: "intro"},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, errors.SeverityFatal, "failed to marshal config")
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "failed to write config file").
			WithContext("path", configPath)
	}
	return nil
}
