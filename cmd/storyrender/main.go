// Command storyrender turns fetched CMS story payloads into render-ready
// artifacts: HTML fragments, heading anchors, linked-data graphs, and feed
// entries. It never talks to the CMS; callers supply already-fetched JSON.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/storyrender/internal/config"
	"git.home.luguber.info/inful/storyrender/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Render profile path" default:"storyrender.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Render struct {
		Story         string `arg:"" help:"Path to a fetched story JSON payload"`
		Output        string `short:"o" help:"Output directory for artifacts" default:"./out"`
		Field         string `help:"Content field holding the rich-text body" default:"body"`
		MarkdownField string `help:"Optional content field holding a markdown body"`
	} `cmd:"" help:"Render one story into HTML, anchors, and linked-data artifacts"`

	Feed struct {
		Stories string `arg:"" help:"Path to a fetched story list JSON payload (published stories only)"`
		Output  string `short:"o" help:"Output file for feed entries" default:"-"`
	} `cmd:"" help:"Map published stories to syndication feed entries"`

	Init struct {
		Force bool `help:"Overwrite existing render profile"`
	} `cmd:"" help:"Initialize a new render profile"`

	Version struct{} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "render <story>":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load render profile", "error", err)
			os.Exit(1)
		}
		if err := runRender(cfg); err != nil {
			slog.Error("Render failed", "error", err)
			os.Exit(1)
		}

	case "feed <stories>":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load render profile", "error", err)
			os.Exit(1)
		}
		if err := runFeed(cfg); err != nil {
			slog.Error("Feed generation failed", "error", err)
			os.Exit(1)
		}

	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Failed to initialize render profile", "error", err)
			os.Exit(1)
		}
		slog.Info("Render profile created", "path", CLI.Config)

	case "version":
		fmt.Printf("storyrender %s (built %s, commit %s)\n", version.Version, version.BuildTime, version.GitCommit)

	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}
