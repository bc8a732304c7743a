package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/marrow"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor marrow.PageExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract article content and metadata from an HTML file"`
	Serve   ServeCmd   `cmd:"" help:"Run the extraction HTTP service"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File     string `arg:"" help:"Path to an HTML file"`
	URL      string `arg:"" help:"Source URL used to resolve relative references"`
	Debug    bool   `short:"d" help:"Include intermediate stage output in the result"`
	Markdown bool   `short:"m" help:"Emit content as Markdown instead of plain text"`
	Engine   string `short:"e" default:"readability" enum:"readability,trafilatura" help:"Content extraction engine"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string `short:"a" default:":8676" env:"MARROW_ADDR" help:"Listen address"`
	Engine string `short:"e" default:"readability" enum:"readability,trafilatura" help:"Content extraction engine"`
}
