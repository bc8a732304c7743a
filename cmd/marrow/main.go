package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/marrow"
	"github.com/fwojciec/marrow/bluemonday"
	"github.com/fwojciec/marrow/goquery"
	"github.com/fwojciec/marrow/html2text"
	"github.com/fwojciec/marrow/htmltomarkdown"
	"github.com/fwojciec/marrow/pipeline"
	"github.com/fwojciec/marrow/readability"
	marrowslog "github.com/fwojciec/marrow/slog"
	"github.com/fwojciec/marrow/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Extractor overrides the wired pipeline. Set before calling Run() for
	// end-to-end testing.
	Extractor marrow.PageExtractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("marrow"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'marrow --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	engine := cli.Extract.Engine
	if cmd == "serve" {
		engine = cli.Serve.Engine
	}

	deps.Extractor = m.Extractor
	if deps.Extractor == nil {
		deps.Extractor = newPipeline(engine, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newPipeline wires the extraction pipeline with the chosen content engine.
func newPipeline(engine string, logger *slog.Logger) *pipeline.Pipeline {
	var content marrow.ContentExtractor
	switch engine {
	case "trafilatura":
		content = trafilatura.NewExtractor()
	default:
		content = readability.NewExtractor()
	}

	return &pipeline.Pipeline{
		Metadata: marrowslog.NewLoggingMetadataExtractor(goquery.NewExtractor(), logger),
		Content:  marrowslog.NewLoggingContentExtractor(content, logger),
		Sanitize: bluemonday.NewSanitizer(),
		Text:     html2text.NewConverter(),
		Favicons: goquery.NewFavicons(),
		Markdown: htmltomarkdown.NewConverter(),
	}
}
