package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/marrow"
)

// Stable failure codes for file-mode extraction.
const (
	CodeFileNotFound    = "FILE_NOT_FOUND"
	CodeNotAFile        = "NOT_A_FILE"
	CodeInvalidURL      = "INVALID_URL"
	CodeProcessingError = "PROCESSING_ERROR"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	info, err := os.Stat(c.File)
	if os.IsNotExist(err) {
		writeEnvelope(deps, marrow.ErrorEnvelope(fmt.Sprintf("file not found: %s", c.File), CodeFileNotFound))
		return marrow.Errorf(marrow.ENOTFOUND, "file not found: %s", c.File)
	}
	if err != nil {
		writeEnvelope(deps, marrow.ErrorEnvelope(err.Error(), CodeFileNotFound))
		return err
	}
	if info.IsDir() {
		writeEnvelope(deps, marrow.ErrorEnvelope(fmt.Sprintf("not a file: %s", c.File), CodeNotAFile))
		return marrow.Errorf(marrow.ENOTFILE, "not a file: %s", c.File)
	}

	if err := marrow.ValidateURL(c.URL); err != nil {
		writeEnvelope(deps, marrow.ErrorEnvelope(marrow.ErrorMessage(err), CodeInvalidURL))
		return err
	}

	html, err := os.ReadFile(c.File)
	if err != nil {
		writeEnvelope(deps, marrow.ErrorEnvelope(err.Error(), CodeProcessingError))
		return err
	}

	opts := marrow.ExtractOptions{URL: c.URL, Debug: c.Debug}
	if c.Markdown {
		opts.Format = marrow.FormatMarkdown
	}

	result, err := deps.Extractor.ExtractPage(deps.Ctx, string(html), opts)
	if err != nil {
		writeEnvelope(deps, marrow.ErrorEnvelope(marrow.ErrorMessage(err), CodeProcessingError))
		return err
	}

	writeEnvelope(deps, marrow.SuccessEnvelope(result, ""))
	return nil
}

// writeEnvelope pretty-prints an envelope to stdout.
func writeEnvelope(deps *Dependencies, env marrow.Envelope) {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	_ = enc.Encode(env)
}
