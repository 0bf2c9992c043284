// Package pipeline provides the conversion pipeline for mdpdf.
//
// This package implements the complete discover → assemble → render pipeline
// behind the CLI. By centralizing this logic, every entry point gets the same
// ordering, the same per-file error policy and the same atomic output.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Discover: Walk the source folder and order its Markdown files
//  2. Assemble: Build the title page, table of contents and per-file sections
//  3. Render: Paginate the document and emit PDF (or the JSON layout dump)
//
// A file that cannot be read or parsed does not stop the run; it is returned
// as a warning in Result.Warnings.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source: "docs",
//	    Output: "documentation.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output, result.Stats.Pages)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mdpdf/pkg/assemble"
	"github.com/matzehuels/mdpdf/pkg/config"
	"github.com/matzehuels/mdpdf/pkg/discover"
	"github.com/matzehuels/mdpdf/pkg/errors"
	"github.com/matzehuels/mdpdf/pkg/render/pdf"
)

// =============================================================================
// Default Values
// =============================================================================

// Format constants for output formats.
const (
	FormatPDF  = config.FormatPDF
	FormatJSON = config.FormatJSON
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one conversion.
type Options struct {
	Source   string  `json:"source"`
	Output   string  `json:"output"` // Final path; see config.Config.OutputPath
	Format   string  `json:"format,omitempty"`
	Title    string  `json:"title,omitempty"`
	Author   string  `json:"author,omitempty"`
	PageSize string  `json:"page_size,omitempty"`
	Margin   float64 `json:"margin,omitempty"` // Points; zero means pdf.DefaultMargin

	// Runtime options (not serialized)
	Logger    *log.Logger           `json:"-"`
	Progress  assemble.ProgressFunc `json:"-"`
	Generated time.Time             `json:"-"` // Title page timestamp; now when zero

	geometry  pdf.Geometry
	validated bool
}

// FromConfig builds Options for source from loaded settings.
func FromConfig(source string, cfg config.Config) Options {
	return Options{
		Source:   source,
		Output:   cfg.OutputPath(),
		Format:   cfg.Format,
		Title:    cfg.Title,
		Author:   cfg.Author,
		PageSize: cfg.PageSize,
		Margin:   cfg.Margin,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and in the PDF keywords.
	RunID string

	// Output is the path that was written.
	Output string

	// Files are the discovered documents in reading order.
	Files []discover.File

	// Warnings lists the files that were skipped.
	Warnings []assemble.Warning

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Files        int
	Processed    int
	Pages        int
	Bytes        int
	DiscoverTime time.Duration
	AssembleTime time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: pdf, json)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateSourceDir(o.Source); err != nil {
		return err
	}

	if o.Format == "" {
		o.Format = FormatPDF
	}
	o.Format = strings.ToLower(o.Format)
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}

	if o.Output == "" {
		o.Output = config.Default().OutputPath()
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}

	if o.PageSize == "" {
		o.PageSize = pdf.SizeLetter
	}
	if o.Margin == 0 {
		o.Margin = pdf.DefaultMargin
	}
	g, err := pdf.GeometryFor(o.PageSize, o.Margin)
	if err != nil {
		return err
	}
	o.geometry = g

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Geometry returns the page setup. It is only meaningful after validation.
func (o *Options) Geometry() pdf.Geometry { return o.geometry }
