package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mdpdf/pkg/assemble"
	"github.com/matzehuels/mdpdf/pkg/discover"
	"github.com/matzehuels/mdpdf/pkg/errors"
	"github.com/matzehuels/mdpdf/pkg/layout"
	"github.com/matzehuels/mdpdf/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger and styles - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Logger *log.Logger
	Styles *layout.Styles
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger: logger,
		Styles: layout.DefaultStyles(),
	}
}

// Execute runs the complete discover → assemble → render pipeline and writes
// the output file. The output appears only when every stage succeeded.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8])
	result := &Result{RunID: runID, Output: opts.Output}

	// Stage 1: Discover
	discoverStart := time.Now()
	files, err := r.Discover(ctx, opts.Source)
	if err != nil {
		return nil, err
	}
	result.Files = files
	result.Stats.Files = len(files)
	result.Stats.DiscoverTime = time.Since(discoverStart)

	logger.Info("discovered documents",
		"files", len(files),
		"duration", result.Stats.DiscoverTime)

	// Stage 2: Assemble
	assembleStart := time.Now()
	res, err := r.Assemble(ctx, files, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	result.Warnings = res.Warnings
	result.Stats.Processed = res.Processed
	result.Stats.AssembleTime = time.Since(assembleStart)

	logger.Info("assembled document",
		"processed", res.Processed,
		"skipped", len(res.Warnings),
		"commands", res.Document.Len(),
		"duration", result.Stats.AssembleTime)

	// Stage 3: Render
	renderStart := time.Now()
	data, pages, err := r.Render(ctx, res.Document, opts, runID)
	if err != nil {
		return nil, err
	}
	result.Stats.Pages = pages
	result.Stats.Bytes = len(data)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writeAtomic(opts.Output, data); err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered output",
		"format", opts.Format,
		"pages", pages,
		"bytes", len(data),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Discover finds and orders the Markdown files under root.
func (r *Runner) Discover(ctx context.Context, root string) ([]discover.File, error) {
	hooks := observability.Pipeline()
	hooks.OnDiscoverStart(ctx, root)
	start := time.Now()

	files, err := discover.Discover(ctx, root)
	hooks.OnDiscoverComplete(ctx, root, len(files), time.Since(start), err)
	return files, err
}

// Assemble builds the layout document for files. File contents are read
// relative to opts.Source.
func (r *Runner) Assemble(ctx context.Context, files []discover.File, opts Options, logger *log.Logger) (*assemble.Result, error) {
	abs, err := filepath.Abs(opts.Source)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", opts.Source)
	}

	a := assemble.New(os.DirFS(abs),
		assemble.WithStyles(r.Styles),
		assemble.WithLogger(logger),
		assemble.WithProgress(opts.Progress),
	)
	return a.Assemble(ctx, files, assemble.Meta{
		Title:     opts.Title,
		Source:    opts.Source,
		Generated: opts.Generated,
	})
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
