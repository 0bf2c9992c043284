// Package assemble builds the complete layout document for a set of
// discovered Markdown files: a title page, a table of contents linking to each
// file's section, and the translated content of every file in order.
//
// A file that cannot be read or parsed is skipped and reported as a Warning;
// the rest of the document is still produced. Only cancellation of the
// context stops assembly early.
package assemble

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mdpdf/pkg/discover"
	"github.com/matzehuels/mdpdf/pkg/errors"
	"github.com/matzehuels/mdpdf/pkg/layout"
	"github.com/matzehuels/mdpdf/pkg/markup"
	"github.com/matzehuels/mdpdf/pkg/observability"
	"github.com/matzehuels/mdpdf/pkg/translate"
)

// Fixed document strings.
const (
	DefaultTitle = "Project Documentation"
	TOCTitle     = "Table of Contents"
	DateLayout   = "02/01/2006 15:04"
)

// Parser turns Markdown source into markup nodes. *markup.Parser satisfies it.
type Parser interface {
	Parse(source []byte) (*markup.Document, error)
}

// Meta describes the document as a whole.
type Meta struct {
	Title     string    // Title page heading; DefaultTitle when empty
	Source    string    // Source folder as given by the user
	Generated time.Time // Shown on the title page; the assembler's clock when zero
}

// Warning records a file that was skipped.
type Warning struct {
	File discover.File
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.File.RelPath, errors.UserMessage(w.Err))
}

// Result is the assembled document and what happened along the way.
type Result struct {
	Document  *layout.Document
	Warnings  []Warning
	Processed int // Files whose content made it into the document
}

// ProgressFunc is called before file i (1-based) of n is processed.
type ProgressFunc func(i, n int, f discover.File)

// Option configures an Assembler.
type Option func(*Assembler)

// WithParser replaces the Markdown parser.
func WithParser(p Parser) Option { return func(a *Assembler) { a.parser = p } }

// WithStyles sets the presets used for spacer sizes.
func WithStyles(s *layout.Styles) Option { return func(a *Assembler) { a.styles = s } }

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(l *log.Logger) Option { return func(a *Assembler) { a.logger = l } }

// WithClock sets the time source used when Meta.Generated is zero.
func WithClock(now func() time.Time) Option { return func(a *Assembler) { a.now = now } }

// WithProgress registers a per-file progress callback.
func WithProgress(fn ProgressFunc) Option { return func(a *Assembler) { a.progress = fn } }

// Assembler reads files from a filesystem and builds the layout document.
// An Assembler is not safe for concurrent use.
type Assembler struct {
	fsys       fs.FS
	parser     Parser
	styles     *layout.Styles
	translator *translate.Translator
	logger     *log.Logger
	now        func() time.Time
	progress   ProgressFunc
}

// New returns an Assembler reading file contents from fsys by RelPath.
func New(fsys fs.FS, opts ...Option) *Assembler {
	a := &Assembler{
		fsys:   fsys,
		parser: markup.NewParser(),
		styles: layout.DefaultStyles(),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.translator = translate.New(a.styles)
	return a
}

// Assemble builds the document for files, which must already be in reading
// order. It returns a non-nil error only when ctx is cancelled.
func (a *Assembler) Assemble(ctx context.Context, files []discover.File, meta Meta) (*Result, error) {
	res := &Result{Document: &layout.Document{}}
	doc := res.Document

	a.titlePage(doc, meta)
	doc.Append(layout.PageBreak{})
	a.contents(doc, files)
	doc.Append(layout.PageBreak{})

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if a.progress != nil {
			a.progress(i+1, len(files), f)
		}

		start := time.Now()
		cmds, err := a.file(f)
		observability.Pipeline().OnFileProcessed(ctx, f.RelPath, time.Since(start), err)
		if err != nil {
			a.logger.Warn("skipping file", "file", f.RelPath, "err", err)
			res.Warnings = append(res.Warnings, Warning{File: f, Err: err})
			continue
		}

		doc.Append(cmds...)
		res.Processed++
		if i < len(files)-1 {
			doc.Append(layout.PageBreak{})
		}
		a.logger.Debug("translated file", "file", f.RelPath, "commands", len(cmds))
	}
	return res, nil
}

// file reads, parses and translates one document.
func (a *Assembler) file(f discover.File) ([]layout.Command, error) {
	src, err := fs.ReadFile(a.fsys, f.RelPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileRead, err, "read %s", f.RelPath)
	}
	parsed, err := a.parser.Parse(src)
	if err != nil {
		if errors.GetCode(err) == errors.ErrCodeParse {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", f.RelPath)
	}
	return a.translator.Translate(parsed.Nodes, translate.FileContext{
		RelPath: f.RelPath,
		Anchor:  translate.SectionAnchor(f.RelPath),
	}), nil
}

func (a *Assembler) titlePage(doc *layout.Document, meta Meta) {
	sp := a.styles.Spacing()
	title := meta.Title
	if title == "" {
		title = DefaultTitle
	}
	generated := meta.Generated
	if generated.IsZero() {
		generated = a.now()
	}

	doc.Append(
		layout.Spacer{Size: sp.TitleTop},
		layout.TitleText{Text: title, Tier: layout.Title},
		layout.Spacer{Size: sp.TitleGap},
		layout.TitleText{Text: "Generated from: " + meta.Source, Tier: layout.Heading3},
		layout.Spacer{Size: sp.DateGap},
		layout.Body(layout.Plain("Date: "+generated.Format(DateLayout))),
	)
}

// contents lists every discovered file, including ones that later fail; the
// link of a skipped file has no target and is dropped by the renderer.
func (a *Assembler) contents(doc *layout.Document, files []discover.File) {
	doc.Append(
		layout.TitleText{Text: TOCTitle, Tier: layout.Title, Outline: 1},
		layout.Spacer{Size: a.styles.Spacing().TOCGap},
	)
	for i, f := range files {
		doc.Append(layout.BodyText{
			Spans: []layout.Span{layout.Plain(strconv.Itoa(i+1) + ". " + f.RelPath)},
			Link:  translate.SectionAnchor(f.RelPath),
		})
	}
}
