package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mdpdf/pkg/config"
	"github.com/matzehuels/mdpdf/pkg/errors"
	"github.com/matzehuels/mdpdf/pkg/observability"
	"github.com/matzehuels/mdpdf/pkg/render/pdf"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func parsedConvertCommand(t *testing.T, args ...string) (*cobra.Command, convertOpts) {
	t.Helper()
	var opts convertOpts
	cmd := &cobra.Command{Use: "test"}
	bindConvertFlags(cmd, &opts)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd, opts
}

func TestResolveConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), "title = \"From File\"\npage_size = \"a4\"\n")

	tests := []struct {
		name      string
		args      []string
		wantTitle string
		wantSize  string
		wantOut   string
	}{
		{"file over defaults", nil, "From File", pdf.SizeA4, config.DefaultOutput + ".pdf"},
		{"flag over file", []string{"--title", "From Flag"}, "From Flag", pdf.SizeA4, config.DefaultOutput + ".pdf"},
		{"page size flag", []string{"--page-size", "letter"}, "From File", pdf.SizeLetter, config.DefaultOutput + ".pdf"},
		{"json format", []string{"-f", "json", "-o", "layout"}, "From File", pdf.SizeA4, "layout.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, opts := parsedConvertCommand(t, tt.args...)
			cfg, err := resolveConfig(cmd, dir, opts)
			if err != nil {
				t.Fatalf("resolveConfig: %v", err)
			}
			if cfg.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", cfg.Title, tt.wantTitle)
			}
			if cfg.PageSize != tt.wantSize {
				t.Errorf("PageSize = %q, want %q", cfg.PageSize, tt.wantSize)
			}
			if got := cfg.OutputPath(); got != tt.wantOut {
				t.Errorf("OutputPath() = %q, want %q", got, tt.wantOut)
			}
		})
	}
}

func TestResolveConfigWithoutFile(t *testing.T) {
	cmd, opts := parsedConvertCommand(t)
	cfg, err := resolveConfig(cmd, t.TempDir(), opts)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("resolveConfig() = %+v, want defaults", cfg)
	}
}

func TestResolveConfigErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "titel = \"typo\"\n")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown page size", []string{"--page-size", "legal"}, errors.ErrCodeInvalidConfig},
		{"unknown format", []string{"--format", "docx"}, errors.ErrCodeInvalidFormat},
		{"unknown config key", []string{"--config", bad}, errors.ErrCodeInvalidConfig},
		{"missing config file", []string{"--config", filepath.Join(dir, "missing.toml")}, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, opts := parsedConvertCommand(t, tt.args...)
			_, err := resolveConfig(cmd, dir, opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("resolveConfig(%v) error = %v, want code %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestErrorHeadline(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.New(errors.ErrCodeNoDocuments, "none"), "No Markdown files found"},
		{errors.New(errors.ErrCodeInvalidPath, "bad"), "Invalid input"},
		{errors.New(errors.ErrCodeInvalidFormat, "bad"), "Invalid input"},
		{errors.New(errors.ErrCodeRender, "bad"), "Rendering failed"},
		{io.ErrUnexpectedEOF, "Conversion failed"},
	}
	for _, tt := range tests {
		if got := errorHeadline(tt.err); got != tt.want {
			t.Errorf("errorHeadline(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, errors.New(errors.ErrCodeNoDocuments, "no markdown files in docs"))
	if !strings.Contains(buf.String(), "no markdown files in docs") {
		t.Errorf("ReportError output = %q", buf.String())
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 pages"},
		{1, "1 page"},
		{12, "12 pages"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, "page"); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRootCommandConvertsFolder(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "1-intro.md"), "# Intro\n\nHello.\n")
	writeFile(t, filepath.Join(src, "2-setup.md"), "# Setup\n\n- one\n- two\n")
	out := filepath.Join(t.TempDir(), "handbook")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{src, "-o", out, "--title", "Handbook"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(out + ".pdf")
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestRootCommandNoDocuments(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{t.TempDir(), "-o", filepath.Join(t.TempDir(), "out")})
	err := root.ExecuteContext(context.Background())
	if !errors.Is(err, errors.ErrCodeNoDocuments) {
		t.Errorf("Execute error = %v, want NO_DOCUMENTS", err)
	}
}

func TestRootCommandRequiresFolder(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("Execute without a folder should fail")
	}
}

func TestSetLogLevelDebugInstallsHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogDebug)

	observability.Pipeline().OnFileProcessed(context.Background(), "1-intro.md", time.Millisecond, nil)
	if !strings.Contains(buf.String(), "1-intro.md") {
		t.Errorf("debug hooks did not log the file event: %q", buf.String())
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnDiscoverStart(ctx, "docs")
	h.OnDiscoverComplete(ctx, "docs", 3, time.Millisecond, nil)
	h.OnFileProcessed(ctx, "2-broken.md", time.Millisecond, io.ErrUnexpectedEOF)
	h.OnRenderStart(ctx, "pdf")
	h.OnRenderComplete(ctx, "pdf", 4, time.Millisecond, nil)

	out := buf.String()
	for _, want := range []string{"discovering", "discovery finished", "file skipped", "2-broken.md", "rendering", "render finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
