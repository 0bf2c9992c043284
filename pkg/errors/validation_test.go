package errors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateSourceDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(file, []byte("# Notes"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"existing directory", dir, false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"missing", filepath.Join(dir, "missing"), true},
		{"regular file", file, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceDir(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSourceDir(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateSourceDir(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"new file in existing dir", filepath.Join(dir, "out.pdf"), false},
		{"relative filename", "documentation.pdf", false},
		{"empty", "", true},
		{"control char", filepath.Join(dir, "out\x01.pdf"), true},
		{"existing directory", dir, true},
		{"missing parent", filepath.Join(dir, "nope", "out.pdf"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidPath,
		ErrCodeInvalidConfig,
		ErrCodeInvalidFormat,
		ErrCodeNoDocuments,
		ErrCodeFileRead,
		ErrCodeParse,
		ErrCodeRender,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
