// Package discover finds the Markdown documents under a source folder and puts
// them in a deterministic reading order.
//
// Files are ordered by directory depth first (shallower files come before
// deeper ones), then by the SortKey of their base name, so numbered files such
// as "1-intro.md" and "2.1-setup.md" come out in numeric order and unnumbered
// files follow alphabetically:
//
//	files, err := discover.Discover("docs")
//	if errors.Is(err, discover.ErrNoDocuments) {
//	    // nothing to convert
//	}
package discover

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/mdpdf/pkg/errors"
)

// Extension is the file extension recognized as Markdown.
const Extension = ".md"

// ErrNoDocuments is returned (wrapped) when a source tree holds no Markdown files.
// It is a reportable outcome, not a crash.
var ErrNoDocuments = stderrors.New("no markdown documents found")

// File is a discovered Markdown document.
type File struct {
	Path    string  // Absolute filesystem path (or the fs.FS path when discovered from an fs.FS)
	RelPath string  // Slash-separated path relative to the source root, used for display
	Key     SortKey // Key derived from the base name only
}

// Depth returns the number of path elements in RelPath ("a.md" is 1, "x/a.md" is 2).
func (f File) Depth() int {
	return strings.Count(f.RelPath, "/") + 1
}

// Discover walks root recursively and returns its Markdown files in reading order.
// A root that is missing or not a directory is an INVALID_PATH error. An empty
// result is reported as a NO_DOCUMENTS error wrapping ErrNoDocuments.
func Discover(ctx context.Context, root string) ([]File, error) {
	if err := errors.ValidateSourceDir(root); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", root)
	}

	files, err := DiscoverFS(ctx, os.DirFS(abs))
	if err != nil {
		return files, err
	}
	for i := range files {
		files[i].Path = filepath.Join(abs, filepath.FromSlash(files[i].RelPath))
	}
	return files, nil
}

// DiscoverFS is Discover over an arbitrary filesystem rooted at ".".
// File.Path is set to the fs.FS path, which equals RelPath.
func DiscoverFS(ctx context.Context, fsys fs.FS) ([]File, error) {
	var files []File

	// fs.WalkDir visits entries in lexical order, so subdirectories are
	// entered in ascending name order.
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// An unreadable subdirectory is skipped; only the root is fatal.
			if d != nil && d.IsDir() && p != "." {
				return fs.SkipDir
			}
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if path.Ext(p) != Extension {
			return nil
		}
		files = append(files, File{
			Path:    p,
			RelPath: p,
			Key:     ExtractSortKey(path.Base(p)),
		})
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "walk source folder")
	}

	Sort(files)

	if len(files) == 0 {
		return []File{}, errors.Wrap(errors.ErrCodeNoDocuments, ErrNoDocuments, "no %s files in source folder", Extension)
	}
	return files, nil
}

// Sort orders files by (depth, sort key, relative path). The relative path is
// a final tie-break for equal base names in sibling directories, making the
// order total.
func Sort(files []File) {
	slices.SortStableFunc(files, compareFiles)
}

func compareFiles(a, b File) int {
	if a.Depth() != b.Depth() {
		return a.Depth() - b.Depth()
	}
	if c := a.Key.Compare(b.Key); c != 0 {
		return c
	}
	return strings.Compare(a.RelPath, b.RelPath)
}
