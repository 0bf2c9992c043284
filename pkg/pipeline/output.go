package pipeline

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/mdpdf/pkg/errors"
)

// writeAtomic writes data next to path and renames it into place, so readers
// never see a partial file and a failed run leaves any previous output intact.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mdpdf-*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "create temporary file in %s", dir)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return errors.Wrap(errors.ErrCodeRender, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return errors.Wrap(errors.ErrCodeRender, err, "write %s", path)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return errors.Wrap(errors.ErrCodeRender, err, "write %s", path)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return errors.Wrap(errors.ErrCodeRender, err, "move output to %s", path)
	}
	return nil
}
