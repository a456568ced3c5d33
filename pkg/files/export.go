package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	goerrors "github.com/goliatone/go-errors"

	"github.com/pluqqy/pluqqy-designer/pkg/codegen"
)

// ErrExportWrite marks a failed export write. Callers match it with errors.Is;
// the wrapped error also carries the command category.
var ErrExportWrite = errors.New("files: export write failed")

const exportWriteCode = "EXPORT_WRITE_FAILED"

// ExportPath returns where WriteExport puts target's file inside dir
func ExportPath(dir string, target codegen.Target) string {
	if dir == "" {
		dir = filepath.Join(DesignerDir, ExportsDir)
	}
	return filepath.Join(dir, codegen.FileName(target))
}

// WriteExport writes generated program text as UTF-8, replacing any previous
// export. A failed write leaves no partial or temp file behind and is not
// retried. Directories created for dir stay in place either way.
func WriteExport(dir string, target codegen.Target, content string) (string, error) {
	path := ExportPath(dir, target)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", wrapExportError(err, path)
	}

	if err := writeAtomic(path, []byte(content)); err != nil {
		return "", wrapExportError(err, path)
	}

	return path, nil
}

func wrapExportError(err error, path string) error {
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrExportWrite, err), goerrors.CategoryCommand,
		fmt.Sprintf("failed to write export %s", path)).
		WithTextCode(exportWriteCode)
}

// writeAtomic writes to a uniquely named temp file in the same directory and
// renames it over path, so readers see the old or the new content only
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpName, 0644)
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
