// Package fs writes assembled documents to the local filesystem.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docgrab"
)

// Ensure Writer implements docgrab.DocumentWriter at compile time.
var _ docgrab.DocumentWriter = (*Writer)(nil)

// Writer writes documents as UTF-8 text files into a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Path returns the file path a document named name is written to.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.baseDir, name)
}

// WriteDocument writes content to name inside the base directory,
// replacing any existing file. The content is written to a temporary file
// first and renamed into place so readers never see a partial document.
func (w *Writer) WriteDocument(ctx context.Context, name, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return docgrab.Errorf(docgrab.EINVALID, "invalid document name %q", name)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	fullPath := w.Path(name)
	tmpPath := fullPath + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
