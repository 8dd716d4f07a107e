package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of docgrab.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, name, content string) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, name, content string) error {
	return w.WriteDocumentFn(ctx, name, content)
}
