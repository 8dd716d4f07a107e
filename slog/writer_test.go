package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docgrab/mock"
	dgslog "github.com/fwojciec/docgrab/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var gotName string
	inner := &mock.DocumentWriter{
		WriteDocumentFn: func(ctx context.Context, name, content string) error {
			gotName = name
			return nil
		},
	}

	writer := dgslog.NewLoggingWriter(inner, logger)
	err := writer.WriteDocument(context.Background(), "example_docs.txt", "hello")

	require.NoError(t, err)
	assert.Equal(t, "example_docs.txt", gotName)
	assert.Contains(t, buf.String(), "name=example_docs.txt")
	assert.Contains(t, buf.String(), "bytes=5")
}
