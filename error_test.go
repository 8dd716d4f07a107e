package docgrab_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docgrab"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docgrab.Errorf(docgrab.EUNAVAILABLE, "proxy returned %d", 503)

	assert.Equal(t, docgrab.EUNAVAILABLE, docgrab.ErrorCode(err))
	assert.Equal(t, "proxy returned 503", docgrab.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch seed: %w", docgrab.Errorf(docgrab.EINVALID, "bad url"))

	assert.Equal(t, docgrab.EINVALID, docgrab.ErrorCode(err))
	assert.Equal(t, "bad url", docgrab.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, docgrab.EINTERNAL, docgrab.ErrorCode(err))
	assert.Equal(t, "Internal error.", docgrab.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docgrab.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docgrab.ErrorMessage(nil))
}
