package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataForKnownCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, MetadataFor(CodeNotFound).HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeIncompatibleCoating).HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeSizeConstraint).HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeAddOnConflict).HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeMissingSubOption).HTTPStatus)
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := Wrap(CodeDependency, cause, "load reference data")

	require.NotNil(t, err)
	assert.Equal(t, CodeDependency, err.Code())
	assert.ErrorIs(t, err, cause)
}

func TestAsExtractsTypedError(t *testing.T) {
	typed := New(CodeAddOnConflict, "banding conflicts with eddm-process-postage")
	wrapped := fmt.Errorf("calculate: %w", typed)

	extracted := As(wrapped)
	require.NotNil(t, extracted)
	assert.Equal(t, CodeAddOnConflict, extracted.Code())
}

func TestAsReturnsNilForPlainError(t *testing.T) {
	assert.Nil(t, As(fmt.Errorf("plain")))
	assert.Nil(t, As(nil))
}

func TestDumpCollectsChain(t *testing.T) {
	cause := fmt.Errorf("socket closed")
	err := Wrap(CodeDependency, cause, "fetch paper stocks")

	dump := Dump(err)
	assert.Equal(t, CodeDependency, dump.Code)
	require.Len(t, dump.Chain, 2)
}
