package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	base := New(CodeFileNotFound, "could not find file")
	err := WithContext(base, "op", "Copy")
	err = WithContext(err, "path", "a.txt")

	require.Equal(t, map[string]interface{}{"op": "Copy", "path": "a.txt"}, err.Context())
	require.Nil(t, base.Context(), "original error must not be modified")
	require.Equal(t, CodeFileNotFound, err.Code())
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContextMap(New(CodeIO, "io"), map[string]interface{}{"a": 1, "b": 2})
	err = WithContextMap(err, map[string]interface{}{"b": 3})

	require.Equal(t, map[string]interface{}{"a": 1, "b": 3}, err.Context())
}

func TestWithContext_StandardError(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := WithContext(cause, "path", "x")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "disk on fire", err.Message())
	require.True(t, stderrors.Is(err, cause))
}

func TestWithContext_Nil(t *testing.T) {
	require.Nil(t, WithContext(nil, "k", "v"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"k": "v"}))
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestWithClassification(t *testing.T) {
	busy := New(CodeBusy, "file is in use")
	err := WithClassification(busy, ClassificationPermanent)

	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, CodeBusy, err.Code())
	require.True(t, busy.Classification().IsRetryable())
}
