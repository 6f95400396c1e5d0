package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCode_Parent(t *testing.T) {
	tests := []struct {
		code       ErrorCode
		wantParent ErrorCode
		wantOK     bool
	}{
		{CodeNullArgument, CodeInvalidArgument, true},
		{CodeArgumentOutOfRange, CodeInvalidArgument, true},
		{CodeFileNotFound, CodeIO, true},
		{CodeDirectoryNotFound, CodeIO, true},
		{CodeAlreadyExists, CodeIO, true},
		{CodeBusy, CodeIO, true},
		{CodePermissionDenied, CodeIO, true},
		{CodeInvalidArgument, "", false},
		{CodeIO, "", false},
		{CodeNotSupported, "", false},
		{CodeUnknown, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			parent, ok := tt.code.Parent()
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantParent, parent)
		})
	}
}

func TestErrorCode_Within(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		kind ErrorCode
		want bool
	}{
		{"same code", CodeIO, CodeIO, true},
		{"file not found is io", CodeFileNotFound, CodeIO, true},
		{"busy is io", CodeBusy, CodeIO, true},
		{"null argument is invalid argument", CodeNullArgument, CodeInvalidArgument, true},
		{"out of range is invalid argument", CodeArgumentOutOfRange, CodeInvalidArgument, true},
		{"io is not file not found", CodeIO, CodeFileNotFound, false},
		{"null argument is not io", CodeNullArgument, CodeIO, false},
		{"not supported is standalone", CodeNotSupported, CodeIO, false},
		{"unregistered code", ErrorCode("CUSTOM"), CodeIO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.code.Within(tt.kind))
		})
	}
}
