package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without cause",
			err:      NewFormatError("no recognizable data blocks"),
			expected: "[FORMAT] no recognizable data blocks",
		},
		{
			name:     "with cause",
			err:      NewIOError("failed to open input", fmt.Errorf("permission denied")),
			expected: "[IO] failed to open input: permission denied",
		},
		{
			name:     "missing data carries quantity name",
			err:      NewMissingDataError("equivalent plastic strain"),
			expected: "[MISSING_DATA] no output found for equivalent plastic strain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := NewIOError("read failed", cause)

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeIO, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewParsingErrorAtLine("malformed data row", 42, nil)

	require.NotNil(t, err.Context)
	assert.Equal(t, 42, err.Context["line"])
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		errType  ErrorType
		expected bool
	}{
		{
			name:     "matching type",
			err:      NewMissingDataError("stresses"),
			errType:  ErrTypeMissingData,
			expected: true,
		},
		{
			name:     "non-matching type",
			err:      NewMissingDataError("stresses"),
			errType:  ErrTypeIO,
			expected: false,
		},
		{
			name:     "wrapped AppError",
			err:      fmt.Errorf("extract failed: %w", NewFormatError("empty file")),
			errType:  ErrTypeFormat,
			expected: true,
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("plain"),
			errType:  ErrTypeIO,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			errType:  ErrTypeIO,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsType(tt.err, tt.errType))
		})
	}
}
