// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/cio/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "undefined_variable",
			code:    errors.ErrUndefinedVariable,
			message: "name is not defined",
			wantStr: "[UNDEFINED_VARIABLE] name is not defined",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "bad template",
			wantStr: "[INVALID_INPUT] bad template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrVarsParse, "cannot parse %s at line %d", "vars.toml", 3)
	assert.Equal(t, "cannot parse vars.toml at line 3", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("broken pipe")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSinkWrite, "write failed")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrSinkWrite, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[SINK_WRITE] write failed: broken pipe", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUndefinedVariable, "undefined").
		WithDetail("expr", "user.Name").
		WithDetail("offset", 4)

	assert.Equal(t, "user.Name", err.Details["expr"])
	assert.Equal(t, 4, err.Details["offset"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrEvaluate, "bad expression"),
			code:     errors.ErrEvaluate,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrEvaluate, "bad expression"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_by_fmt",
			err:      fmt.Errorf("outer: %w", errors.New(errors.ErrConfigLoad, "inner")),
			code:     errors.ErrConfigLoad,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("plain"),
			code:     errors.ErrConfigLoad,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrVarsLoad, errors.GetErrorCode(errors.New(errors.ErrVarsLoad, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("x")))
}
