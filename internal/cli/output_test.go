package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError_Message(t *testing.T) {
	err := NewExitError(ExitFailure, "3 duplicate mutable account pair(s)")
	assert.Equal(t, "3 duplicate mutable account pair(s)", err.Error())
	assert.Equal(t, ExitFailure, err.Code)
}

func TestExitError_Wrapped(t *testing.T) {
	inner := errors.New("no such file")
	err := WrapExitError(ExitCommandError, "failed to load snapshot", inner)

	assert.Equal(t, "failed to load snapshot: no such file", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestGetExitCode_ExitError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "findings")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad input")))
}

func TestGetExitCode_WrappedExitError(t *testing.T) {
	err := fmt.Errorf("running check: %w", NewExitError(ExitCommandError, "bad input"))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode_PlainError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("some error")))
}
