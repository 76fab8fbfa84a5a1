package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"setup error", NewExitError(ExitSetupError, "missing binary"), ExitSetupError},
		{"failure", NewExitError(ExitFailure, "cases failed"), ExitFailure},
		{"wrapped setup error", fmt.Errorf("outer: %w", WrapExitError(ExitSetupError, "load", errors.New("enoent"))), ExitSetupError},
		{"untagged error", errors.New("something broke"), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	cause := errors.New("no such file")
	err := WrapExitError(ExitSetupError, "failed to load suite", cause)
	assert.Equal(t, "failed to load suite: no such file", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewExitError(ExitFailure, "missed 2 of 8 puzzles")
	assert.Equal(t, "missed 2 of 8 puzzles", bare.Error())
}

func TestRequireBin(t *testing.T) {
	_, err := requireBin("", "engine")
	assert.Equal(t, ExitSetupError, GetExitCode(err))

	_, err = requireBin("/no/such/binary-anywhere", "engine")
	assert.Equal(t, ExitSetupError, GetExitCode(err))

	path, err := requireBin("sh", "engine")
	assert.NoError(t, err)
	assert.NotEmpty(t, path)
}
