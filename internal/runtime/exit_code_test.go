// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"testing"
)

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code ExitCode
		want bool
	}{
		{0, true},
		{1, false},
		{127, false},
		{255, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.code.IsSuccess(); got != tt.want {
				t.Errorf("ExitCode(%d).IsSuccess() = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	err := &ExitError{Command: "ping > echo", Code: 3}
	if got, want := err.Error(), `command "ping > echo" exited with status 3`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrScriptFailed) {
		t.Error("errors.Is(err, ErrScriptFailed) = false")
	}
}
