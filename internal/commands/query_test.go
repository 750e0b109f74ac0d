package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/nkumar/govbot/internal/errors"
)

func TestRunQuery_EmptyMessage(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		if err := runQuery(input, true); err == nil {
			t.Errorf("runQuery(%q) should fail before any request", input)
		}
	}
}

func TestSpinnerStopOnce(t *testing.T) {
	s := newSpinner("test")
	s.start()

	// Double stop must not panic on a closed channel
	s.stopWithError()
	s.stopWithError()
}

func TestFormatErrorMessage(t *testing.T) {
	if formatErrorMessage(nil, "ctx") != "" {
		t.Error("nil error should format to empty string")
	}

	out := formatErrorMessage(errors.New("boom"), "Request failed")
	if !strings.Contains(out, "Request failed") || !strings.Contains(out, "boom") {
		t.Errorf("formatted error missing context: %q", out)
	}

	apiErr := apierrors.NewAPIError(500, "/chat", "server error")
	out = formatErrorMessage(apiErr, "Request failed")
	if !strings.Contains(out, "500") {
		t.Errorf("formatted API error should include the status: %q", out)
	}
	if !strings.Contains(out, "/chat") {
		t.Errorf("formatted API error should include the endpoint: %q", out)
	}

	netErr := apierrors.NewNetworkError("chat", "/chat", errors.New("refused"))
	out = formatErrorMessage(netErr, "Request failed")
	if !strings.Contains(out, "Hint:") {
		t.Errorf("network errors should carry a hint: %q", out)
	}
}

func TestGetTerminalWidth(t *testing.T) {
	// Not a TTY under go test, the default must come back
	if w := getTerminalWidth(); w <= 0 {
		t.Errorf("getTerminalWidth = %d, want positive", w)
	}
}
