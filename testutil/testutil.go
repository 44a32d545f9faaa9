// Package testutil provides common testing utilities for the toolkit's
// packages: capturing stdout, building scripted prompt conversations, and
// small assertion helpers.
package testutil

import (
	"os"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the captured output.
// The original stdout is always restored, even if the function returns an error.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    fmt.Println("test output")
//	    return nil
//	})
//	if !strings.Contains(output, "test output") {
//	    t.Error("expected output not found")
//	}
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Buffered to avoid a goroutine leak when the test fails early.
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// Script joins scripted user replies into an input stream, one reply per
// line, for driving a prompt session from a test.
//
// Example:
//
//	in := strings.NewReader(testutil.Script("not a number", "42"))
func Script(replies ...string) string {
	if len(replies) == 0 {
		return ""
	}
	return strings.Join(replies, "\n") + "\n"
}

// Contains checks if a string contains a substring.
// This is a convenience helper for common test assertions.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
