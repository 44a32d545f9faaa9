// Package testutil provides common testing utilities for the toolkit.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Building scripted prompt input (Script)
//   - Common string assertions (Contains)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	import (
//	    "strings"
//	    "testing"
//	    "github.com/jongio/termkit/testutil"
//	)
//
//	func TestPrompt(t *testing.T) {
//	    in := strings.NewReader(testutil.Script("not a number", "42"))
//
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runPrompt(in)
//	    })
//
//	    if !testutil.Contains(output, "You must enter a valid integer.") {
//	        t.Error("expected retry message")
//	    }
//	}
package testutil
