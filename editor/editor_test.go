package editor

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		wantOK bool
	}{
		{"empty rejected", "", false},
		{"shell metacharacters rejected", "vi; rm -rf /", false},
		{"relative path rejected", "bin/editor", false},
		{"missing command rejected", "definitely-not-an-editor-xyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validate(tt.editor)
			if (got != "") != tt.wantOK {
				t.Errorf("validate(%q) = %q", tt.editor, got)
			}
		})
	}
}

func TestValidateAcceptsRealCommand(t *testing.T) {
	// Find something guaranteed to be in PATH.
	for _, name := range []string{"vi", "vim", "nano", "sh"} {
		if _, err := exec.LookPath(name); err == nil {
			if validate(name) != name {
				t.Errorf("validate(%q) rejected a real command", name)
			}
			return
		}
	}
	t.Skip("no known command found in PATH")
}

func TestDetectPrefersEditorEnv(t *testing.T) {
	t.Setenv("VISUAL", "")

	target := ""
	for _, name := range []string{"vi", "vim", "nano", "sh"} {
		if _, err := exec.LookPath(name); err == nil {
			target = name
			break
		}
	}
	if target == "" {
		t.Skip("no known command found in PATH")
	}

	t.Setenv("EDITOR", target)
	if got := Detect(); got != target {
		t.Errorf("Detect() = %q, want %q", got, target)
	}
}

func TestDetectIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("EDITOR", "bogus; echo pwned")
	t.Setenv("VISUAL", "")

	got := Detect()
	if strings.Contains(got, ";") {
		t.Errorf("Detect() returned unvalidated value %q", got)
	}
}

func TestComposeRoundTrip(t *testing.T) {
	// "true" exits without touching the file, so Compose must return the
	// seeded content unchanged.
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not found in PATH")
	}
	t.Setenv("EDITOR", "true")
	t.Setenv("VISUAL", "")

	got, err := Compose("seeded content\n")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if got != "seeded content\n" {
		t.Errorf("Compose() = %q", got)
	}
}

func TestComposeNoEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Setenv("PATH", os.TempDir())

	if _, err := Compose(""); err == nil {
		t.Error("expected error when no editor is available")
	}
}
