// Package editor opens a scratch file in the user's preferred text
// editor and hands the edited content back, for answers too long to type
// at a prompt.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
)

// Compose writes initial to a temporary file, opens it in the user's
// editor, blocks until the editor exits, and returns the file's final
// content. The temporary file is always removed.
func Compose(initial string) (string, error) {
	f, err := os.CreateTemp("", "termkit-answer-*.txt")
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", fmt.Errorf("seed scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	if err := Open(path); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited answer: %w", err)
	}
	return string(edited), nil
}

// Open opens path in the user's preferred editor and waits for it to
// close. Uses EDITOR or VISUAL if set, otherwise probes for a common
// editor on the host platform.
func Open(path string) error {
	name := Detect()
	if name == "" {
		return fmt.Errorf("no editor found; set EDITOR or VISUAL environment variable")
	}

	cmd := exec.Command(name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Detect finds an available editor, preferring EDITOR then VISUAL, then
// platform candidates. Returns "" when nothing usable exists.
func Detect() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if name := os.Getenv(env); name != "" {
			if validated := validate(name); validated != "" {
				return validated
			}
		}
	}

	for _, candidate := range candidates() {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// namePattern restricts editor names to alphanumerics, dash, underscore
// and dot; environment values are attacker-adjacent input.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// validate accepts a simple command name resolvable in PATH, or an
// absolute path to an executable. Anything else is rejected.
func validate(name string) string {
	if name == "" {
		return ""
	}

	if !filepath.IsAbs(name) {
		if !namePattern.MatchString(name) {
			return ""
		}
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
		return ""
	}

	if _, err := exec.LookPath(name); err == nil {
		return name
	}
	return ""
}

func candidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"code", "notepad"}
	case "darwin":
		return []string{"code", "nano", "vim", "vi"}
	default:
		return []string{"code", "nano", "vim", "vi"}
	}
}
