package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupLoggerTogglesDebugLevel(t *testing.T) {
	SetupLogger(true, false)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetupLogger(false, false)
	if GetLevel() != LevelInfo {
		t.Errorf("expected LevelInfo, got %v", GetLevel())
	}
}

func TestDebugEnvVarEnables(t *testing.T) {
	SetupLogger(false, false)

	t.Setenv(EnvDebug, "true")
	if !IsDebugEnabled() {
		t.Errorf("expected debug enabled via %s", EnvDebug)
	}

	t.Setenv(EnvDebug, "")
	if IsDebugEnabled() {
		t.Error("expected debug disabled with env cleared")
	}
}

func TestDebugSuppressedByDefault(t *testing.T) {
	t.Setenv(EnvDebug, "")

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	Debug("retrying question", "reason", "not_valid")

	if buf.Len() != 0 {
		t.Errorf("debug record emitted at info level: %s", buf.String())
	}
}

func TestDebugEmitsRetryRecord(t *testing.T) {
	// The shape the prompt session logs on every retry.
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, false)

	Debug("retrying question", "reason", "invalid_type", "input", "abc")

	output := buf.String()
	for _, want := range []string{"retrying question", "reason=invalid_type", "input=abc"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)

	Info("question answered", "attempts", 3)

	output := buf.String()
	if !strings.Contains(output, `"msg":"question answered"`) {
		t.Errorf("expected JSON msg field, got: %s", output)
	}
	if !strings.Contains(output, `"attempts":3`) {
		t.Errorf("expected JSON attempts field, got: %s", output)
	}
}

func TestSetOutputRedirects(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(false, false)
	SetOutput(&buf)

	Info("redirected")

	if !strings.Contains(buf.String(), "redirected") {
		t.Errorf("expected record in new writer, got: %s", buf.String())
	}
}

func TestSetLevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	SetLevel(LevelWarn)

	Info("below threshold")
	Warn("at threshold")

	output := buf.String()
	if strings.Contains(output, "below threshold") {
		t.Errorf("info record leaked past warn level: %s", output)
	}
	if !strings.Contains(output, "at threshold") {
		t.Errorf("warn record missing: %s", output)
	}

	SetLevel(LevelInfo)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
