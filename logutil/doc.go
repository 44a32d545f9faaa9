// Package logutil provides a structured logging abstraction built on top of slog.
//
// It wraps the standard library's slog package with convenience functions
// and environment-aware configuration, keeping diagnostics on stderr so
// they never mix with interactive prompt output.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("retrying question", "reason", kind)
//	logutil.Info("session started", "wrap", wrapAt)
//	logutil.Warn("deprecated option used", "option", name)
//	logutil.Error("prompt failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set TERMKIT_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"retrying question","reason":"invalid_type"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=DEBUG msg="retrying question" reason=invalid_type
package logutil
