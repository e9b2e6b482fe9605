// Package logger provides a structured logging facility based on Zap.
//
// All output is written to stderr. The build command prints exported data on
// stdout, so diagnostics never interleave with CSV or JSON output.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it
// to the log entry, so every log line of a request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// Verbose lowers the level to debug, which is where reconciliation
// diagnostics (fuzzy substitutions, ambiguous names, misses) are written.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Build started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
