// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger for the CLI and the HTTP API and offers a
// helper to scope a logger to a single request.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a
// Fiber context and attaches it to the log entry, so every line logged while
// serving one request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Bucket created", zap.String("bucket", name))
package logger
