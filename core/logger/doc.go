// Package logger provides a structured logging facility based on Zap.
//
// Level "debug" selects Zap's development configuration (ISO8601 timestamps, caller
// info); every other level uses the production configuration at that level.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Fetching object")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
package logger
