// Package logger provides structured JSON logging for the service, built on
// Uber's Zap.
//
// The package follows "accept interfaces, return structs": NewLogger returns
// the concrete *Logger, and the Fx module registers a lifecycle hook that
// flushes buffered entries on shutdown.
//
// Usage:
//
//	log := logger.NewLogger(logger.Config{Level: logger.Info, ServiceName: "dog-finder"})
//	log.Info("search completed", map[string]any{"total": 7})
//	log.Error("vector query failed", err, map[string]any{"collection": "dog"})
//
// All methods are safe for concurrent use.
package logger
