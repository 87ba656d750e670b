// Package logger provides a small factory around log/slog with JSON and text
// handlers plus attribute helpers shared across the client packages.
//
// Basic usage:
//
//	log := logger.New(logger.WithDevelopment("admin-client"))
//	log.Info("client ready")
package logger
