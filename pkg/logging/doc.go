// Package logging provides structured logging configuration for the
// checkout toolkit.
//
// This package wraps log/slog to provide consistent logging across the
// storefront client, the mock backend, and the CLI. It supports configurable
// log levels and output formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("cart created", "cartId", cart.ID)
//	logger.Error("query failed", "error", err)
//
// # Integration
//
// Components should accept a *slog.Logger in their constructor or via an
// option. If no logger is provided, use logging.Nop() for a no-op logger.
package logging
