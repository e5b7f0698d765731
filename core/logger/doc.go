// Package logger provides structured logging built on Go's standard slog
// package: a factory with environment presets and a small set of attribute
// helpers for consistent record shapes.
//
//	log := logger.New(logger.WithProduction("mailkit"))
//	log.Info("email sent",
//		logger.Component("smtp"),
//		logger.Event("deliver"),
//	)
package logger
