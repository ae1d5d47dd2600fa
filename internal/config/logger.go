package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a levelled logger writing to w. An unknown level falls
// back to info and is reported once through the new logger.
func NewLogger(cfg LogConfig, w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log level, using info", "level", cfg.Level)
		return logger
	}
	logger.SetLevel(level)
	return logger
}
