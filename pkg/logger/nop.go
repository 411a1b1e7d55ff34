package logger

import "log/slog"

// Nop returns a logger that discards all records.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
