// Package logger provides a small factory around Go's slog package together
// with attribute helpers that keep key names consistent across statetrack.
//
// New creates a *slog.Logger configured by Option functions:
//
//   • WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   • WithLevel – minimum level.
//   • WithOutput – destination writer.
//   • WithAttr – static attributes attached to every record.
//   • WithDebug – text output at debug level, handy when tracing a machine.
//
// Nop returns a logger that discards everything. It is the default logger of
// a statemachine.Machine, so a machine stays silent unless a logger is
// supplied with statemachine.WithLogger.
//
// Helper constructors such as State, Key and Callbacks return slog.Attr values
// with fixed key names.
//
// # Usage
//
//	import "github.com/dmitrymomot/statetrack/pkg/logger"
//
//	log := logger.New(logger.WithDebug("checkout"))
//	m := statemachine.New(states, Idle, statemachine.WithLogger(log))
package logger
