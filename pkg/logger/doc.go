// Package logger provides a small factory around Go's slog package with
// functional options and helper attribute constructors.
//
// New creates a *slog.Logger configured by Option functions. These options
// allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Apply an environment preset (development, staging, production)
//   - Supply default slog.Attr values applied to every record
//
// Helper constructors such as Group, Error, MachineID and State live in
// attr.go and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/minifsm/pkg/logger"
//
//	func main() {
//	    log := logger.New(logger.WithEnvironment("production", "fsmrun"))
//	    logger.SetAsDefault(log)
//
//	    log.Info("transition executed",
//	        logger.MachineID(m.ID()),
//	        logger.Transition("start"),
//	    )
//	}
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
package logger
