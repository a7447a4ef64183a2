// Package logging constructs the application's slog loggers.
//
// Two output formats are supported: a human-oriented console format with a
// component prefix and key=value attributes, and machine-readable JSON. The
// attribute helpers keep structured field construction terse at call sites.
package logging
