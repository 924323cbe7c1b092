// Package sloghandler provides a log/slog.Handler whose Enabled
// decision comes from a per-logger-name Resolver, so one GO_LOG-style
// directive string controls slog verbosity per subsystem. It wraps the
// host's own handler and never formats or writes records itself.
package sloghandler
