// Package envlog resolves per-logger log levels from a compact
// directive string, conventionally carried in an environment variable:
//
//	GO_LOG=warn,myapp=info,myapp.database=trace
//
// A directive is either a bare level name, which sets the default for
// every logger, or a target=level pair, which sets the threshold for
// one dotted logger name and all of its descendants. The most specific
// matching rule wins: with the string above, "myapp.database.pool"
// logs at TRACE, "myapp.api" at INFO, and "somelib" at the WARN
// default. Matching is per dot-separated segment, so "myapp" never
// matches "myapplication".
//
// envlog decides levels; it never formats or writes log output. Wire
// it into the host's logging facility and consult it on each call:
//
//	envlog.Init() // reads GO_LOG
//	if envlog.IsEnabled("myapp.database", envlog.DebugLevel) {
//	    // emit the message
//	}
//
// The sloghandler and zapbridge packages do this wiring for log/slog
// and go.uber.org/zap. Hosts with their own facility can hold a
// resolver.Resolver directly instead of using the package-level
// default.
//
// Configuration is best effort: a malformed directive is dropped and
// the rest of the string still applies, so a mistyped environment
// variable can never fail program startup. Reconfiguration at runtime
// is an atomic swap; the query path stays lock-free and allocation-free
// throughout.
package envlog
