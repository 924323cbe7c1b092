package envlog

import (
	"os"
	"sync"

	"github.com/bassmanitram/envlog/core"
	"github.com/bassmanitram/envlog/resolver"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	OffLevel   = core.OffLevel
)

// EnvVar is the environment variable Init reads the directive string
// from.
const EnvVar = "GO_LOG"

var (
	defaultResolver *resolver.Resolver
	defaultMu       sync.RWMutex
)

func init() {
	// Until Init or Configure runs, the default resolver has no rules
	// and answers WARN for every name.
	defaultResolver = resolver.NewResolver(nil)
}

// Default returns the default resolver
func Default() *resolver.Resolver {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultResolver
}

// SetDefault sets the default resolver
func SetDefault(r *resolver.Resolver) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultResolver = r
}

// Init configures the default resolver from the GO_LOG environment
// variable and returns it. An unset or empty variable yields the WARN
// default with no rules; a malformed one takes effect as far as it
// parses. Init never fails, so it is safe to call unconditionally at
// startup.
func Init() *resolver.Resolver {
	return InitFromEnv(EnvVar)
}

// InitFromEnv is Init reading the directive string from the named
// environment variable instead of GO_LOG.
func InitFromEnv(key string) *resolver.Resolver {
	Configure(os.Getenv(key))
	return Default()
}

// Package-level convenience functions using the default resolver

// Configure parses a directive string and installs it on the default
// resolver, replacing any previous configuration.
func Configure(raw string) {
	Default().Reconfigure(raw)
}

// IsEnabled reports whether a message at level would be emitted by a
// logger called name under the default resolver.
func IsEnabled(name string, level Level) bool {
	return Default().Enabled(name, level)
}

// EffectiveLevel resolves the threshold for a dotted logger name under
// the default resolver.
func EffectiveLevel(name string) Level {
	return Default().EffectiveLevel(name)
}

// ParseLevel converts a level name to a Level. Names are matched
// case-insensitively; the boolean reports whether the name was
// recognized.
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}
