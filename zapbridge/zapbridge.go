package zapbridge

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bassmanitram/envlog/core"
	"github.com/bassmanitram/envlog/resolver"
)

// TraceLevel is a custom zap level below Debug for the resolver's TRACE
// threshold. Value: -2 (zap's Debug is -1). Emit with
// logger.Log(zapbridge.TraceLevel, ...).
const TraceLevel = zapcore.Level(-2)

// resolverCore is a wrapped zapcore.Core that replaces the inner core's
// level gate with per-logger-name decisions from a Resolver. Named zap
// loggers produce exactly the dotted names the resolver matches on:
// logger.Named("myapp").Named("database") logs as "myapp.database".
type resolverCore struct {
	zapcore.Core
	resolver *resolver.Resolver
}

var (
	_ zapcore.Core         = (*resolverCore)(nil)
	_ zapcore.LevelEnabler = (*resolverCore)(nil)
)

// NewCore wraps inner so that every entry is admitted or suppressed by
// the resolver's verdict for the entry's logger name. The inner core's
// own level configuration no longer applies; writing and encoding stay
// with it. A nil resolver behaves like an empty configuration: no
// rules, WARN default.
func NewCore(inner zapcore.Core, res *resolver.Resolver) zapcore.Core {
	if res == nil {
		res = resolver.NewResolver(nil)
	}
	return &resolverCore{Core: inner, resolver: res}
}

// WrapCore returns a zap.Option that routes an existing logger's core
// through the resolver:
//
//	logger := zap.New(myCore, zapbridge.WrapCore(res))
func WrapCore(res *resolver.Resolver) zap.Option {
	return zap.WrapCore(func(inner zapcore.Core) zapcore.Core {
		return NewCore(inner, res)
	})
}

// Enabled implements zapcore.LevelEnabler. The logger name is not known
// here, so it answers whether lvl could be enabled for any name. The
// per-name decision happens in Check.
func (c *resolverCore) Enabled(lvl zapcore.Level) bool {
	return c.resolver.MinLevel().Enables(zapLevelToCore(lvl))
}

// With keeps the wrapper around the field-bound inner core. The
// embedded With would return the inner type and drop the name filter.
func (c *resolverCore) With(fields []zapcore.Field) zapcore.Core {
	return &resolverCore{Core: c.Core.With(fields), resolver: c.resolver}
}

// Check implements zapcore.Core with the resolver's per-name decision.
// It must be overridden because the embedded Check would call the
// embedded Enabled, not the one above.
func (c *resolverCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.resolver.Enabled(ent.LoggerName, zapLevelToCore(ent.Level)) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// zapLevelToCore converts a zapcore.Level to a core.Level. DPanic and
// above count as ERROR for threshold purposes.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	case level >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
