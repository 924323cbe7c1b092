package sloghandler

import (
	"context"
	"log/slog"

	"github.com/bassmanitram/envlog/core"
	"github.com/bassmanitram/envlog/resolver"
)

// LevelTrace is the slog level corresponding to core.TraceLevel. slog
// defines no trace constant of its own; -8 sits one standard step below
// slog.LevelDebug.
const LevelTrace = slog.Level(-8)

// SlogHandler is an adapter that implements slog.Handler with
// per-logger level decisions taken from a Resolver. Formatting and
// output stay with the wrapped handler; this type only answers Enabled
// according to the logger's dotted name.
//
// The name is accumulated two ways: WithGroup appends a segment
// ("myapp" then "database" yields "myapp.database"), and an attribute
// whose key is the configured name key replaces the whole name, so
// hosts can write slog.New(h).With("logger", "myapp.database").
type SlogHandler struct {
	inner    slog.Handler
	resolver *resolver.Resolver
	name     string
	nameKey  string
}

// SlogConfig holds configuration for the slog adapter
type SlogConfig struct {
	// Inner formats and writes the records that pass the level check.
	// A nil Inner discards them.
	Inner slog.Handler
	// Resolver decides per-logger levels (default: no rules, WARN default)
	Resolver *resolver.Resolver
	// Name is the initial dotted logger name (default: "", the root logger)
	Name string
	// NameKey is the attribute key that renames the logger (default: "logger")
	NameKey string
}

// NewSlogHandler creates a new slog.Handler adapter for the given resolver.
func NewSlogHandler(cfg SlogConfig) *SlogHandler {
	if cfg.Resolver == nil {
		cfg.Resolver = resolver.NewResolver(nil)
	}
	if cfg.NameKey == "" {
		cfg.NameKey = "logger"
	}
	return &SlogHandler{
		inner:    cfg.Inner,
		resolver: cfg.Resolver,
		name:     cfg.Name,
		nameKey:  cfg.NameKey,
	}
}

// Enabled reports whether the handler's logger name is enabled at the
// given level under the resolver's current configuration.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.resolver.Enabled(s.name, slogLevelToCore(level))
}

// Handle passes the record to the wrapped handler. Level filtering has
// already happened in Enabled, per the slog.Handler contract.
func (s *SlogHandler) Handle(ctx context.Context, record slog.Record) error {
	if s.inner == nil {
		return nil
	}
	return s.inner.Handle(ctx, record)
}

// WithAttrs returns a new SlogHandler with additional attributes. An
// attribute keyed by the name key sets the logger name; all attributes,
// including that one, are forwarded to the wrapped handler.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	name := s.name
	for _, a := range attrs {
		if a.Key == s.nameKey && a.Value.Kind() == slog.KindString {
			name = a.Value.String()
		}
	}
	inner := s.inner
	if inner != nil {
		inner = inner.WithAttrs(attrs)
	}
	return &SlogHandler{
		inner:    inner,
		resolver: s.resolver,
		name:     name,
		nameKey:  s.nameKey,
	}
}

// WithGroup returns a new SlogHandler with the group appended to the
// logger name as a dotted segment. The group is also forwarded to the
// wrapped handler, so attribute qualification behaves as usual.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newName := name
	if s.name != "" {
		newName = s.name + "." + name
	}
	inner := s.inner
	if inner != nil {
		inner = inner.WithGroup(name)
	}
	return &SlogHandler{
		inner:    inner,
		resolver: s.resolver,
		name:     newName,
		nameKey:  s.nameKey,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
