package core

import "strings"

// Level represents the verbosity threshold of a logger
type Level int8

const (
	// TraceLevel for the most detailed diagnostic output
	TraceLevel Level = iota
	// DebugLevel for debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// OffLevel suppresses all output
	OffLevel
)

// DefaultLevel applies when a configuration names no default of its own.
const DefaultLevel = WarnLevel

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Enables reports whether a message logged at lvl passes a threshold of l.
// A threshold enables its own rank and everything coarser:
//
//	TraceLevel enables TRACE, DEBUG, INFO, WARN and ERROR
//	WarnLevel enables WARN and ERROR, but not INFO
//	OffLevel enables no level a logger can emit
func (l Level) Enables(lvl Level) bool {
	return lvl >= l
}

// ParseLevel converts a level name to a Level. Names are matched
// case-insensitively; "warning" is accepted as an alias for WarnLevel.
// The boolean reports whether the name was recognized; unrecognized
// names yield DefaultLevel.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "off":
		return OffLevel, true
	default:
		return DefaultLevel, false
	}
}
