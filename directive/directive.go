package directive

import (
	"strings"

	"github.com/bassmanitram/envlog/core"
)

// SkipReason classifies why a directive token was discarded
type SkipReason int

const (
	// SkipUnknownLevel means the level name is not in the vocabulary
	SkipUnknownLevel SkipReason = iota
	// SkipEmptyTarget means the target before '=' was empty after trimming
	SkipEmptyTarget
	// SkipEmptySegment means the target contained an empty dot segment
	SkipEmptySegment
)

// String returns the string representation of the reason
func (r SkipReason) String() string {
	switch r {
	case SkipUnknownLevel:
		return "UnknownLevel"
	case SkipEmptyTarget:
		return "EmptyTarget"
	case SkipEmptySegment:
		return "EmptySegment"
	default:
		return "Unknown"
	}
}

// Skipped records one directive token that Parse discarded.
type Skipped struct {
	Token  string
	Reason SkipReason
}

// Parse converts a directive string such as
//
//	warn,myapp=info,myapp.database=trace
//
// into a Ruleset. Parsing is total: malformed fragments are discarded
// and the rest of the string still takes effect, so a bad environment
// variable can never fail program startup. An empty string yields a
// Ruleset with no rules and the WARN default.
func Parse(raw string) *core.Ruleset {
	rs, _ := ParseReport(raw)
	return rs
}

// ParseReport is Parse plus a report of every discarded token, for hosts
// that want to surface misconfiguration diagnostics. The report is nil
// when nothing was discarded.
func ParseReport(raw string) (*core.Ruleset, []Skipped) {
	var (
		rules   []core.Rule
		skipped []Skipped
	)
	def := core.DefaultLevel

	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		eq := strings.IndexByte(tok, '=')
		if eq < 0 {
			// Bare level name: sets the default. The last one wins.
			if lvl, ok := core.ParseLevel(tok); ok {
				def = lvl
			} else {
				skipped = append(skipped, Skipped{Token: tok, Reason: SkipUnknownLevel})
			}
			continue
		}

		target := strings.TrimSpace(tok[:eq])
		name := strings.TrimSpace(tok[eq+1:])

		if target == "" {
			skipped = append(skipped, Skipped{Token: tok, Reason: SkipEmptyTarget})
			continue
		}
		if !ValidTarget(target) {
			skipped = append(skipped, Skipped{Token: tok, Reason: SkipEmptySegment})
			continue
		}
		lvl, ok := core.ParseLevel(name)
		if !ok {
			skipped = append(skipped, Skipped{Token: tok, Reason: SkipUnknownLevel})
			continue
		}
		rules = append(rules, core.Rule{Target: target, Level: lvl})
	}

	return core.NewRuleset(rules, def), skipped
}

// ValidTarget reports whether target is a well-formed dotted rule
// target: non-empty, with no empty segments. ".a", "a." and "a..b" are
// all malformed.
func ValidTarget(target string) bool {
	if target == "" {
		return false
	}
	if strings.HasPrefix(target, ".") || strings.HasSuffix(target, ".") {
		return false
	}
	return !strings.Contains(target, "..")
}
