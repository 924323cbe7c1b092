package resolver

import (
	"sync/atomic"

	"github.com/bassmanitram/envlog/core"
	"github.com/bassmanitram/envlog/directive"
)

// Resolver answers level queries for hierarchical logger names against
// its current Ruleset. The Ruleset is held behind an atomic pointer:
// queries never block and never observe a partially applied
// configuration, and reconfiguration is a single pointer swap.
type Resolver struct {
	current atomic.Pointer[core.Ruleset]
}

// NewResolver creates a Resolver holding the given Ruleset. A nil
// Ruleset behaves like an empty one: no rules, WARN default.
func NewResolver(rs *core.Ruleset) *Resolver {
	r := &Resolver{}
	r.current.Store(rs)
	return r
}

// Ruleset returns the Ruleset currently held. The returned value is a
// consistent snapshot; a concurrent Reconfigure does not affect it.
func (r *Resolver) Ruleset() *core.Ruleset {
	return r.current.Load()
}

// EffectiveLevel resolves the threshold for a dotted logger name under
// the current Ruleset.
func (r *Resolver) EffectiveLevel(name string) core.Level {
	return r.current.Load().Level(name)
}

// Enabled reports whether a message at lvl would be emitted by a logger
// called name. Intended for the per-call fast path: it takes one atomic
// load and allocates nothing.
func (r *Resolver) Enabled(name string, lvl core.Level) bool {
	return r.current.Load().Enabled(name, lvl)
}

// MinLevel returns the most verbose threshold reachable for any logger
// name under the current Ruleset.
func (r *Resolver) MinLevel() core.Level {
	return r.current.Load().MinLevel()
}

// Reconfigure parses a directive string and swaps it in as the current
// Ruleset. Like directive.Parse it never fails; malformed fragments are
// dropped. Concurrent queries see either the old or the new Ruleset
// entirely, and concurrent Reconfigure calls are last-write-wins.
func (r *Resolver) Reconfigure(raw string) {
	r.current.Store(directive.Parse(raw))
}

// SetRuleset atomically replaces the current Ruleset. Hosts that need
// parse diagnostics can build the Ruleset with directive.ParseReport
// and install it here.
func (r *Resolver) SetRuleset(rs *core.Ruleset) {
	r.current.Store(rs)
}
