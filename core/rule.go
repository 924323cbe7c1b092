package core

import "strings"

// Rule binds a logger-name prefix to a level threshold.
type Rule struct {
	// Target is the dotted name prefix the rule applies to, e.g.
	// "myapp.database". The empty target matches every logger name.
	Target string
	// Level is the threshold for the matched subtree.
	Level Level
}

// Specificity returns the number of dot-separated segments in the target.
// The empty target has specificity 0.
func (r Rule) Specificity() int {
	if r.Target == "" {
		return 0
	}
	return strings.Count(r.Target, ".") + 1
}

// Matches reports whether the rule's target is a segment-wise prefix of
// name. Matching is exact per dot-separated component: "myapp" matches
// "myapp" and "myapp.database" but not "myapplication".
func (r Rule) Matches(name string) bool {
	if r.Target == "" {
		return true
	}
	if !strings.HasPrefix(name, r.Target) {
		return false
	}
	return len(name) == len(r.Target) || name[len(r.Target)] == '.'
}

// Ruleset is an ordered collection of rules plus the default level that
// applies when no rule matches. A Ruleset is never mutated after
// construction; reconfiguration builds a new Ruleset and swaps it in
// whole. All methods tolerate a nil receiver, which behaves like an
// empty Ruleset with DefaultLevel.
type Ruleset struct {
	rules []Rule
	def   Level
	min   Level
}

// NewRuleset builds a Ruleset from rules in declaration order and the
// given default level. The slice is copied, so the caller's slice may be
// reused afterwards.
func NewRuleset(rules []Rule, def Level) *Ruleset {
	rs := &Ruleset{
		rules: make([]Rule, len(rules)),
		def:   def,
		min:   def,
	}
	copy(rs.rules, rules)
	for _, r := range rs.rules {
		if r.Level < rs.min {
			rs.min = r.Level
		}
	}
	return rs
}

// Rules returns a copy of the rules in declaration order.
func (rs *Ruleset) Rules() []Rule {
	if rs == nil || len(rs.rules) == 0 {
		return nil
	}
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Len returns the number of rules.
func (rs *Ruleset) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// DefaultLevel returns the level that applies when no rule matches.
func (rs *Ruleset) DefaultLevel() Level {
	if rs == nil {
		return DefaultLevel
	}
	return rs.def
}

// MinLevel returns the most verbose threshold reachable under this
// Ruleset, across every rule and the default. It answers "could a
// message at this level be enabled for any logger name" in a single
// comparison, which makes it a cheap global gate.
func (rs *Ruleset) MinLevel() Level {
	if rs == nil {
		return DefaultLevel
	}
	return rs.min
}

// Level resolves the effective threshold for a dotted logger name.
//
// Among the rules whose target is a segment-wise prefix of name, the one
// matching the most segments wins. When two matching rules are equally
// specific, the one declared later wins. With no matching rule the
// default level applies. The walk allocates nothing.
func (rs *Ruleset) Level(name string) Level {
	if rs == nil {
		return DefaultLevel
	}
	lvl := rs.def
	best := -1
	for i := range rs.rules {
		r := &rs.rules[i]
		if !r.Matches(name) {
			continue
		}
		// >= lets an equally specific later rule override an earlier one.
		if n := r.Specificity(); n >= best {
			best = n
			lvl = r.Level
		}
	}
	return lvl
}

// Enabled reports whether a message at lvl would be emitted by a logger
// called name under this Ruleset.
func (rs *Ruleset) Enabled(name string, lvl Level) bool {
	return rs.Level(name).Enables(lvl)
}
