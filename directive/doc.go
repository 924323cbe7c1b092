// Package directive parses the compact rule syntax used to configure
// per-logger levels, conventionally carried in an environment variable:
//
//	config    := directive (',' directive)*
//	directive := level | target '=' level
//	target    := segment ('.' segment)*
//	level     := trace|debug|info|warn|warning|error|off   (case-insensitive)
//
// A bare level token sets the ruleset's default; a target=level pair adds
// a prefix rule. Tokens that do not fit the grammar are dropped one by
// one rather than failing the whole parse, matching the expectation that
// a mistyped environment variable must never crash a program. Hosts that
// want to report the dropped tokens can use ParseReport.
package directive
