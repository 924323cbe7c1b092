// Package config loads per-logger level configuration from YAML files:
//
//	log_level: info
//	loggers:
//	  - name: myapp.database
//	    log_level: trace
//	  - name: somelib
//	    log_level: error
//
// A file compiles to the same directive string an environment variable
// carries ("info,myapp.database=trace,somelib=error"), so both
// configuration sources share one grammar and one resolution semantics.
// Application stays best-effort: entries the parser cannot use are
// dropped, and Validate reports them all at once for hosts that want to
// surface mistakes.
//
// The Watcher keeps a Resolver in sync with a file, swapping rulesets
// atomically as the file changes.
package config
