// Package resolver holds a Ruleset behind an atomic pointer and serves
// level queries from it.
//
// The resolver exists for the read/write imbalance of level
// configuration: Enabled is consulted on every log statement while
// Reconfigure runs once at startup and rarely after. Queries therefore
// take a single atomic load with no locks and no allocation, and a
// reconfiguration is one pointer store of a freshly parsed, immutable
// Ruleset. Readers racing a swap see the old or the new configuration
// whole, never a mixture.
package resolver
