// Package replayparser parses ".SGReplay" replay files end to end: the
// fixed file header, the gzip/deflate envelope, the record stream, action
// projection, entity tracking, and the semantic analyzers that derive
// build orders, upgrades, rewards, production, faction, teams, outcome,
// duration, chat, and player/map identification.
//
// The package is safe for concurrent use: Config and its dictionaries are
// read-only after construction, and a Parse call shares no mutable state
// with any other.
package replayparser

import (
	"github.com/sgreplay/sgreplay/sgrep/capability"
	"github.com/sgreplay/sgreplay/sglog"
)

// Config holds parser configuration.
type Config struct {
	// Dictionary resolves capability ids to names. Nil disables
	// resolution; lookups fall back to the stringified id.
	Dictionary *capability.Dictionary

	// Structures resolves which capability ids are placeable structures,
	// used by the build-order analyzer. Nil disables the refinement.
	Structures *capability.StructureSet

	// Logger receives a Warn report when a panic during parsing is
	// recovered. Recoverable error kinds (malformed gzip header, truncated
	// records, decoder give-ups, missing dictionary) are not logged.
	// Nil is equivalent to sglog.Noop().
	Logger sglog.Logger

	_ struct{} // prevent unkeyed literals
}

func (c Config) logger() sglog.Logger {
	if c.Logger == nil {
		return sglog.Noop()
	}
	return c.Logger
}
