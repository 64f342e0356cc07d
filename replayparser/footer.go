package replayparser

import (
	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/wire"
)

// footerPlayerEntries returns every player-result entry (tag 3) across all
// footer records, in encounter order.
func footerPlayerEntries(footerRecords []sgrep.Record) []wire.Tree {
	var entries []wire.Tree
	for _, rec := range footerRecords {
		for _, leaf := range wire.All(rec.Tree, 3) {
			if leaf.Kind == wire.KindMessage {
				entries = append(entries, leaf.Message)
			}
		}
	}
	return entries
}

func footerPlayerNames(footerRecords []sgrep.Record) []string {
	var names []string
	for _, entry := range footerPlayerEntries(footerRecords) {
		if name, ok := asString(wire.Get(entry, 2)); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}
