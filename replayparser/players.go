package replayparser

import (
	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/wire"
)

// identifyPlayers merges three evidence paths, in order: a profile record
// (tag 45) binding the record's own actor id to a name, a join record (tag
// 37) binding an explicit slot to a name, and, for any name neither of
// those surfaced, the footer's player list filling the remaining unnamed
// slots in sequence.
func identifyPlayers(records, footerRecords []sgrep.Record) map[int]string {
	players := make(map[int]string)

	limit := len(records)
	if limit > earlyRecordWindow {
		limit = earlyRecordWindow
	}
	early := records[:limit]

	for _, rec := range early {
		actorID, ok := asUint64(wire.Get(rec.Tree, 2))
		if !ok || actorID == sgrep.SystemActorID {
			continue
		}
		content, ok := wire.GetTree(rec.Tree, 3, 1)
		if !ok {
			continue
		}
		for _, leaf := range wire.All(content, contentTagProfile) {
			if leaf.Kind != wire.KindMessage {
				continue
			}
			if name, ok := asString(wire.Get(leaf.Message, 5, 1)); ok && name != "" {
				players[int(actorID)] = name
			}
		}
	}

	for _, rec := range early {
		content, ok := wire.GetTree(rec.Tree, 3, 1)
		if !ok {
			continue
		}
		for _, leaf := range wire.All(content, contentTagPlayerJoin) {
			if leaf.Kind != wire.KindMessage {
				continue
			}
			slot, okSlot := asUint64(wire.Get(leaf.Message, 2))
			name, okName := asString(wire.Get(leaf.Message, 3))
			if okSlot && okName && name != "" {
				players[int(slot)] = name
			}
		}
	}

	known := make(map[string]bool, len(players))
	for _, name := range players {
		known[name] = true
	}

	slot := 1
	for _, name := range footerPlayerNames(footerRecords) {
		if known[name] {
			continue
		}
		for players[slot] != "" {
			slot++
		}
		players[slot] = name
		known[name] = true
		slot++
	}

	return players
}
