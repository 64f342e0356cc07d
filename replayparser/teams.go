package replayparser

import (
	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/wire"
)

// extractTeams reads the footer's player-result array, matching each
// entry's name (tag 2) against the already-identified player map to find
// the slot to attach its team (tag 5) to.
func extractTeams(footerRecords []sgrep.Record, players map[int]string) map[int]sgrep.Team {
	slotByName := make(map[string]int, len(players))
	for slot, name := range players {
		slotByName[name] = slot
	}

	teams := make(map[int]sgrep.Team)
	for _, entry := range footerPlayerEntries(footerRecords) {
		name, ok := asString(wire.Get(entry, 2))
		if !ok || name == "" {
			continue
		}
		teamVal, ok := asUint64(wire.Get(entry, 5))
		if !ok {
			continue
		}
		if slot, ok := slotByName[name]; ok {
			teams[slot] = sgrep.Team(teamVal)
		}
	}
	return teams
}
