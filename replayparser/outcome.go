package replayparser

import (
	"sort"

	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/wire"
)

// computeOutcome resolves winners and losers with a three-tier fallback:
// a tag-31 winning-slot marker reconciled against the footer's team map,
// else the footer's own win/loss field (tag 3), else its secondary field
// (tag 4). Reports unknown when none of these resolve.
func computeOutcome(records, footerRecords []sgrep.Record, players map[int]string, teams map[int]sgrep.Team) sgrep.GameResult {
	distinctTeams := make(map[sgrep.Team]bool)
	for _, t := range teams {
		distinctTeams[t] = true
	}

	if len(distinctTeams) >= 2 {
		if winnerSlot, ok := findTag31WinnerSlot(records); ok {
			if winningTeam, ok := teams[winnerSlot]; ok {
				if result, ok := resultFromTeams(teams, players, winningTeam); ok {
					return result
				}
			}
		}
	}

	if result, ok := resultFromFooterField(footerRecords, 3); ok {
		return result
	}
	if result, ok := resultFromFooterField(footerRecords, 4); ok {
		return result
	}

	return sgrep.GameResult{Result: sgrep.ResultUnknown}
}

func findTag31WinnerSlot(records []sgrep.Record) (int, bool) {
	for _, rec := range records {
		for _, leaf := range wire.All(rec.Tree, 31) {
			if leaf.Kind != wire.KindMessage {
				continue
			}
			if slot, ok := asUint64(wire.Get(leaf.Message, 1)); ok {
				return int(slot), true
			}
		}
	}
	return 0, false
}

func resultFromTeams(teams map[int]sgrep.Team, players map[int]string, winningTeam sgrep.Team) (sgrep.GameResult, bool) {
	slots := make([]int, 0, len(teams))
	for slot := range teams {
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	var winners, losers []string
	for _, slot := range slots {
		name, ok := players[slot]
		if !ok {
			continue
		}
		if teams[slot] == winningTeam {
			winners = append(winners, name)
		} else {
			losers = append(losers, name)
		}
	}
	if len(winners) == 0 {
		return sgrep.GameResult{}, false
	}
	return sgrep.GameResult{Result: sgrep.ResultComplete, Winners: winners, Losers: losers}, true
}

// resultFromFooterField treats value 1 under fieldTag as a win marker and 2
// as a loss marker for the named footer entry.
func resultFromFooterField(footerRecords []sgrep.Record, fieldTag int) (sgrep.GameResult, bool) {
	var winners, losers []string
	found := false
	for _, entry := range footerPlayerEntries(footerRecords) {
		name, ok := asString(wire.Get(entry, 2))
		if !ok || name == "" {
			continue
		}
		val, ok := asUint64(wire.Get(entry, fieldTag))
		if !ok {
			continue
		}
		switch val {
		case 1:
			winners = append(winners, name)
			found = true
		case 2:
			losers = append(losers, name)
			found = true
		}
	}
	if !found || len(winners) == 0 {
		return sgrep.GameResult{}, false
	}
	return sgrep.GameResult{Result: sgrep.ResultComplete, Winners: winners, Losers: losers}, true
}
