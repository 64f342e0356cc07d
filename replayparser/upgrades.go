package replayparser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sgreplay/sgreplay/internal/hash"
	"github.com/sgreplay/sgreplay/sgrep"
)

// computeUpgrades selects COMMAND actions whose ability name matches an
// upgrade keyword and is not a Stormgate reward, deduplicated by (actor,
// ability_id), sorted by frame.
func computeUpgrades(events []sgrep.ActionEvent) map[int][]sgrep.UpgradeEntry {
	seen := make(map[uint64]bool)
	byActor := make(map[int][]sgrep.UpgradeEntry)

	for _, ev := range events {
		if ev.Category != sgrep.CategoryCommand || ev.AbilityRef == nil {
			continue
		}
		if ev.ActorID == sgrep.SystemActorID {
			continue
		}
		name := ev.AbilityRef.Name
		if !isUpgradeAbility(name) || strings.HasPrefix(name, stormgateRewardPrefix) {
			continue
		}

		dedupKey := hash.ID(fmt.Sprintf("actor=%d,ability_id=%d", ev.ActorID, ev.AbilityRef.ID))
		if seen[dedupKey] {
			continue
		}
		seen[dedupKey] = true

		slot := int(ev.ActorID)
		byActor[slot] = append(byActor[slot], sgrep.UpgradeEntry{
			Frame:     ev.Frame,
			Time:      ev.Frame.String(),
			AbilityID: ev.AbilityRef.ID,
			Name:      friendlyUpgradeName(name),
		})
	}

	for slot := range byActor {
		entries := byActor[slot]
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Frame < entries[j].Frame })
		byActor[slot] = entries
	}
	return byActor
}
