package replayparser

import (
	"sort"
	"strings"

	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/sgrep/capability"
)

// computeProduction selects COMMAND actions whose ability name contains
// "spawn" (case-insensitive), resolves the owning building via the same
// spawn-indicator table used for build-order inference, and rolls the
// result up per actor into a count-by-building plus a flat timeline.
func computeProduction(events []sgrep.ActionEvent) map[int]sgrep.ProductionSummary {
	byActor := make(map[int]sgrep.ProductionSummary)

	for _, ev := range events {
		if ev.Category != sgrep.CategoryCommand || ev.AbilityRef == nil {
			continue
		}
		if ev.ActorID == sgrep.SystemActorID {
			continue
		}
		name := ev.AbilityRef.Name
		if !strings.Contains(strings.ToLower(name), "spawn") {
			continue
		}

		building, ok := capability.SpawnIndicators[name]
		if !ok {
			building = name
		}

		slot := int(ev.ActorID)
		summary := byActor[slot]
		if summary.ByBuilding == nil {
			summary.ByBuilding = make(map[string]int)
		}
		summary.ByBuilding[building]++
		summary.Timeline = append(summary.Timeline, sgrep.ProductionEvent{
			Frame:    ev.Frame,
			Time:     ev.Frame.String(),
			Building: building,
		})
		byActor[slot] = summary
	}

	for slot, summary := range byActor {
		sort.SliceStable(summary.Timeline, func(i, j int) bool {
			return summary.Timeline[i].Frame < summary.Timeline[j].Frame
		})
		byActor[slot] = summary
	}
	return byActor
}
