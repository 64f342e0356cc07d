package replayparser

import (
	"fmt"
	"sort"

	"github.com/sgreplay/sgreplay/internal/hash"
	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/sgrep/capability"
)

// startingStructureByFaction names the structure every actor of a faction
// starts with; its spawn capability never implies an inferred build entry.
var startingStructureByFaction = map[string]string{
	"Vanguard":  "HQ",
	"Celestial": "Arcship",
	"Infernal":  "Shrine",
}

// computeBuildOrders derives each actor's build order: explicit COMMAND
// placements carrying a build_type, deduplicated by (actor, position_index,
// build_type), unioned with inferred entries synthesized from spawn
// activity when no explicit placement of the implied structure exists at
// or before its first spawn.
func computeBuildOrders(events []sgrep.ActionEvent, factions map[int]string, structures *capability.StructureSet) map[int][]sgrep.BuildOrderEntry {
	explicit := explicitBuildOrders(events, structures)
	withInferred := addInferredBuildOrders(events, explicit, factions)

	result := make(map[int][]sgrep.BuildOrderEntry, len(withInferred))
	for actor, entries := range withInferred {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Frame < entries[j].Frame
		})
		result[int(actor)] = entries
	}
	return result
}

func explicitBuildOrders(events []sgrep.ActionEvent, structures *capability.StructureSet) map[uint64][]sgrep.BuildOrderEntry {
	seen := make(map[uint64]bool)
	byActor := make(map[uint64][]sgrep.BuildOrderEntry)

	for _, ev := range events {
		if ev.Category != sgrep.CategoryCommand || ev.BuildRef == nil {
			continue
		}
		if capability.NonBuildingCapabilities[ev.BuildRef.Name] {
			continue
		}

		if structures != nil {
			if !structures.Contains(ev.BuildRef.ID) {
				continue
			}
		} else if ev.Pos == nil && !capability.IsStructureBaseType(ev.BuildRef.BaseType) {
			// No structure dictionary, no coordinates to lean on, and the
			// archetype dictionary doesn't classify this id as a
			// structure either: can't confirm this build_type names one.
			continue
		}

		var posIdx uint64
		if ev.PositionIndex != nil {
			posIdx = *ev.PositionIndex
		}
		dedupKey := hash.ID(fmt.Sprintf("actor=%d,position_index=%d,build_type=%d", ev.ActorID, posIdx, ev.BuildRef.ID))
		if seen[dedupKey] {
			continue
		}
		seen[dedupKey] = true

		entry := sgrep.BuildOrderEntry{
			Frame:        ev.Frame,
			Time:         ev.Frame.String(),
			BuildingType: ev.BuildRef.ID,
			BuildingName: ev.BuildRef.Name,
		}
		if ev.Pos != nil {
			x, y := ev.Pos.X, ev.Pos.Y
			entry.X, entry.Y = &x, &y
		}
		byActor[ev.ActorID] = append(byActor[ev.ActorID], entry)
	}

	return byActor
}

func addInferredBuildOrders(events []sgrep.ActionEvent, explicit map[uint64][]sgrep.BuildOrderEntry, factions map[int]string) map[uint64][]sgrep.BuildOrderEntry {
	firstSpawnByActor := make(map[uint64]map[string]sgrep.Frame)
	for _, ev := range events {
		if ev.AbilityRef == nil {
			continue
		}
		structure, ok := capability.SpawnIndicators[ev.AbilityRef.Name]
		if !ok {
			continue
		}
		m, exists := firstSpawnByActor[ev.ActorID]
		if !exists {
			m = make(map[string]sgrep.Frame)
			firstSpawnByActor[ev.ActorID] = m
		}
		if f, seen := m[structure]; !seen || ev.Frame < f {
			m[structure] = ev.Frame
		}
	}

	result := make(map[uint64][]sgrep.BuildOrderEntry, len(explicit))
	for actor, entries := range explicit {
		result[actor] = append([]sgrep.BuildOrderEntry(nil), entries...)
	}

	for actor, spawns := range firstSpawnByActor {
		starting := startingStructureByFaction[factions[int(actor)]]

		for structure, spawnFrame := range spawns {
			if structure == starting {
				continue
			}
			if explicitFrame, ok := earliestExplicit(result[actor], structure); ok && explicitFrame <= spawnFrame {
				continue
			}

			result[actor] = append(result[actor], sgrep.BuildOrderEntry{
				Frame:        spawnFrame,
				Time:         spawnFrame.String(),
				BuildingName: structure,
				Inferred:     true,
			})
		}
	}

	return result
}

func earliestExplicit(entries []sgrep.BuildOrderEntry, structureName string) (sgrep.Frame, bool) {
	var earliest sgrep.Frame
	found := false
	for _, e := range entries {
		if e.BuildingName != structureName {
			continue
		}
		if !found || e.Frame < earliest {
			earliest = e.Frame
			found = true
		}
	}
	return earliest, found
}
