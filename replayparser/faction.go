package replayparser

import (
	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/sgrep/capability"
)

// detectFactions attributes a faction to each known actor by the first
// faction-marker substring found in either the ability or target name of
// any of their actions; actors with no marker default to Unknown.
func detectFactions(events []sgrep.ActionEvent, players map[int]string) map[int]string {
	factions := make(map[int]string)

	for _, ev := range events {
		if ev.ActorID == sgrep.SystemActorID {
			continue
		}
		slot := int(ev.ActorID)
		if _, known := factions[slot]; known {
			continue
		}
		if ev.AbilityRef != nil {
			if f := capability.FactionByMarker(ev.AbilityRef.Name); f != capability.UnknownFaction {
				factions[slot] = f
				continue
			}
		}
		if ev.TargetRef != nil {
			if f := capability.FactionByMarker(ev.TargetRef.Name); f != capability.UnknownFaction {
				factions[slot] = f
			}
		}
	}

	for slot := range players {
		if _, ok := factions[slot]; !ok {
			factions[slot] = capability.UnknownFaction
		}
	}

	return factions
}
