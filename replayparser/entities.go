package replayparser

import (
	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/sgrep/capability"
)

// trackEntities indexes action events by target id, accumulating
// histograms of capabilities observed as target and as caster, and infers
// each entity's type and owner.
func trackEntities(events []sgrep.ActionEvent) map[uint64]*sgrep.Entity {
	entities := make(map[uint64]*sgrep.Entity)

	for _, ev := range events {
		if ev.TargetRef == nil {
			continue
		}

		ent, ok := entities[ev.TargetRef.ID]
		if !ok {
			ent = sgrep.NewEntity(ev.TargetRef.ID, ev.Frame)
			entities[ev.TargetRef.ID] = ent
		}

		ent.LastSeen = ev.Frame
		ent.ActionCount++
		if ev.ActorID != sgrep.SystemActorID {
			ent.Actors[ev.ActorID]++
		}

		if ev.TargetRef.Name != "" {
			ent.AsTarget[ev.TargetRef.Name]++
		}
		if ev.AbilityRef != nil && ev.AbilityRef.Name != "" {
			ent.AsCaster[ev.AbilityRef.Name]++
		}

		inferEntityType(ent)
	}

	for _, ent := range entities {
		inferEntityOwner(ent)
	}

	return entities
}

// inferEntityType applies the taxonomy rules in priority order: spawn
// indicator, morph indicator, construct indicator, then the >50%
// generic-attack heuristic.
func inferEntityType(ent *sgrep.Entity) {
	for name := range ent.AsTarget {
		if structure, ok := capability.SpawnIndicators[name]; ok {
			ent.Type = structure
			return
		}
	}
	for name := range ent.AsCaster {
		if structure, ok := capability.SpawnIndicators[name]; ok {
			ent.Type = structure
			return
		}
	}
	for name := range ent.AsTarget {
		if structure, ok := capability.MorphIndicators[name]; ok {
			ent.Type = structure
			return
		}
	}
	for name := range ent.AsCaster {
		if structure, ok := capability.MorphIndicators[name]; ok {
			ent.Type = structure
			return
		}
	}
	for name := range ent.AsCaster {
		if worker, ok := capability.ConstructIndicators[name]; ok {
			ent.Type = worker
			return
		}
	}
	if ent.ActionCount > 0 && float64(ent.AsTarget[capability.GenericAttackCapability]) > float64(ent.ActionCount)*0.5 {
		ent.Type = sgrep.CombatUnit
	}
}

// inferEntityOwner picks the actor with the most touches; ties break by
// lowest actor id.
func inferEntityOwner(ent *sgrep.Entity) {
	if len(ent.Actors) == 0 {
		return
	}

	var best uint64
	bestCount := 0
	has := false
	for actor, count := range ent.Actors {
		if !has || count > bestCount || (count == bestCount && actor < best) {
			best, bestCount, has = actor, count, true
		}
	}
	ent.Owner = best
}
