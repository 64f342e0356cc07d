package replayparser

import (
	"sort"

	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/sgrep/capability"
	"github.com/sgreplay/sgreplay/wire"
)

const (
	contentTagCommand    = 7
	contentTagSpawn      = 4
	contentTagSync       = 40
	contentTagPlayerJoin = 37
	contentTagProfile    = 45
)

// projectActions flattens every record's content subtree (tag 3 -> tag 1)
// into a sequence of action events, one per leaf entry under each child
// tag, visiting child tags in ascending order so the resulting sequence is
// reproducible regardless of Go's map iteration order. Ability, target and
// build identifiers are resolved via dict when it is non-nil.
func projectActions(records []sgrep.Record, dict *capability.Dictionary) []sgrep.ActionEvent {
	var events []sgrep.ActionEvent

	for _, rec := range records {
		frameVal, ok := asUint64(wire.Get(rec.Tree, 1))
		if !ok {
			continue
		}
		frame := sgrep.Frame(sgrep.U64ToI64(frameVal))

		actorID, _ := asUint64(wire.Get(rec.Tree, 2))

		content, ok := wire.GetTree(rec.Tree, 3, 1)
		if !ok {
			continue
		}

		tags := make([]int, 0, len(content))
		for tag := range content {
			tags = append(tags, tag)
		}
		sort.Ints(tags)

		for _, tag := range tags {
			for _, leaf := range content[tag] {
				if leaf.Kind != wire.KindMessage {
					continue
				}
				data := leaf.Message

				event := sgrep.ActionEvent{
					Frame:   frame,
					ActorID: actorID,
					Tag:     tag,
					Raw:     data,
				}

				switch tag {
				case contentTagCommand:
					event.Category = sgrep.CategoryCommand
					projectCommand(&event, data, dict)
				case contentTagSpawn:
					event.Category = sgrep.CategorySpawn
					projectSpawn(&event, data, dict)
				case contentTagSync:
					event.Category = sgrep.CategorySync
					projectSync(&event, data)
				case contentTagPlayerJoin:
					event.Category = sgrep.CategoryPlayerJoin
				case contentTagProfile:
					event.Category = sgrep.CategoryProfile
				default:
					event.Category = sgrep.CategoryOther
				}

				events = append(events, event)
			}
		}
	}

	return events
}

// projectCommand fills in a COMMAND event: command_kind at child tag 1,
// target info under the repeated child tag 9, and the ability block under
// child tag 4.
func projectCommand(event *sgrep.ActionEvent, data wire.Tree, dict *capability.Dictionary) {
	if ck, ok := asUint64(wire.Get(data, 1)); ok {
		event.CommandKind = &ck
	}

	for _, leaf := range wire.All(data, 9) {
		if leaf.Kind != wire.KindMessage {
			continue
		}
		sf := leaf.Message

		targetID, hasTarget := asUint64(wire.Get(sf, 1))
		targetType, hasType := asUint64(wire.Get(sf, 2))
		if !hasTarget && !hasType {
			continue
		}

		ref := &sgrep.TargetRef{}
		if hasTarget {
			ref.ID = targetID
		}
		if hasType {
			ref.TypeID = targetType
			if dict != nil {
				ref.Name, ref.BaseType = dict.NameAndType(targetType)
			}
		}
		event.TargetRef = ref

		// f5/f6 carry world coordinates only sometimes; fall back
		// gracefully when they don't parse as fixed-point.
		if f5, ok5 := asSignedFixed(wire.Get(sf, 5)); ok5 {
			if f6, ok6 := asSignedFixed(wire.Get(sf, 6)); ok6 {
				event.Pos = &sgrep.WorldPos{X: sgrep.FixedToWorld(f5), Y: sgrep.FixedToWorld(f6)}
			}
		}
	}

	abilityTree, ok := wire.GetTree(data, 4)
	if !ok {
		return
	}

	if abilityID, ok := asUint64(wire.Get(abilityTree, 1)); ok {
		ref := &sgrep.CapabilityRef{ID: abilityID}
		if dict != nil {
			ref.Name, ref.BaseType = dict.NameAndType(abilityID)
		}
		event.AbilityRef = ref
	}
	if posIdx, ok := asUint64(wire.Get(abilityTree, 2)); ok {
		event.PositionIndex = &posIdx
	}
	if buildType, ok := asUint64(wire.Get(abilityTree, 3)); ok {
		ref := &sgrep.CapabilityRef{ID: buildType}
		if dict != nil {
			ref.Name, ref.BaseType = dict.NameAndType(buildType)
		}
		event.BuildRef = ref
	}

	if x, okx := asSignedFixed(wire.Get(abilityTree, 4, 1)); okx {
		if y, oky := asSignedFixed(wire.Get(abilityTree, 4, 2)); oky {
			event.Pos = &sgrep.WorldPos{X: sgrep.FixedToWorld(x), Y: sgrep.FixedToWorld(y)}
		}
	}
}

// projectSpawn fills in a SPAWN event: owner at child tag 1 (mapped onto
// CommandKind, the event's generic primary scalar), unit_type at child
// tag 3 (mapped onto AbilityRef).
func projectSpawn(event *sgrep.ActionEvent, data wire.Tree, dict *capability.Dictionary) {
	if owner, ok := asUint64(wire.Get(data, 1)); ok {
		event.CommandKind = &owner
	}
	if unitType, ok := asUint64(wire.Get(data, 3)); ok {
		ref := &sgrep.CapabilityRef{ID: unitType}
		if dict != nil {
			ref.Name = dict.Name(unitType)
		}
		event.AbilityRef = ref
	}
}

// projectSync exposes every scalar child of a SYNC event as sync_<tag>.
func projectSync(event *sgrep.ActionEvent, data wire.Tree) {
	values := make(map[int]uint64)
	for tag, leaves := range data {
		if len(leaves) == 0 || leaves[0].Kind != wire.KindVarint {
			continue
		}
		values[tag] = leaves[0].Varint
	}
	if len(values) > 0 {
		event.SyncValues = values
	}
}
