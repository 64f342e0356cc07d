package sgrep

// Entity type taxonomy. Unrecognized entities are EntityUnknown; concrete
// structure and worker names come from the capability dictionary and are
// not enumerated here.
const EntityUnknown = "Unknown"

// CombatUnit is the generic fallback type for an entity whose target
// touches are mostly the generic attack capability.
const CombatUnit = "CombatUnit"

// Entity is one target-addressable game object, keyed by target id.
type Entity struct {
	TargetID    uint64         `json:"target_id"`
	FirstSeen   Frame          `json:"first_seen"`
	LastSeen    Frame          `json:"last_seen"`
	ActionCount int            `json:"action_count"`
	Actors      map[uint64]int `json:"actors"`    // actor id -> touch count
	AsTarget    map[string]int `json:"as_target"` // capability name -> count, when acted upon
	AsCaster    map[string]int `json:"as_caster"` // capability name -> count, when acting
	Type        string         `json:"type"`
	Owner       uint64         `json:"owner"`
}

// NewEntity creates an Entity first touched at frame f.
func NewEntity(targetID uint64, f Frame) *Entity {
	return &Entity{
		TargetID:  targetID,
		FirstSeen: f,
		LastSeen:  f,
		Actors:    make(map[uint64]int),
		AsTarget:  make(map[string]int),
		AsCaster:  make(map[string]int),
		Type:      EntityUnknown,
	}
}
