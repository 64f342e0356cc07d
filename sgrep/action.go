package sgrep

// ActionCategory classifies a projected action event by its content child
// tag.
type ActionCategory string

const (
	CategoryCommand    ActionCategory = "COMMAND"
	CategorySpawn      ActionCategory = "SPAWN"
	CategorySync       ActionCategory = "SYNC"
	CategoryPlayerJoin ActionCategory = "PLAYER_JOIN"
	CategoryProfile    ActionCategory = "PROFILE"
	CategoryOther      ActionCategory = "OTHER"
)

// CapabilityRef is a numeric capability id resolved to a human name (and,
// when the dictionary entry carries one, its base archetype category) via
// the capability dictionary.
type CapabilityRef struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	BaseType string `json:"base_type,omitempty"`
}

// TargetRef is a numeric target id plus its resolved type.
type TargetRef struct {
	ID       uint64 `json:"id"`
	TypeID   uint64 `json:"type_id"`
	Name     string `json:"name"`
	BaseType string `json:"base_type,omitempty"`
}

// ActionEvent is one semantic operation extracted from a record.
type ActionEvent struct {
	Frame    Frame          `json:"frame"`
	ActorID  uint64         `json:"actor_id"`
	Category ActionCategory `json:"category"`

	// Tag is the content child tag; meaningful chiefly when
	// Category == CategoryOther, where it names the unrecognized tag.
	Tag int `json:"tag,omitempty"`

	CommandKind   *uint64        `json:"command_kind,omitempty"`
	AbilityRef    *CapabilityRef `json:"ability_ref,omitempty"`
	TargetRef     *TargetRef     `json:"target_ref,omitempty"`
	BuildRef      *CapabilityRef `json:"build_ref,omitempty"`
	PositionIndex *uint64        `json:"position_index,omitempty"`
	Pos           *WorldPos      `json:"pos,omitempty"`
	SyncValues    map[int]uint64 `json:"sync_values,omitempty"`

	// Raw is the simplified source subtree, kept for debugging.
	Raw any `json:"raw,omitempty"`
}
