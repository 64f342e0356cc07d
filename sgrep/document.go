package sgrep

import (
	"github.com/sgreplay/sgreplay/envelope"
)

// BuildOrderEntry is one structure placement in a player's build order.
type BuildOrderEntry struct {
	Frame        Frame    `json:"frame"`
	Time         string   `json:"time"`
	BuildingType uint64   `json:"building_type"`
	BuildingName string   `json:"building_name"`
	X            *float64 `json:"x,omitempty"`
	Y            *float64 `json:"y,omitempty"`
	Inferred     bool     `json:"inferred,omitempty"`
}

// UpgradeEntry is one researched upgrade.
type UpgradeEntry struct {
	Frame     Frame  `json:"frame"`
	Time      string `json:"time"`
	AbilityID uint64 `json:"ability_id"`
	Name      string `json:"name"`
}

// RewardEntry is one selected special reward.
type RewardEntry struct {
	Frame     Frame  `json:"frame"`
	Time      string `json:"time"`
	AbilityID uint64 `json:"ability_id"`
	Name      string `json:"name"`
}

// ChatEntry is one chat line attributed to an actor at a frame.
type ChatEntry struct {
	Frame   Frame  `json:"frame"`
	Time    string `json:"time"`
	ActorID uint64 `json:"actor_id"`
	Text    string `json:"text"`
}

// ProductionEvent is one unit-spawn event attributed to a source building.
type ProductionEvent struct {
	Frame    Frame  `json:"frame"`
	Time     string `json:"time"`
	Building string `json:"building"`
}

// ProductionSummary is a per-player production rollup.
type ProductionSummary struct {
	ByBuilding map[string]int    `json:"by_building"`
	Timeline   []ProductionEvent `json:"timeline"`
}

// EnvelopeDiagnostics surfaces the container decoder's raw findings.
type EnvelopeDiagnostics struct {
	GzipHeaderLen       int               `json:"gzip_header_len"`
	Trailer             *envelope.Trailer `json:"trailer,omitempty"`
	CompressedUnusedLen int               `json:"compressed_unused_len"`
}

// Document is the structured export surface produced for one parsed replay.
type Document struct {
	SourceFile string `json:"source_file"`
	Header     Header `json:"header"`
	Map        string `json:"map"`

	Players map[int]string `json:"players"`
	Teams   map[int]Team   `json:"teams,omitempty"`
	Factions map[int]string `json:"factions"`

	GameResult GameResult `json:"game_result"`

	BuildOrders map[int][]BuildOrderEntry    `json:"build_orders"`
	Upgrades    map[int][]UpgradeEntry       `json:"upgrades"`
	Rewards     map[int][]RewardEntry        `json:"rewards"`
	Production  map[int]ProductionSummary    `json:"production"`

	MessageCount      int                    `json:"message_count"`
	ActionCount       int                    `json:"action_count"`
	CategoryHistogram map[ActionCategory]int `json:"category_histogram"`

	Chat            []ChatEntry `json:"chat"`
	DurationSeconds float64     `json:"duration_seconds"`

	CapabilityUsage map[string]int     `json:"capability_usage"`
	Entities        map[uint64]*Entity `json:"entities"`

	Envelope EnvelopeDiagnostics `json:"envelope"`
	Footer   map[string]any      `json:"footer,omitempty"`

	// Actions and Records are large and omitted unless explicitly
	// requested via ExportOptions. ActionEvent.Raw is replaced with its
	// wire.Tree.Render output before export; see replayparser.Export.
	Actions []ActionEvent    `json:"actions,omitempty"`
	Records []RenderedRecord `json:"records,omitempty"`
}

// RenderedRecord is one decoded record with its message tree rendered for
// export (see wire.Tree.Render).
type RenderedRecord struct {
	Length int            `json:"length"`
	Tree   map[string]any `json:"tree"`
}
