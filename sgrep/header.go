// Package sgrep is the data model for a decoded replay: header, players,
// teams, entities, action events, and the final export document.
package sgrep

// Header is the replay file's fixed 20-byte prefix.
type Header struct {
	Magic         uint32 `json:"magic"`
	FormatVersion uint32 `json:"format_version"`
	DataOffset    uint32 `json:"data_offset"`
	Changelist    uint32 `json:"changelist"`
	Flags         uint32 `json:"flags"`
}
