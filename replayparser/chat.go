package replayparser

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/wire"
)

// extractChat scans every record for string leaves, keeping those that are
// plausibly chat text: longer than three characters, not a known player
// name, not the map name, and not starting with ':' (an observed marker
// for non-chat protocol strings).
func extractChat(records []sgrep.Record, players map[int]string, mapName string) []sgrep.ChatEntry {
	skip := make(map[string]bool, len(players)+1)
	for _, name := range players {
		skip[name] = true
	}
	if mapName != "" {
		skip[mapName] = true
	}

	var entries []sgrep.ChatEntry
	for _, rec := range records {
		frameVal, _ := asUint64(wire.Get(rec.Tree, 1))
		frame := sgrep.Frame(sgrep.U64ToI64(frameVal))
		actorID, _ := asUint64(wire.Get(rec.Tree, 2))

		for _, s := range collectStrings(rec.Tree) {
			if utf8.RuneCountInString(s) <= 3 || skip[s] || strings.HasPrefix(s, ":") {
				continue
			}
			entries = append(entries, sgrep.ChatEntry{
				Frame:   frame,
				Time:    frame.String(),
				ActorID: actorID,
				Text:    s,
			})
		}
	}
	return entries
}

// collectStrings walks t depth-first in field-number order, collecting
// every string leaf found at any depth.
func collectStrings(t wire.Tree) []string {
	tags := make([]int, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	sort.Ints(tags)

	var out []string
	for _, tag := range tags {
		for _, leaf := range t[tag] {
			switch leaf.Kind {
			case wire.KindString:
				out = append(out, leaf.Str)
			case wire.KindMessage:
				out = append(out, collectStrings(leaf.Message)...)
			case wire.KindGroup:
				out = append(out, collectStrings(leaf.Group)...)
			}
		}
	}
	return out
}
