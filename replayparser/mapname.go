package replayparser

import (
	"unicode/utf8"

	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/wire"
)

const earlyRecordWindow = 50

// mapNameCandidatePaths are tried in order against each early record; the
// first string longer than 3 characters wins. Three paths exist because the
// map name has been observed nested at different depths depending on which
// game-info record carries it.
var mapNameCandidatePaths = [][]int{
	{3, 1, 3, 2},
	{3, 1, 1, 3, 2},
	{3, 1, 1, 2},
}

func findMapName(records []sgrep.Record) string {
	limit := len(records)
	if limit > earlyRecordWindow {
		limit = earlyRecordWindow
	}

	for _, rec := range records[:limit] {
		for _, path := range mapNameCandidatePaths {
			if name, ok := asString(wire.Get(rec.Tree, path...)); ok && utf8.RuneCountInString(name) > 3 {
				return name
			}
		}
	}
	return ""
}
