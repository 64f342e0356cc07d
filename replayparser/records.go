package replayparser

import (
	"context"

	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/wire"
)

// readRecords decodes the decompressed body into a sequence of top-level
// records: {varint length, length bytes of wire-format message}. ctx is
// checked once per record so a pathological file can be abandoned between
// records even though decoding a single record cannot itself suspend.
func readRecords(ctx context.Context, body []byte) []sgrep.Record {
	var records []sgrep.Record

	pos := 0
	for pos < len(body) {
		if err := ctx.Err(); err != nil {
			break
		}

		length, newPos := wire.DecodeVarint(body, pos)
		pos = newPos
		if length == 0 || pos+int(length) > len(body) {
			break
		}

		raw := body[pos : pos+int(length)]
		pos += int(length)

		tree, _ := wire.DecodeMessage(raw, 0)
		records = append(records, sgrep.Record{Raw: raw, Tree: tree})
	}

	return records
}

// readFooterRecords decodes the optional footer region: first as a
// length-prefixed stream that must consume the region exactly, else as a
// single message. Either attempt may legitimately fail; the footer is
// optional.
func readFooterRecords(footer []byte) []sgrep.Record {
	if len(footer) == 0 {
		return nil
	}

	if records, ok := tryLengthPrefixedFooter(footer); ok {
		return records
	}

	tree, ok := wire.DecodeMessage(footer, 0)
	if !ok {
		return nil
	}
	return []sgrep.Record{{Raw: footer, Tree: tree}}
}

func tryLengthPrefixedFooter(footer []byte) ([]sgrep.Record, bool) {
	var records []sgrep.Record

	pos := 0
	for pos < len(footer) {
		length, newPos := wire.DecodeVarint(footer, pos)
		pos = newPos
		if length == 0 || pos+int(length) > len(footer) {
			return nil, false
		}

		raw := footer[pos : pos+int(length)]
		pos += int(length)

		tree, ok := wire.DecodeMessage(raw, 0)
		if !ok {
			return nil, false
		}
		records = append(records, sgrep.Record{Raw: raw, Tree: tree})
	}

	return records, pos == len(footer)
}
