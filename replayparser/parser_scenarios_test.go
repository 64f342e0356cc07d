package replayparser

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sgreplay/sgreplay/sgrep/capability"
)

// The helpers below build synthetic replay files byte-for-byte, exercising
// the full Parse pipeline against the concrete scenarios enumerated in the
// wire-format spec this parser implements. They encode exactly the nested
// field structures those scenarios describe, reusing only the varint/tag
// encoding (the inverse of wire.DecodeVarint/DecodeTag) and stdlib gzip.

type tfield struct {
	tag    int
	varint *uint64
	str    *string
	sub    []tfield
}

func vf(tag int, v uint64) tfield  { return tfield{tag: tag, varint: &v} }
func sf(tag int, s string) tfield  { return tfield{tag: tag, str: &s} }
func mf(tag int, sub ...tfield) tfield {
	return tfield{tag: tag, sub: sub}
}

func appendVarint(buf []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
		if v == 0 {
			break
		}
	}
	return buf
}

func appendTag(buf []byte, fieldNumber, wireType int) []byte {
	return appendVarint(buf, uint64(fieldNumber)<<3|uint64(wireType))
}

const wireVarint = 0
const wireLengthDelimited = 2

func encodeFields(fields []tfield) []byte {
	var buf []byte
	for _, f := range fields {
		switch {
		case f.varint != nil:
			buf = appendTag(buf, f.tag, wireVarint)
			buf = appendVarint(buf, *f.varint)
		case f.str != nil:
			inner := []byte(*f.str)
			buf = appendTag(buf, f.tag, wireLengthDelimited)
			buf = appendVarint(buf, uint64(len(inner)))
			buf = append(buf, inner...)
		default:
			inner := encodeFields(f.sub)
			buf = appendTag(buf, f.tag, wireLengthDelimited)
			buf = appendVarint(buf, uint64(len(inner)))
			buf = append(buf, inner...)
		}
	}
	return buf
}

// contentWrap builds a full top-level record: frame at tag 1, actor at tag
// 2, and the content subtree (tag 3 -> child tag 1) holding contentFields.
func contentWrap(frame, actor uint64, contentFields ...tfield) []byte {
	return encodeFields([]tfield{
		vf(1, frame),
		vf(2, actor),
		mf(3, mf(1, contentFields...)),
	})
}

func lengthPrefixed(body []byte) []byte {
	var buf []byte
	buf = appendVarint(buf, uint64(len(body)))
	return append(buf, body...)
}

// buildFile assembles a full replay file: the 20-byte header, a
// gzip-wrapped record stream, and an optional raw footer appended after
// the gzip trailer.
func buildFile(t *testing.T, changelist uint32, records [][]byte, footer []byte) []byte {
	t.Helper()

	var stream []byte
	for _, r := range records {
		stream = append(stream, lengthPrefixed(r)...)
	}

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, err := w.Write(stream)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	header := make([]byte, 20)
	binary.LittleEndian.PutUint32(header[0:4], 0x53475250) // arbitrary magic
	binary.LittleEndian.PutUint32(header[4:8], 1)
	binary.LittleEndian.PutUint32(header[8:12], 20)
	binary.LittleEndian.PutUint32(header[12:16], changelist)
	binary.LittleEndian.PutUint32(header[16:20], 0)

	file := append(append([]byte{}, header...), gz.Bytes()...)
	file = append(file, footer...)
	return file
}

// Scenario 1: a minimal file with a single PLAYER_JOIN record.
func TestParse_Scenario1_PlayerJoin(t *testing.T) {
	record := contentWrap(1024, 1, mf(contentTagPlayerJoin, vf(2, 1), sf(3, "Alice")))
	file := buildFile(t, 1, [][]byte{record}, nil)

	res, err := Parse(context.Background(), file)
	require.NoError(t, err)
	require.Equal(t, uint32(1), res.Header.Changelist)
	require.Equal(t, map[int]string{1: "Alice"}, res.Players)

	require.Len(t, res.Actions, 1)
	action := res.Actions[0]
	require.Equal(t, "PLAYER_JOIN", string(action.Category))
	require.Equal(t, int64(1024), int64(action.Frame))
	require.Equal(t, "00:01", action.Frame.String())
}

// Scenario 2: adding a SYNC record yields a 20-second duration.
func TestParse_Scenario2_Duration(t *testing.T) {
	joinRecord := contentWrap(1024, 1, mf(contentTagPlayerJoin, vf(2, 1), sf(3, "Alice")))
	syncRecord := contentWrap(10240, 1, mf(contentTagSync, vf(1, 20480)))
	file := buildFile(t, 1, [][]byte{joinRecord, syncRecord}, nil)

	res, err := Parse(context.Background(), file)
	require.NoError(t, err)
	require.Equal(t, 20.0, res.DurationSeconds)
}

// Scenario 3: three identical (actor, position_index, build_type) COMMAND
// placements collapse to one build-order entry at the earliest frame.
func TestParse_Scenario3_BuildOrderDedup(t *testing.T) {
	const actor = 1
	const posIdx = 42
	const buildType = 500

	abilityAt := func(frame uint64) []byte {
		ability := mf(4,
			vf(1, 900),
			vf(2, posIdx),
			vf(3, buildType),
			mf(4, vf(1, uint64(int64(10*4096))), vf(2, uint64(int64(20*4096)))),
		)
		return contentWrap(frame, actor, mf(contentTagCommand, ability))
	}

	records := [][]byte{abilityAt(5000), abilityAt(5100), abilityAt(5200)}
	file := buildFile(t, 1, records, nil)

	res, err := Parse(context.Background(), file)
	require.NoError(t, err)

	entries := res.BuildOrders[actor]
	require.Len(t, entries, 1)
	require.Equal(t, int64(5000), int64(entries[0].Frame))
}

// Scenario 4: a SPAWN of "BarracksSpawn" with no explicit Barracks build
// synthesizes an inferred build-order entry at the spawn's frame.
func TestParse_Scenario4_InferredBuild(t *testing.T) {
	dict, err := capability.LoadDictionary(strings.NewReader(`{
		"archetypes": {
			"777": [111, {"id": "BarracksSpawn", "__base_type": "UnitData"}]
		}
	}`))
	require.NoError(t, err)

	record := contentWrap(8000, 1, mf(contentTagSpawn, vf(1, 1), vf(3, 777)))
	file := buildFile(t, 1, [][]byte{record}, nil)

	res, err := ParseConfig(context.Background(), file, Config{Dictionary: dict})
	require.NoError(t, err)

	entries := res.BuildOrders[1]
	require.Len(t, entries, 1)
	require.True(t, entries[0].Inferred)
	require.Equal(t, "Barracks", entries[0].BuildingName)
	require.Equal(t, int64(8000), int64(entries[0].Frame))
}

// Scenario 5: a footer with two teams plus a tag-31 winning-slot record
// resolves winners and losers via the team map.
func TestParse_Scenario5_Outcome(t *testing.T) {
	aliceJoin := contentWrap(1000, 0, mf(contentTagPlayerJoin, vf(2, 1), sf(3, "Alice")))
	bobJoin := contentWrap(1000, 0, mf(contentTagPlayerJoin, vf(2, 2), sf(3, "Bob")))
	winnerMarker := encodeFields([]tfield{mf(31, vf(1, 1))})

	footer := encodeFields([]tfield{
		mf(3, sf(2, "Alice"), vf(5, 1)),
		mf(3, sf(2, "Bob"), vf(5, 2)),
	})

	file := buildFile(t, 1, [][]byte{aliceJoin, bobJoin, winnerMarker}, footer)

	res, err := Parse(context.Background(), file)
	require.NoError(t, err)

	require.Equal(t, "complete", res.GameResult.Result)
	require.Equal(t, []string{"Alice"}, res.GameResult.Winners)
	require.Equal(t, []string{"Bob"}, res.GameResult.Losers)
}

// Scenario 6: a truncated header surfaces a single failure with no partial
// document.
func TestParse_Scenario6_MalformedHeader(t *testing.T) {
	res, err := Parse(context.Background(), []byte{1, 2, 3})
	require.Error(t, err)
	require.Nil(t, res)
}

// Scenario 7: with no structure dictionary and no parsed coordinates, a
// build placement is still retained when the capability dictionary's
// __base_type classifies the build_type as a structure archetype.
func TestParse_Scenario7_BuildOrderBaseTypeFallback(t *testing.T) {
	dict, err := capability.LoadDictionary(strings.NewReader(`{
		"archetypes": {
			"600": [222, {"id": "Barracks", "__base_type": "UnitData"}]
		}
	}`))
	require.NoError(t, err)

	ability := mf(4, vf(1, 900), vf(2, 1), vf(3, 600))
	record := contentWrap(3000, 1, mf(contentTagCommand, ability))
	file := buildFile(t, 1, [][]byte{record}, nil)

	res, err := ParseConfig(context.Background(), file, Config{Dictionary: dict})
	require.NoError(t, err)

	entries := res.BuildOrders[1]
	require.Len(t, entries, 1)
	require.Equal(t, "Barracks", entries[0].BuildingName)
	require.Nil(t, entries[0].X)
}

// Scenario 7b: the same no-structure-dictionary, no-coordinates placement is
// dropped when the dictionary's __base_type does not name a structure
// archetype.
func TestParse_Scenario7b_BuildOrderBaseTypeFallbackRejectsNonStructure(t *testing.T) {
	dict, err := capability.LoadDictionary(strings.NewReader(`{
		"archetypes": {
			"601": [223, {"id": "SomeAbility", "__base_type": "AbilityData"}]
		}
	}`))
	require.NoError(t, err)

	ability := mf(4, vf(1, 900), vf(2, 1), vf(3, 601))
	record := contentWrap(3000, 1, mf(contentTagCommand, ability))
	file := buildFile(t, 1, [][]byte{record}, nil)

	res, err := ParseConfig(context.Background(), file, Config{Dictionary: dict})
	require.NoError(t, err)

	require.Empty(t, res.BuildOrders[1])
}

// Scenario 8: a player identified via a join record keeps their slot, and a
// second player known only from the footer's player-result array fills the
// still-unnamed slot rather than being dropped by an all-or-nothing gate.
func TestParse_Scenario8_FooterFillsMissingPlayerSlot(t *testing.T) {
	aliceJoin := contentWrap(1000, 0, mf(contentTagPlayerJoin, vf(2, 1), sf(3, "Alice")))

	footer := encodeFields([]tfield{
		mf(3, sf(2, "Alice"), vf(5, 1)),
		mf(3, sf(2, "Bob"), vf(5, 2)),
	})

	file := buildFile(t, 1, [][]byte{aliceJoin}, footer)

	res, err := Parse(context.Background(), file)
	require.NoError(t, err)
	require.Equal(t, map[int]string{1: "Alice", 2: "Bob"}, res.Players)
}

// Scenario 9: action projection visits a record's content child tags in
// ascending numeric order regardless of their encoding order, so the
// emitted Actions sequence is reproducible across runs.
func TestParse_Scenario9_ActionProjectionOrderIsDeterministic(t *testing.T) {
	record := contentWrap(100, 1,
		mf(contentTagCommand, mf(4, vf(1, 900))),
		mf(contentTagSpawn, vf(1, 1), vf(3, 42)),
	)
	file := buildFile(t, 1, [][]byte{record}, nil)

	res, err := Parse(context.Background(), file)
	require.NoError(t, err)

	require.Len(t, res.Actions, 2)
	require.Equal(t, "SPAWN", string(res.Actions[0].Category))
	require.Equal(t, "COMMAND", string(res.Actions[1].Category))
}
