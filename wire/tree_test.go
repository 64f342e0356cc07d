package wire

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

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

func TestDecodeMessage_Varint(t *testing.T) {
	var data []byte
	data = appendTag(data, 1, WireVarint)
	data = appendVarint(data, 1024)

	tree, ok := DecodeMessage(data, 0)
	require.True(t, ok)
	require.Len(t, tree[1], 1)
	require.Equal(t, KindVarint, tree[1][0].Kind)
	require.Equal(t, uint64(1024), tree[1][0].Varint)
}

func TestDecodeMessage_RepeatedFieldPreservesOrder(t *testing.T) {
	var data []byte
	data = appendTag(data, 5, WireVarint)
	data = appendVarint(data, 1)
	data = appendTag(data, 5, WireVarint)
	data = appendVarint(data, 2)

	tree, ok := DecodeMessage(data, 0)
	require.True(t, ok)
	require.Len(t, tree[5], 2)
	require.Equal(t, uint64(1), tree[5][0].Varint)
	require.Equal(t, uint64(2), tree[5][1].Varint)
}

func TestDecodeMessage_FieldNumberZeroTerminates(t *testing.T) {
	var data []byte
	data = appendTag(data, 1, WireVarint)
	data = appendVarint(data, 7)
	data = appendTag(data, 0, WireVarint) // field number 0: terminates
	data = appendVarint(data, 99)

	tree, ok := DecodeMessage(data, 0)
	require.True(t, ok)
	require.Len(t, tree[1], 1)
	require.Equal(t, uint64(7), tree[1][0].Varint)
	require.NotContains(t, tree, 0)
}

func TestDecodeMessage_MessageVsStringTieBreak(t *testing.T) {
	// A nested message that fully consumes its payload wins over string.
	var nested []byte
	nested = appendTag(nested, 1, WireVarint)
	nested = appendVarint(nested, 42)

	var data []byte
	data = appendTag(data, 3, WireLengthDelimited)
	data = appendVarint(data, uint64(len(nested)))
	data = append(data, nested...)

	tree, ok := DecodeMessage(data, 0)
	require.True(t, ok)
	require.Equal(t, KindMessage, tree[3][0].Kind)
	require.Equal(t, uint64(42), tree[3][0].Message[1][0].Varint)

	// A payload that is valid UTF-8 printable text, but not a fully
	// consumable message, decodes as a string.
	var data2 []byte
	data2 = appendTag(data2, 4, WireLengthDelimited)
	str := "Alice"
	data2 = appendVarint(data2, uint64(len(str)))
	data2 = append(data2, str...)

	tree2, ok := DecodeMessage(data2, 0)
	require.True(t, ok)
	require.Equal(t, KindString, tree2[4][0].Kind)
	require.Equal(t, "Alice", tree2[4][0].Str)

	// Opaque, non-UTF8, non-message bytes fall back to Bytes.
	var data3 []byte
	data3 = appendTag(data3, 6, WireLengthDelimited)
	opaque := []byte{0xff, 0xfe, 0x00, 0x01}
	data3 = appendVarint(data3, uint64(len(opaque)))
	data3 = append(data3, opaque...)

	tree3, ok := DecodeMessage(data3, 0)
	require.True(t, ok)
	require.Equal(t, KindBytes, tree3[6][0].Kind)
	require.Equal(t, opaque, tree3[6][0].Bytes)
}

func TestDecodeMessage_Fixed64AndFixed32(t *testing.T) {
	var data []byte
	data = appendTag(data, 1, WireFixed64)
	raw64 := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw64, uint64(4096*3))
	data = append(data, raw64...)

	data = appendTag(data, 2, WireFixed32)
	raw32 := make([]byte, 4)
	binary.LittleEndian.PutUint32(raw32, 7)
	data = append(data, raw32...)

	tree, ok := DecodeMessage(data, 0)
	require.True(t, ok)
	require.Equal(t, KindFixed64, tree[1][0].Kind)
	require.Equal(t, int64(4096*3), tree[1][0].Fixed64Int)
	require.Equal(t, KindFixed32, tree[2][0].Kind)
	require.Equal(t, int32(7), tree[2][0].Fixed32Int)
}

func TestDecodeMessage_TruncatedLengthDelimitedStops(t *testing.T) {
	var data []byte
	data = appendTag(data, 1, WireVarint)
	data = appendVarint(data, 1)
	data = appendTag(data, 2, WireLengthDelimited)
	data = appendVarint(data, 100) // declares far more bytes than remain

	tree, ok := DecodeMessage(data, 0)
	require.True(t, ok)
	require.Len(t, tree[1], 1)
	require.NotContains(t, tree, 2)
}

func TestDecodeMessage_DepthCapFails(t *testing.T) {
	// Rather than building a payload nested deeper than maxDepth levels of
	// length-delimited messages, call decodeMessage directly at a depth
	// beyond the cap; it must refuse to decode.
	_, _, ok := decodeMessage([]byte{0x08, 0x01}, maxDepth+1, -1)
	require.False(t, ok)
}

func TestDecodeMessage_UnknownWireTypeTerminates(t *testing.T) {
	var data []byte
	data = appendTag(data, 1, WireVarint)
	data = appendVarint(data, 1)
	data = appendTag(data, 2, 6) // wire type 6 is unknown

	tree, ok := DecodeMessage(data, 0)
	require.True(t, ok)
	require.Len(t, tree[1], 1)
	require.NotContains(t, tree, 2)
}

func TestDecodeMessage_EveryByteConsumedForWellFormedRecord(t *testing.T) {
	var data []byte
	data = appendTag(data, 1, WireVarint)
	data = appendVarint(data, 1024)
	data = appendTag(data, 2, WireVarint)
	data = appendVarint(data, 1)

	tree, consumed, ok := decodeMessage(data, 0, -1)
	require.True(t, ok)
	require.Equal(t, len(data), consumed)
	require.Len(t, tree, 2)
}
