// This file contains the message tree decoder: it reconstructs a tree of
// tagged fields from a byte slice without a schema, the same way the source
// format's producer is believed to have serialized it.

package wire

import (
	"encoding/binary"
	"math"
	"unicode"
	"unicode/utf8"
)

// Kind identifies which representation a Leaf holds.
type Kind int

const (
	KindVarint Kind = iota
	KindFixed64
	KindFixed32
	KindString
	KindMessage
	KindBytes
	KindGroup
)

// Leaf is a single decoded field value. Only the fields matching Kind are
// populated.
type Leaf struct {
	Kind Kind

	Varint uint64

	Fixed64Raw   [8]byte
	Fixed64Int   int64
	Fixed64Float float64

	Fixed32Raw   [4]byte
	Fixed32Int   int32
	Fixed32Float float32

	Str string

	Message Tree

	Bytes []byte

	Group Tree
}

// Tree maps a field number to its ordered list of leaves. Repeated presence
// of a field tag preserves encounter order. Field number 0 never appears.
type Tree map[int][]Leaf

// maxDepth bounds recursion into nested length-delimited payloads and groups.
const maxDepth = 32

// maxFieldNumber is the field-number ceiling beyond which parsing terminates;
// a legitimate wire tag is never this large, so exceeding it signals garbage
// input rather than a valid schema evolution.
const maxFieldNumber = 50000

// DecodeMessage decodes data into a Tree. It returns (nil, false) only when
// the recursion depth cap is exceeded; on any other malformation (unknown
// wire type, tag 0, truncated field) it returns the fields parsed so far
// with ok=true, matching the "stop parsing without raising" policy.
func DecodeMessage(data []byte, depth int) (Tree, bool) {
	tree, _, ok := decodeMessage(data, depth, -1)
	return tree, ok
}

// decodeMessage is the recursive worker. endGroupField is the field number
// that terminates this call when a matching END_GROUP tag is read; -1 means
// "not inside a group". It returns the tree, the number of bytes of data it
// consumed, and whether the depth cap was respected.
func decodeMessage(data []byte, depth int, endGroupField int) (Tree, int, bool) {
	if depth > maxDepth {
		return nil, 0, false
	}

	tree := Tree{}
	pos := 0
	length := len(data)

decodeLoop:
	for pos < length {
		tagStart := pos
		tagVal, newPos := DecodeVarint(data, pos)
		if newPos > length {
			break
		}
		pos = newPos
		fieldNumber, wireType := DecodeTag(tagVal)

		if wireType == WireEndGroup {
			if endGroupField >= 0 && fieldNumber == endGroupField {
				return tree, pos, true
			}
			return tree, tagStart, true
		}

		if fieldNumber == 0 || fieldNumber > maxFieldNumber {
			break
		}

		var leaf Leaf

		switch wireType {
		case WireVarint:
			v, p := DecodeVarint(data, pos)
			pos = p
			leaf = Leaf{Kind: KindVarint, Varint: v}

		case WireFixed64:
			if pos+8 > length {
				break decodeLoop
			}
			var raw [8]byte
			copy(raw[:], data[pos:pos+8])
			pos += 8
			bits := binary.LittleEndian.Uint64(raw[:])
			leaf = Leaf{
				Kind:         KindFixed64,
				Fixed64Raw:   raw,
				Fixed64Int:   int64(bits),
				Fixed64Float: math.Float64frombits(bits),
			}

		case WireFixed32:
			if pos+4 > length {
				break decodeLoop
			}
			var raw [4]byte
			copy(raw[:], data[pos:pos+4])
			pos += 4
			bits := binary.LittleEndian.Uint32(raw[:])
			leaf = Leaf{
				Kind:         KindFixed32,
				Fixed32Raw:   raw,
				Fixed32Int:   int32(bits),
				Fixed32Float: math.Float32frombits(bits),
			}

		case WireLengthDelimited:
			subLen, p := DecodeVarint(data, pos)
			pos = p
			if subLen > uint64(length-pos) {
				break decodeLoop
			}
			payload := data[pos : pos+int(subLen)]
			pos += int(subLen)
			leaf = decodeLengthDelimited(payload, depth)

		case WireStartGroup:
			sub, consumed, ok := decodeMessage(data[pos:], depth+1, fieldNumber)
			if !ok {
				break decodeLoop
			}
			pos += consumed
			leaf = Leaf{Kind: KindGroup, Group: sub}

		default:
			break decodeLoop
		}

		tree[fieldNumber] = append(tree[fieldNumber], leaf)
	}

	return tree, pos, true
}

// decodeLengthDelimited resolves a length-delimited payload to a Message,
// String, or Bytes leaf, applying the "message wins over string" tie-break:
// a nested message parse is accepted only if it consumes every byte of the
// payload; otherwise a full, printable UTF-8 decode is tried; otherwise the
// payload is retained opaquely.
func decodeLengthDelimited(payload []byte, depth int) Leaf {
	if sub, consumed, ok := decodeMessage(payload, depth+1, -1); ok && consumed == len(payload) {
		return Leaf{Kind: KindMessage, Message: sub}
	}
	if s, ok := asPrintableString(payload); ok {
		return Leaf{Kind: KindString, Str: s}
	}
	return Leaf{Kind: KindBytes, Bytes: payload}
}

// asPrintableString requires the full payload to be valid UTF-8 and every
// rune to be printable or one of tab/newline/carriage-return/space.
func asPrintableString(payload []byte) (string, bool) {
	if !utf8.Valid(payload) {
		return "", false
	}
	s := string(payload)
	for _, r := range s {
		switch r {
		case '\t', '\n', '\r', ' ':
			continue
		}
		if !unicode.IsPrint(r) {
			return "", false
		}
	}
	return s, true
}
