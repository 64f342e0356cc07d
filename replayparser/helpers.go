package replayparser

import (
	"github.com/sgreplay/sgreplay/sgrep"
	"github.com/sgreplay/sgreplay/wire"
)

func asUint64(v any) (uint64, bool) {
	u, ok := v.(uint64)
	return u, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asSignedFixed interprets v as a signed fixed-point coordinate component.
// It accepts a bare varint (reinterpreted as signed) or a raw fixed64
// leaf, matching the wire format's two ways of encoding a coordinate half.
func asSignedFixed(v any) (int64, bool) {
	switch x := v.(type) {
	case uint64:
		return sgrep.U64ToI64(x), true
	case wire.Leaf:
		if x.Kind == wire.KindFixed64 {
			return x.Fixed64Int, true
		}
	}
	return 0, false
}
