// This file renders a decoded Tree into a JSON-marshalable shape for
// export, labeling each leaf's Kind explicitly and giving callers control
// over whether opaque Bytes leaves carry a hex preview (they can be large,
// and are rarely useful past a few dozen bytes).

package wire

import (
	"encoding/hex"
	"strconv"
)

// RenderOptions controls how opaque leaves are rendered. It carries no
// package-level state: every call takes its own options, so concurrent
// renders of independent parses never interfere.
type RenderOptions struct {
	// IncludeBytes attaches a hex preview to Bytes leaves. When false,
	// only the byte length is reported.
	IncludeBytes bool

	// BytesHexLimit caps the preview length. Zero means unlimited.
	BytesHexLimit int
}

// Render converts t into a tree of generic JSON values keyed by the
// decimal string form of each field number, suitable for
// encoding/json.Marshal.
func (t Tree) Render(opts RenderOptions) map[string]any {
	out := make(map[string]any, len(t))
	for tag, leaves := range t {
		key := strconv.Itoa(tag)
		if len(leaves) == 1 {
			out[key] = leaves[0].render(opts)
			continue
		}
		values := make([]any, len(leaves))
		for i, leaf := range leaves {
			values[i] = leaf.render(opts)
		}
		out[key] = values
	}
	return out
}

func (l Leaf) render(opts RenderOptions) any {
	switch l.Kind {
	case KindVarint:
		return map[string]any{"kind": "varint", "value": l.Varint}
	case KindFixed64:
		return map[string]any{"kind": "fixed64", "int64": l.Fixed64Int, "float64": l.Fixed64Float}
	case KindFixed32:
		return map[string]any{"kind": "fixed32", "int32": l.Fixed32Int, "float32": l.Fixed32Float}
	case KindString:
		return map[string]any{"kind": "string", "value": l.Str}
	case KindMessage:
		return map[string]any{"kind": "message", "value": l.Message.Render(opts)}
	case KindGroup:
		return map[string]any{"kind": "group", "value": l.Group.Render(opts)}
	case KindBytes:
		rendered := map[string]any{"kind": "bytes", "len": len(l.Bytes)}
		if opts.IncludeBytes {
			preview := l.Bytes
			if opts.BytesHexLimit > 0 && len(preview) > opts.BytesHexLimit {
				preview = preview[:opts.BytesHexLimit]
			}
			rendered["hex"] = hex.EncodeToString(preview)
		}
		return rendered
	default:
		return nil
	}
}
