// This file contains the tree navigator: resolving a path of field numbers
// to a terminal value, or to a subtree.

package wire

// Get resolves path against t, descending through Message leaves and
// returning the value of the leaf selected by the last step.
// Only the first leaf under each field number is considered, matching the
// source's "first entry wins" path resolution. It returns nil if any step
// of the path is missing, including a step below a non-message leaf. For Varint and String leaves the underlying Go
// value (uint64 / string) is returned; for Fixed64, Fixed32, Bytes and
// Group leaves the Leaf itself is returned so the caller can pick the
// representation it needs (e.g. the raw fixed64 bytes for a coordinate).
func Get(t Tree, path ...int) any {
	current := t
	for i, p := range path {
		leaves, ok := current[p]
		if !ok || len(leaves) == 0 {
			return nil
		}
		leaf := leaves[0]
		if leaf.Kind == KindMessage {
			current = leaf.Message
			if i == len(path)-1 {
				return current
			}
			continue
		}
		if i < len(path)-1 {
			return nil
		}
		switch leaf.Kind {
		case KindVarint:
			return leaf.Varint
		case KindString:
			return leaf.Str
		default:
			return leaf
		}
	}
	return current
}

// GetTree resolves path against t, requiring every leaf along the path
// (including the last) to be a Message. It returns the final subtree, or
// (nil, false) if the path does not fully resolve to a message.
func GetTree(t Tree, path ...int) (Tree, bool) {
	current := t
	for _, p := range path {
		leaves, ok := current[p]
		if !ok || len(leaves) == 0 {
			return nil, false
		}
		leaf := leaves[0]
		if leaf.Kind != KindMessage {
			return nil, false
		}
		current = leaf.Message
	}
	return current, true
}

// All returns every leaf stored under field number tag, or nil if absent.
func All(t Tree, tag int) []Leaf {
	return t[tag]
}
