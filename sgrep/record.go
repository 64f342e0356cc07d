package sgrep

import "github.com/sgreplay/sgreplay/wire"

// Record is one length-prefixed payload from the decompressed body (or the
// footer region), decoded into a message tree.
type Record struct {
	Raw  []byte    `json:"-"`
	Tree wire.Tree `json:"-"`
}
