package graph

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// ChainDigest returns a canonical fingerprint of a producer's filter
// chain: service names, disabled flags, and ordered properties, in
// attachment order. Two chains with the same digest are identical for
// editing purposes. Used to compare chain states across undo/redo.
func ChainDigest(p *Producer) [32]byte {
	h := blake3.New(32, nil)
	for i := 0; i < p.FilterCount(); i++ {
		f := p.FilterAt(i)
		h.Write([]byte(f.Service()))
		h.Write([]byte{0})
		if f.Disabled() {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
		for _, k := range f.Props().Keys() {
			h.Write([]byte(k))
			h.Write([]byte{0})
			h.Write([]byte(f.Props().Get(k)))
			h.Write([]byte{0})
		}
		h.Write([]byte{0xff})
	}
	var sum [32]byte
	h.Sum(sum[:0])
	return sum
}

// ChainDigestString returns the chain digest as a hex string.
func ChainDigestString(p *Producer) string {
	sum := ChainDigest(p)
	return hex.EncodeToString(sum[:])
}
