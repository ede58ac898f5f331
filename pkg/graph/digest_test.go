package graph

import "testing"

func TestChainDigest(t *testing.T) {
	build := func() *Producer {
		p := NewClip("c")
		a := NewFilter("volume")
		a.Props().Set("level", "-6")
		p.AttachFilter(a)
		p.AttachFilter(NewFilter("crop"))
		return p
	}
	a, b := build(), build()
	if ChainDigest(a) != ChainDigest(b) {
		t.Error("identical chains should have identical digests")
	}

	b.FilterAt(0).SetDisabled(true)
	if ChainDigest(a) == ChainDigest(b) {
		t.Error("disabled flag should change the digest")
	}

	c := build()
	c.MoveFilter(0, 1)
	if ChainDigest(a) == ChainDigest(c) {
		t.Error("attachment order should change the digest")
	}
}

func TestChainDigestString(t *testing.T) {
	p := NewClip("c")
	s := ChainDigestString(p)
	if len(s) != 64 {
		t.Errorf("digest string length = %d, want 64", len(s))
	}
}
