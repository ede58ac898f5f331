package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
)

func TestAddCommandRoundTrip(t *testing.T) {
	r, m, clip := newRig(t)
	clip.AttachFilter(graph.NewFilter("volume"))
	clip.AttachFilter(graph.NewFilter("crop"))
	before := graph.ChainDigest(clip)

	sharpen := graph.NewFilter("sharpen")
	cmd, err := NewAddCommand(m, r, "sharpen", sharpen, 2, AddSingle)
	require.NoError(t, err)
	assert.Equal(t, "Add sharpen filter", cmd.Text())

	require.NoError(t, cmd.Redo())
	require.Equal(t, []string{"volume", "crop", "sharpen"}, services(clip))
	after := graph.ChainDigest(clip)

	require.NoError(t, cmd.Undo())
	assert.Equal(t, before, graph.ChainDigest(clip), "undo must restore the pre-add state")

	require.NoError(t, cmd.Redo())
	assert.Equal(t, after, graph.ChainDigest(clip), "redo must restore the post-add state")
}

func TestAddCommandResolvesReplacedInstance(t *testing.T) {
	r, m, clip := newRig(t)
	clip.AttachFilter(graph.NewFilter("volume"))
	clip.AttachFilter(graph.NewFilter("crop"))

	cmd, err := NewAddCommand(m, r, "sharpen", graph.NewFilter("sharpen"), 2, AddSingle)
	require.NoError(t, err)
	require.NoError(t, cmd.Redo())
	require.NoError(t, cmd.Undo())

	// The clip instance is recreated between undo and redo. The model
	// still fronts the stale instance; the command must apply to the
	// live one found by uuid.
	replacement := r.replaceClip()
	require.NoError(t, cmd.Redo())
	assert.Equal(t, []string{"volume", "crop", "sharpen"}, services(replacement))
	assert.Equal(t, []string{"volume", "crop"}, services(clip), "stale instance must be untouched")
}

func TestAddCommandSetMerge(t *testing.T) {
	r, m, clip := newRig(t)
	clip.Props().SetInt("out", 100)

	first, err := NewAddCommand(m, r, "glow", graph.NewFilter("glow"), 0, AddSet)
	require.NoError(t, err)
	assert.Equal(t, "Add glow filter set", first.Text())
	require.NoError(t, first.Redo())

	second, err := NewAddCommand(m, r, "glow", graph.NewFilter("blur"), 1, AddSet)
	require.NoError(t, err)
	require.NoError(t, second.Redo())
	require.True(t, first.TryMerge(second))

	last, err := NewAddCommand(m, r, "glow", graph.NewFilter("grain"), 2, AddSetLast)
	require.NoError(t, err)
	require.NoError(t, last.Redo())
	require.True(t, first.TryMerge(last), "a set-last member finalizes the set")

	require.Equal(t, []string{"glow", "blur", "grain"}, services(clip))

	// One undo removes the whole merged set.
	require.NoError(t, first.Undo())
	assert.Zero(t, clip.FilterCount())

	// One redo reapplies every insertion in call order, then runs the
	// adjustment pass once over all of them.
	require.NoError(t, first.Redo())
	assert.Equal(t, []string{"glow", "blur", "grain"}, services(clip))
	for i := 0; i < clip.FilterCount(); i++ {
		assert.Equal(t, 100, clip.FilterAt(i).Props().GetInt("out"), "filter %d not adjusted", i)
	}
}

func TestAddCommandMergeRejectsSingles(t *testing.T) {
	r, m, clip := newRig(t)

	set, err := NewAddCommand(m, r, "glow", graph.NewFilter("glow"), 0, AddSet)
	require.NoError(t, err)
	require.NoError(t, set.Redo())

	single, err := NewAddCommand(m, r, "crop", graph.NewFilter("crop"), 1, AddSingle)
	require.NoError(t, err)
	require.NoError(t, single.Redo())

	assert.False(t, set.TryMerge(single), "a single add must not join a set")
	assert.Equal(t, []string{"glow", "crop"}, services(clip))

	lone, err := NewAddCommand(m, r, "a", graph.NewFilter("a"), 2, AddSingle)
	require.NoError(t, err)
	other, err := NewAddCommand(m, r, "b", graph.NewFilter("b"), 3, AddSet)
	require.NoError(t, err)
	assert.False(t, lone.TryMerge(other), "a single add never absorbs anything")
}

func TestAddCommandMergeRejectsOtherKindsAndTargets(t *testing.T) {
	r, m, clip := newRig(t)
	clip.AttachFilter(graph.NewFilter("volume"))

	set, err := NewAddCommand(m, r, "glow", graph.NewFilter("glow"), 1, AddSet)
	require.NoError(t, err)
	require.NoError(t, set.Redo())

	move, err := NewMoveCommand(m, r, "volume", 0, 1)
	require.NoError(t, err)
	assert.False(t, set.TryMerge(move), "cross-kind merge must be rejected")

	// Same kind, different target producer.
	otherClip := graph.NewClip("clip2")
	r.track().AppendChild(otherClip)
	m.SetProducer(otherClip)
	otherAdd, err := NewAddCommand(m, r, "glow", graph.NewFilter("glow"), 0, AddSet)
	require.NoError(t, err)
	assert.False(t, set.TryMerge(otherAdd))
}
