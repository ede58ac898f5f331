package model

import (
	"testing"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
)

// chainWithInternal returns a producer whose chain is:
//
//	[0] loader (no row)
//	[1] volume (row 0)
//	[2] hidden (no row)
//	[3] crop   (row 1)
func chainWithInternal() *graph.Producer {
	p := graph.NewClip("c")
	loader := graph.NewFilter("avformat")
	loader.SetLoader(true)
	p.AttachFilter(loader)
	p.AttachFilter(graph.NewFilter("volume"))
	hidden := graph.NewFilter("fade")
	hidden.SetHidden(true)
	p.AttachFilter(hidden)
	p.AttachFilter(graph.NewFilter("crop"))
	return p
}

func TestRowCount(t *testing.T) {
	p := chainWithInternal()
	if got := RowCount(p); got != 2 {
		t.Errorf("row count = %d, want 2", got)
	}
}

func TestGetServiceSkipsInternal(t *testing.T) {
	p := chainWithInternal()
	m := NewAttachedFilters(p)
	if got := m.GetService(0); got == nil || got.Service() != "volume" {
		t.Error("row 0 should be volume")
	}
	if got := m.GetService(1); got == nil || got.Service() != "crop" {
		t.Error("row 1 should be crop")
	}
	if m.GetService(2) != nil {
		t.Error("row 2 should be empty")
	}
	if m.GetService(-1) != nil {
		t.Error("negative row should be empty")
	}
}

func TestDoAddServiceAtRow(t *testing.T) {
	p := chainWithInternal()
	m := NewAttachedFilters(p)
	m.DoAddService(p, graph.NewFilter("sharpen"), 1)
	// The new filter takes row 1, landing before crop in the chain.
	if got := m.GetService(1); got == nil || got.Service() != "sharpen" {
		t.Error("insert did not land at row 1")
	}
	if got := m.GetService(2); got == nil || got.Service() != "crop" {
		t.Error("crop should shift to row 2")
	}
	if p.FilterAt(0).Service() != "avformat" {
		t.Error("loader should stay in front")
	}
}

func TestDoAddServiceAppend(t *testing.T) {
	p := chainWithInternal()
	m := NewAttachedFilters(p)
	m.DoAddService(p, graph.NewFilter("sharpen"), 2)
	if got := m.GetService(2); got == nil || got.Service() != "sharpen" {
		t.Error("append row should land at the end")
	}
}

func TestDoRemoveService(t *testing.T) {
	p := chainWithInternal()
	m := NewAttachedFilters(p)
	got := m.DoRemoveService(p, 0)
	if got == nil || got.Service() != "volume" {
		t.Fatal("removed wrong filter")
	}
	if RowCount(p) != 1 {
		t.Errorf("row count = %d, want 1", RowCount(p))
	}
	if m.DoRemoveService(p, 5) != nil {
		t.Error("invalid row should remove nothing")
	}
}

func TestDoMoveService(t *testing.T) {
	p := chainWithInternal()
	m := NewAttachedFilters(p)
	m.DoMoveService(p, 0, 1)
	if m.GetService(0).Service() != "crop" || m.GetService(1).Service() != "volume" {
		t.Error("move did not swap rows")
	}
	// Internal filters keep their attachment positions.
	if !p.FilterAt(0).IsLoader() {
		t.Error("loader moved")
	}
}

func TestDoSetDisabled(t *testing.T) {
	p := chainWithInternal()
	m := NewAttachedFilters(p)
	m.DoSetDisabled(p, 1, true)
	if !m.GetService(1).Disabled() {
		t.Error("row 1 should be disabled")
	}
	m.DoSetDisabled(p, 1, false)
	if m.GetService(1).Disabled() {
		t.Error("row 1 should be enabled")
	}
	m.DoSetDisabled(p, 9, true) // no-op
}

func TestSetProducer(t *testing.T) {
	m := NewAttachedFilters(nil)
	if m.GetService(0) != nil {
		t.Error("model without a producer should have no rows")
	}
	p := chainWithInternal()
	m.SetProducer(p)
	if m.Producer() != p {
		t.Error("producer not switched")
	}
}

func TestControllerObserver(t *testing.T) {
	p := chainWithInternal()
	m := NewAttachedFilters(p)
	c := NewFilterController(m)
	if c.AttachedModel() != m {
		t.Fatal("controller lost its model")
	}

	var seen *graph.Filter
	c.SetUndoRedoObserver(func(f *graph.Filter) { seen = f })
	f := m.GetService(0)
	c.OnUndoOrRedo(f)
	if seen != f {
		t.Error("observer not invoked")
	}

	// No observer registered is fine.
	c.SetUndoRedoObserver(nil)
	c.OnUndoOrRedo(f)
}
