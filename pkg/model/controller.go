package model

import "github.com/annihilatorrrr/shotcut/pkg/graph"

// FilterController owns the attached-filters model and relays
// undo/redo notifications to whoever displays filter parameters.
type FilterController struct {
	model      *AttachedFilters
	onUndoRedo func(*graph.Filter)
}

// NewFilterController creates a controller over the given model.
func NewFilterController(m *AttachedFilters) *FilterController {
	return &FilterController{model: m}
}

// AttachedModel returns the controller's row model.
func (c *FilterController) AttachedModel() *AttachedFilters {
	return c.model
}

// SetUndoRedoObserver registers the callback invoked after a
// parameter command applies a snapshot to a filter.
func (c *FilterController) SetUndoRedoObserver(fn func(*graph.Filter)) {
	c.onUndoRedo = fn
}

// OnUndoOrRedo is called by parameter commands after they overwrite a
// filter's properties, so the UI re-reads the filter's state.
func (c *FilterController) OnUndoOrRedo(f *graph.Filter) {
	if c.onUndoRedo != nil {
		c.onUndoRedo(f)
	}
}
