package commands

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
	"github.com/annihilatorrrr/shotcut/pkg/logging"
	"github.com/annihilatorrrr/shotcut/pkg/model"
)

// ParameterCommand captures a filter's properties before and after a
// parameter edit. The edit itself happens live before the command is
// constructed, so the first redo is a no-op; later redo/undo calls
// overwrite the live filter's properties with the after/before
// snapshot. Consecutive edits of the same parameter merge into one
// command by replacing the after snapshot.
type ParameterCommand struct {
	controller *model.FilterController
	source     RootsProvider
	uuid       uuid.UUID
	row        int
	before     *graph.Properties
	after      *graph.Properties
	firstRedo  bool
	text       string
}

// NewParameterCommand creates a command for a parameter edit on the
// filter at row. before is the property state prior to the edit; the
// after snapshot is read from the filter's current state, which is
// assumed to already reflect the edit.
func NewParameterCommand(name string, controller *model.FilterController, source RootsProvider, row int, before *graph.Properties, desc string) (*ParameterCommand, error) {
	m := controller.AttachedModel()
	producer := m.Producer()
	if !producer.IsValid() {
		return nil, fmt.Errorf("parameter command: %w", ErrNoProducer)
	}
	service := m.GetService(row)
	if service == nil {
		return nil, fmt.Errorf("parameter command row %d: %w", row, ErrNoService)
	}
	c := &ParameterCommand{
		controller: controller,
		source:     source,
		uuid:       graph.EnsureUUID(producer),
		row:        row,
		before:     graph.NewProperties(),
		after:      graph.NewProperties(),
		firstRedo:  true,
	}
	if desc == "" {
		c.text = fmt.Sprintf("Change %s filter", name)
	} else {
		c.text = fmt.Sprintf("Change %s filter: %s", name, desc)
	}
	c.before.Inherit(before)
	c.after.Inherit(service.Props())
	return c, nil
}

func (c *ParameterCommand) Text() string { return c.text }

// UpdateProperty re-captures one property's current value into the
// after snapshot. Called while the edit is still in progress, e.g. on
// each motion of a live-dragged slider.
func (c *ParameterCommand) UpdateProperty(name string) {
	service := c.controller.AttachedModel().GetService(c.row)
	if service != nil {
		c.after.PassProperty(service.Props(), name)
	}
}

func (c *ParameterCommand) Redo() error {
	logging.Debug("redo", "text", c.text)
	if c.firstRedo {
		// The edit was already applied live before construction.
		c.firstRedo = false
		return nil
	}
	return c.apply(c.after)
}

func (c *ParameterCommand) Undo() error {
	logging.Debug("undo", "text", c.text)
	return c.apply(c.before)
}

func (c *ParameterCommand) apply(snapshot *graph.Properties) error {
	producer, err := findProducer(c.source, c.uuid)
	if err != nil {
		return err
	}
	service := c.controller.AttachedModel().DoGetService(producer, c.row)
	if service == nil {
		return fmt.Errorf("parameter command row %d: %w", c.row, ErrNoService)
	}
	service.Props().Inherit(snapshot)
	c.controller.OnUndoOrRedo(service)
	return nil
}

func (c *ParameterCommand) TryMerge(other Command) bool {
	that, ok := other.(*ParameterCommand)
	if !ok {
		logging.Warn("invalid merge", "text", c.text)
		return false
	}
	logging.Debug("merge", "this filter", c.row, "that filter", that.row)
	if that.row != c.row || that.uuid != c.uuid || that.text != c.text {
		return false
	}
	c.after = that.after
	return true
}
