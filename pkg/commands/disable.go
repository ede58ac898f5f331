package commands

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
	"github.com/annihilatorrrr/shotcut/pkg/logging"
	"github.com/annihilatorrrr/shotcut/pkg/model"
)

// DisableCommand sets a filter's bypass flag. Undo restores the prior
// value.
type DisableCommand struct {
	model    *model.AttachedFilters
	source   RootsProvider
	producer *graph.Producer
	uuid     uuid.UUID
	row      int
	disabled bool
	text     string
}

// NewDisableCommand creates a command that sets the bypass flag of
// the filter at row.
func NewDisableCommand(m *model.AttachedFilters, source RootsProvider, name string, row int, disabled bool) (*DisableCommand, error) {
	producer := m.Producer()
	if !producer.IsValid() {
		return nil, fmt.Errorf("disable command: %w", ErrNoProducer)
	}
	c := &DisableCommand{
		model:    m,
		source:   source,
		producer: producer,
		uuid:     graph.EnsureUUID(producer),
		row:      row,
		disabled: disabled,
	}
	if disabled {
		c.text = fmt.Sprintf("Disable %s filter", name)
	} else {
		c.text = fmt.Sprintf("Enable %s filter", name)
	}
	return c, nil
}

func (c *DisableCommand) Text() string { return c.text }

func (c *DisableCommand) Redo() error {
	logging.Debug("redo", "text", c.text, "row", c.row)
	producer := c.producer
	if !producer.IsValid() {
		var err error
		producer, err = findProducer(c.source, c.uuid)
		if err != nil {
			return err
		}
	}
	c.model.DoSetDisabled(producer, c.row, c.disabled)
	// Only hold the producer reference for the first redo and look up
	// by UUID thereafter.
	c.producer = nil
	return nil
}

func (c *DisableCommand) Undo() error {
	logging.Debug("undo", "text", c.text, "row", c.row)
	producer, err := findProducer(c.source, c.uuid)
	if err != nil {
		return err
	}
	c.model.DoSetDisabled(producer, c.row, !c.disabled)
	return nil
}

// TryMerge always declines. Merging toggles does not provide expected
// results: toggle twice, undo, and you get the opposite of the
// original state. Merging three toggles in a row would make sense,
// but not two. Not implemented for now.
func (c *DisableCommand) TryMerge(Command) bool {
	return false
}
