package commands

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
	"github.com/annihilatorrrr/shotcut/pkg/logging"
	"github.com/annihilatorrrr/shotcut/pkg/model"
)

// RemoveCommand detaches the filter at one row. Undo re-inserts the
// detached filter at the same row.
type RemoveCommand struct {
	model    *model.AttachedFilters
	source   RootsProvider
	producer *graph.Producer
	uuid     uuid.UUID
	row      int
	service  *graph.Filter
	text     string
}

// NewRemoveCommand creates a command that removes the filter at row.
func NewRemoveCommand(m *model.AttachedFilters, source RootsProvider, name string, service *graph.Filter, row int) (*RemoveCommand, error) {
	producer := m.Producer()
	if !producer.IsValid() {
		return nil, fmt.Errorf("remove command: %w", ErrNoProducer)
	}
	return &RemoveCommand{
		model:    m,
		source:   source,
		producer: producer,
		uuid:     graph.EnsureUUID(producer),
		row:      row,
		service:  service,
		text:     fmt.Sprintf("Remove %s filter", name),
	}, nil
}

func (c *RemoveCommand) Text() string { return c.text }

func (c *RemoveCommand) Redo() error {
	logging.Debug("redo", "text", c.text, "row", c.row)
	producer := c.producer
	if !producer.IsValid() {
		var err error
		producer, err = findProducer(c.source, c.uuid)
		if err != nil {
			return err
		}
	}
	c.model.DoRemoveService(producer, c.row)
	// Only hold the producer reference for the first redo and look up
	// by UUID thereafter.
	c.producer = nil
	return nil
}

func (c *RemoveCommand) Undo() error {
	logging.Debug("undo", "text", c.text, "row", c.row)
	if c.service == nil {
		return fmt.Errorf("remove command: %w", ErrNoService)
	}
	producer, err := findProducer(c.source, c.uuid)
	if err != nil {
		return err
	}
	c.model.DoAddService(producer, c.service, c.row)
	return nil
}

// TryMerge always declines; removals stay individual undo steps.
func (c *RemoveCommand) TryMerge(Command) bool { return false }
