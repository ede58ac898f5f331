package commands

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
	"github.com/annihilatorrrr/shotcut/pkg/logging"
	"github.com/annihilatorrrr/shotcut/pkg/model"
)

// MoveCommand relocates a filter between rows. Undo moves it back.
type MoveCommand struct {
	model    *model.AttachedFilters
	source   RootsProvider
	producer *graph.Producer
	uuid     uuid.UUID
	fromRow  int
	toRow    int
	text     string
}

// NewMoveCommand creates a command that moves a filter between rows.
func NewMoveCommand(m *model.AttachedFilters, source RootsProvider, name string, fromRow, toRow int) (*MoveCommand, error) {
	producer := m.Producer()
	if !producer.IsValid() {
		return nil, fmt.Errorf("move command: %w", ErrNoProducer)
	}
	return &MoveCommand{
		model:    m,
		source:   source,
		producer: producer,
		uuid:     graph.EnsureUUID(producer),
		fromRow:  fromRow,
		toRow:    toRow,
		text:     fmt.Sprintf("Move %s filter", name),
	}, nil
}

func (c *MoveCommand) Text() string { return c.text }

func (c *MoveCommand) Redo() error {
	logging.Debug("redo", "text", c.text, "from", c.fromRow, "to", c.toRow)
	producer := c.producer
	if !producer.IsValid() {
		var err error
		producer, err = findProducer(c.source, c.uuid)
		if err != nil {
			return err
		}
	}
	c.model.DoMoveService(producer, c.fromRow, c.toRow)
	// Only hold the producer reference for the first redo and look up
	// by UUID thereafter.
	c.producer = nil
	return nil
}

func (c *MoveCommand) Undo() error {
	logging.Debug("undo", "text", c.text, "from", c.toRow, "to", c.fromRow)
	producer, err := findProducer(c.source, c.uuid)
	if err != nil {
		return err
	}
	c.model.DoMoveService(producer, c.toRow, c.fromRow)
	return nil
}

// TryMerge always declines; moves stay individual undo steps.
func (c *MoveCommand) TryMerge(Command) bool { return false }
