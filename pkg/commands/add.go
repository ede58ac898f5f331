package commands

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
	"github.com/annihilatorrrr/shotcut/pkg/logging"
	"github.com/annihilatorrrr/shotcut/pkg/model"
)

// AddType distinguishes a lone filter add from members of a filter
// set added as one user action.
type AddType int

const (
	AddSingle  AddType = iota // one filter on its own
	AddSet                    // member of a set, more to come
	AddSetLast                // final member; triggers the adjust pass
)

// AddCommand inserts one or more filters. Set members are merged into
// a single command as they are pushed, so one undo removes the whole
// set.
type AddCommand struct {
	model    *model.AttachedFilters
	source   RootsProvider
	producer *graph.Producer
	uuid     uuid.UUID
	addType  AddType
	rows     []int
	services []*graph.Filter
	text     string
}

// NewAddCommand creates a command that inserts service at row.
func NewAddCommand(m *model.AttachedFilters, source RootsProvider, name string, service *graph.Filter, row int, addType AddType) (*AddCommand, error) {
	producer := m.Producer()
	if !producer.IsValid() {
		return nil, fmt.Errorf("add command: %w", ErrNoProducer)
	}
	c := &AddCommand{
		model:    m,
		source:   source,
		producer: producer,
		uuid:     graph.EnsureUUID(producer),
		addType:  addType,
	}
	if addType == AddSingle {
		c.text = fmt.Sprintf("Add %s filter", name)
	} else {
		c.text = fmt.Sprintf("Add %s filter set", name)
	}
	c.rows = append(c.rows, row)
	c.services = append(c.services, service)
	return c, nil
}

func (c *AddCommand) Text() string { return c.text }

func (c *AddCommand) Redo() error {
	logging.Debug("redo", "text", c.text, "row", c.rows[0])
	producer := c.producer
	if !producer.IsValid() {
		var err error
		producer, err = findProducer(c.source, c.uuid)
		if err != nil {
			return err
		}
	}
	adjustFrom := producer.FilterCount()
	for i := range c.rows {
		c.model.DoAddService(producer, c.services[i], c.rows[i])
	}
	if c.addType == AddSetLast {
		graph.AdjustFilters(producer, adjustFrom)
	}
	// Only hold the producer reference for the first redo and look up
	// by UUID thereafter.
	c.producer = nil
	return nil
}

func (c *AddCommand) Undo() error {
	logging.Debug("undo", "text", c.text, "row", c.rows[0])
	producer, err := findProducer(c.source, c.uuid)
	if err != nil {
		return err
	}
	// Remove the services in reverse order.
	for i := len(c.rows) - 1; i >= 0; i-- {
		c.model.DoRemoveService(producer, c.rows[i])
	}
	return nil
}

func (c *AddCommand) TryMerge(other Command) bool {
	that, ok := other.(*AddCommand)
	if !ok || that.uuid != c.uuid {
		logging.Warn("invalid merge", "text", c.text)
		return false
	}
	if c.addType != AddSet || (that.addType != AddSet && that.addType != AddSetLast) {
		// Only merge services from the same filter set.
		return false
	}
	c.addType = that.addType
	c.rows = append(c.rows, that.rows[0])
	c.services = append(c.services, that.services[0])
	return true
}
