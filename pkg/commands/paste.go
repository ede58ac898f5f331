package commands

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
	"github.com/annihilatorrrr/shotcut/pkg/logging"
	"github.com/annihilatorrrr/shotcut/pkg/model"
)

// PasteCommand merges a filter-set snapshot onto the target producer.
// The target's full chain is snapshotted at construction; undo strips
// every non-loader, non-hidden filter and restores that snapshot.
type PasteCommand struct {
	model    *model.AttachedFilters
	source   RootsProvider
	notifier Notifier
	uuid     uuid.UUID
	incoming string
	before   string
	text     string
}

// NewPasteCommand creates a command that pastes the filters described
// by the interchange document onto the model's producer. notifier may
// be nil.
func NewPasteCommand(m *model.AttachedFilters, source RootsProvider, filtersDoc string, notifier Notifier) (*PasteCommand, error) {
	producer := m.Producer()
	if !producer.IsValid() {
		return nil, fmt.Errorf("paste command: %w", ErrNoProducer)
	}
	before, err := graph.ExportChain(producer)
	if err != nil {
		return nil, fmt.Errorf("paste command: %w", err)
	}
	return &PasteCommand{
		model:    m,
		source:   source,
		notifier: notifier,
		uuid:     graph.EnsureUUID(producer),
		incoming: filtersDoc,
		before:   before,
		text:     "Paste filters",
	}, nil
}

func (c *PasteCommand) Text() string { return c.text }

func (c *PasteCommand) Redo() error {
	logging.Debug("redo", "text", c.text)
	producer, err := findProducer(c.source, c.uuid)
	if err != nil {
		return err
	}
	c.paste(producer, c.incoming)
	c.notify(producer)
	return nil
}

func (c *PasteCommand) Undo() error {
	logging.Debug("undo", "text", c.text)
	producer, err := findProducer(c.source, c.uuid)
	if err != nil {
		return err
	}
	// Remove all filters except engine-internal and hidden ones.
	for i := 0; i < producer.FilterCount(); i++ {
		f := producer.FilterAt(i)
		if f != nil && !f.IsLoader() && !f.IsHidden() {
			producer.DetachFilterAt(i)
			i--
		}
	}
	// Restore the "before" filters.
	c.paste(producer, c.before)
	c.notify(producer)
	return nil
}

// paste merges a snapshot onto the producer. A malformed or empty
// snapshot is nothing to do, not an error.
func (c *PasteCommand) paste(producer *graph.Producer, doc string) {
	filters, err := graph.ImportChain(doc)
	if err != nil {
		logging.Warn("discarding malformed filter snapshot", "error", err)
		return
	}
	if len(filters) > 0 {
		graph.PasteFilters(producer, filters)
	}
}

func (c *PasteCommand) notify(producer *graph.Producer) {
	if c.notifier != nil {
		c.notifier.FiltersPasted(producer)
	}
}

// TryMerge always declines; each paste is its own undo step.
func (c *PasteCommand) TryMerge(Command) bool { return false }
