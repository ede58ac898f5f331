// Package model implements the attached-filters row model and its
// controller: the mutation surface the edit commands drive. Rows
// address only user-visible filters; the model maps rows onto real
// attachment indices, skipping loader and hidden filters.
package model

import "github.com/annihilatorrrr/shotcut/pkg/graph"

// AttachedFilters is a row model over one producer's filter chain.
// The producer it fronts changes as the user selects clips; commands
// therefore pass the producer they resolved into the Do* methods
// rather than relying on the model's current one.
type AttachedFilters struct {
	producer *graph.Producer
}

// NewAttachedFilters creates a model fronting the given producer.
func NewAttachedFilters(p *graph.Producer) *AttachedFilters {
	return &AttachedFilters{producer: p}
}

// Producer returns the producer the model currently fronts.
func (m *AttachedFilters) Producer() *graph.Producer {
	return m.producer
}

// SetProducer switches the model to front another producer.
func (m *AttachedFilters) SetProducer(p *graph.Producer) {
	m.producer = p
}

// visible reports whether a filter occupies a row.
func visible(f *graph.Filter) bool {
	return f != nil && !f.IsLoader() && !f.IsHidden()
}

// RowCount returns the number of user-visible filters on a producer.
func RowCount(p *graph.Producer) int {
	n := 0
	for i := 0; i < p.FilterCount(); i++ {
		if visible(p.FilterAt(i)) {
			n++
		}
	}
	return n
}

// attachmentIndex maps a row to the attachment index of its occupant.
// A row equal to the visible count maps to the end of the chain (the
// insertion point for an append). Returns -1 for other invalid rows.
func attachmentIndex(p *graph.Producer, row int) int {
	if row < 0 {
		return -1
	}
	seen := 0
	for i := 0; i < p.FilterCount(); i++ {
		if visible(p.FilterAt(i)) {
			if seen == row {
				return i
			}
			seen++
		}
	}
	if row == seen {
		return p.FilterCount()
	}
	return -1
}

// GetService returns the filter at a row on the current producer.
func (m *AttachedFilters) GetService(row int) *graph.Filter {
	return m.DoGetService(m.producer, row)
}

// DoGetService returns the filter at a row on the given producer, or
// nil if the row is unoccupied.
func (m *AttachedFilters) DoGetService(p *graph.Producer, row int) *graph.Filter {
	if !p.IsValid() {
		return nil
	}
	i := attachmentIndex(p, row)
	if i < 0 || i >= p.FilterCount() {
		return nil
	}
	return p.FilterAt(i)
}

// DoAddService inserts a filter so it occupies the given row on the
// producer. A row past the last occupied one appends.
func (m *AttachedFilters) DoAddService(p *graph.Producer, f *graph.Filter, row int) {
	if !p.IsValid() || f == nil {
		return
	}
	i := attachmentIndex(p, row)
	if i < 0 {
		i = p.FilterCount()
	}
	p.InsertFilter(f, i)
}

// DoRemoveService detaches and returns the filter at a row, or nil.
func (m *AttachedFilters) DoRemoveService(p *graph.Producer, row int) *graph.Filter {
	if !p.IsValid() {
		return nil
	}
	i := attachmentIndex(p, row)
	if i < 0 || i >= p.FilterCount() {
		return nil
	}
	return p.DetachFilterAt(i)
}

// DoMoveService relocates the filter at row from to row to.
func (m *AttachedFilters) DoMoveService(p *graph.Producer, from, to int) {
	if !p.IsValid() {
		return
	}
	i := attachmentIndex(p, from)
	j := attachmentIndex(p, to)
	if i < 0 || i >= p.FilterCount() || j < 0 {
		return
	}
	if j >= p.FilterCount() {
		j = p.FilterCount() - 1
	}
	p.MoveFilter(i, j)
}

// DoSetDisabled sets the bypass flag of the filter at a row.
func (m *AttachedFilters) DoSetDisabled(p *graph.Producer, row int, disabled bool) {
	f := m.DoGetService(p, row)
	if f != nil {
		f.SetDisabled(disabled)
	}
}
