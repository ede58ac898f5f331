package graph

// Kind enumerates the producer types in the composition graph.
type Kind int

const (
	KindClip     Kind = iota // leaf media source
	KindChain                // source with attached link chain
	KindPlaylist             // ordered collection (track, bin)
	KindTractor              // multitrack composite (timeline)
)

func (k Kind) String() string {
	switch k {
	case KindClip:
		return "clip"
	case KindChain:
		return "chain"
	case KindPlaylist:
		return "playlist"
	case KindTractor:
		return "tractor"
	default:
		return "unknown"
	}
}

// Producer is an element of the composition graph: a clip, a chain, a
// playlist/bin, or a tractor (multitrack timeline). Producers are
// shared by pointer; the graph and any holder reference the same
// instance. A producer carries ordered filter attachments and an
// ordered property set, and container kinds hold child producers
// (playlist entries, tractor tracks).
type Producer struct {
	kind     Kind
	name     string
	props    *Properties
	filters  []*Filter
	children []*Producer
}

func newProducer(kind Kind, name string) *Producer {
	return &Producer{kind: kind, name: name, props: NewProperties()}
}

// NewClip creates a leaf clip producer.
func NewClip(name string) *Producer { return newProducer(KindClip, name) }

// NewChain creates a chain producer.
func NewChain(name string) *Producer { return newProducer(KindChain, name) }

// NewPlaylist creates a playlist (track or bin) producer.
func NewPlaylist(name string) *Producer { return newProducer(KindPlaylist, name) }

// NewTractor creates a tractor (multitrack timeline) producer.
func NewTractor(name string) *Producer { return newProducer(KindTractor, name) }

// IsValid reports whether the handle refers to a producer.
func (p *Producer) IsValid() bool {
	return p != nil
}

// Kind returns the producer kind.
func (p *Producer) Kind() Kind { return p.kind }

// Name returns the display name.
func (p *Producer) Name() string { return p.name }

// Props returns the producer's property set.
func (p *Producer) Props() *Properties { return p.props }

// ---------------------------------------------------------------------------
// Children
// ---------------------------------------------------------------------------

// ChildCount returns the number of child producers.
func (p *Producer) ChildCount() int {
	return len(p.children)
}

// Child returns the i-th child producer, or nil if out of range.
func (p *Producer) Child(i int) *Producer {
	if i < 0 || i >= len(p.children) {
		return nil
	}
	return p.children[i]
}

// AppendChild adds a child producer (a playlist entry or a tractor
// track). Leaf kinds accept children too; the locator treats every
// producer as both a match target and a container.
func (p *Producer) AppendChild(c *Producer) {
	p.children = append(p.children, c)
}

// RemoveChild detaches the i-th child and returns it, or nil.
func (p *Producer) RemoveChild(i int) *Producer {
	if i < 0 || i >= len(p.children) {
		return nil
	}
	c := p.children[i]
	p.children = append(p.children[:i], p.children[i+1:]...)
	return c
}

// ---------------------------------------------------------------------------
// Filter attachments
// ---------------------------------------------------------------------------

// FilterCount returns the number of attached filters.
func (p *Producer) FilterCount() int {
	return len(p.filters)
}

// FilterAt returns the filter at the attachment index, or nil.
func (p *Producer) FilterAt(i int) *Filter {
	if i < 0 || i >= len(p.filters) {
		return nil
	}
	return p.filters[i]
}

// AttachFilter appends a filter to the chain.
func (p *Producer) AttachFilter(f *Filter) {
	p.filters = append(p.filters, f)
}

// InsertFilter places a filter at the attachment index, shifting later
// filters up. An index at or past the end appends.
func (p *Producer) InsertFilter(f *Filter, i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(p.filters) {
		p.filters = append(p.filters, f)
		return
	}
	p.filters = append(p.filters[:i], append([]*Filter{f}, p.filters[i:]...)...)
}

// DetachFilterAt removes and returns the filter at the attachment
// index, or nil if out of range.
func (p *Producer) DetachFilterAt(i int) *Filter {
	if i < 0 || i >= len(p.filters) {
		return nil
	}
	f := p.filters[i]
	p.filters = append(p.filters[:i], p.filters[i+1:]...)
	return f
}

// MoveFilter relocates the filter at attachment index from to index
// to. Out-of-range indices are ignored.
func (p *Producer) MoveFilter(from, to int) {
	if from < 0 || from >= len(p.filters) || to < 0 || to >= len(p.filters) || from == to {
		return
	}
	f := p.filters[from]
	p.filters = append(p.filters[:from], p.filters[from+1:]...)
	p.filters = append(p.filters[:to], append([]*Filter{f}, p.filters[to:]...)...)
}
