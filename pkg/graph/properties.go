package graph

import "strconv"

// Properties is an ordered string key/value store. Keys keep their
// insertion order; setting an existing key updates it in place. Order
// matters because snapshots and digests are compared entry by entry.
type Properties struct {
	keys []string
	vals map[string]string
}

// NewProperties creates an empty property set.
func NewProperties() *Properties {
	return &Properties{vals: make(map[string]string)}
}

// Len returns the number of entries.
func (p *Properties) Len() int {
	return len(p.keys)
}

// Keys returns the property names in insertion order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Has reports whether the named property exists.
func (p *Properties) Has(name string) bool {
	_, ok := p.vals[name]
	return ok
}

// Get returns the named property's value, or "" if unset.
func (p *Properties) Get(name string) string {
	return p.vals[name]
}

// GetInt returns the named property parsed as an integer, or 0.
func (p *Properties) GetInt(name string) int {
	n, _ := strconv.Atoi(p.vals[name])
	return n
}

// Set stores a property value. A new key is appended to the order; an
// existing key keeps its position.
func (p *Properties) Set(name, value string) {
	if p.vals == nil {
		p.vals = make(map[string]string)
	}
	if _, ok := p.vals[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.vals[name] = value
}

// SetInt stores an integer property value.
func (p *Properties) SetInt(name string, value int) {
	p.Set(name, strconv.Itoa(value))
}

// Delete removes the named property if present.
func (p *Properties) Delete(name string) {
	if _, ok := p.vals[name]; !ok {
		return
	}
	delete(p.vals, name)
	for i, k := range p.keys {
		if k == name {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Inherit copies every entry of other into p, overwriting values for
// keys that already exist. Keys only present in p are left alone.
func (p *Properties) Inherit(other *Properties) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		p.Set(k, other.vals[k])
	}
}

// PassProperty copies the single named entry from other into p. A key
// absent from other is ignored.
func (p *Properties) PassProperty(other *Properties, name string) {
	if other == nil {
		return
	}
	if v, ok := other.vals[name]; ok {
		p.Set(name, v)
	}
}

// Clone returns an independent copy with the same order and values.
func (p *Properties) Clone() *Properties {
	out := NewProperties()
	out.Inherit(p)
	return out
}
