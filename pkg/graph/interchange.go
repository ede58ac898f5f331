package graph

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The interchange format is a YAML document describing a filter chain.
// It is the clipboard/undo snapshot format for paste operations: a
// chain is exported before an edit, and re-imported to restore it.

type chainDoc struct {
	Filters []filterDoc `yaml:"filters"`
}

type filterDoc struct {
	Service    string        `yaml:"service"`
	Disabled   bool          `yaml:"disabled,omitempty"`
	Properties []propertyDoc `yaml:"properties,omitempty"`
}

type propertyDoc struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func filterToDoc(f *Filter) filterDoc {
	doc := filterDoc{Service: f.Service(), Disabled: f.Disabled()}
	for _, k := range f.Props().Keys() {
		if k == serviceProperty {
			continue
		}
		doc.Properties = append(doc.Properties, propertyDoc{Name: k, Value: f.Props().Get(k)})
	}
	return doc
}

func filterFromDoc(doc filterDoc) *Filter {
	f := NewFilter(doc.Service)
	f.SetDisabled(doc.Disabled)
	for _, p := range doc.Properties {
		f.Props().Set(p.Name, p.Value)
	}
	return f
}

// ExportChain serializes a producer's full filter chain, loader and
// hidden filters included, to the interchange format.
func ExportChain(p *Producer) (string, error) {
	if !p.IsValid() {
		return "", fmt.Errorf("export chain: invalid producer")
	}
	var doc chainDoc
	for i := 0; i < p.FilterCount(); i++ {
		doc.Filters = append(doc.Filters, filterToDoc(p.FilterAt(i)))
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("export chain: %w", err)
	}
	return string(out), nil
}

// ImportChain deserializes an interchange document into filters. A
// malformed document is an error; an empty or filterless document
// yields zero filters, which callers treat as nothing to do.
func ImportChain(text string) ([]*Filter, error) {
	var doc chainDoc
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("import chain: %w", err)
	}
	filters := make([]*Filter, 0, len(doc.Filters))
	for _, fd := range doc.Filters {
		filters = append(filters, filterFromDoc(fd))
	}
	return filters, nil
}

// PasteFilters merges imported filters onto the target producer.
// Incoming loader and hidden filters are skipped; the rest are
// appended to the chain in order as independent copies.
func PasteFilters(target *Producer, filters []*Filter) {
	for _, f := range filters {
		if f.IsLoader() || f.IsHidden() {
			continue
		}
		target.AttachFilter(f.Clone())
	}
}

// AdjustFilters runs the post-insert normalization pass over filters
// from the given attachment index onward, clamping each filter's
// in/out span to the producer's.
func AdjustFilters(p *Producer, from int) {
	if !p.props.Has("out") {
		return
	}
	in := p.props.GetInt("in")
	out := p.props.GetInt("out")
	for i := from; i < p.FilterCount(); i++ {
		f := p.FilterAt(i)
		f.Props().SetInt("in", in)
		f.Props().SetInt("out", out)
	}
}
