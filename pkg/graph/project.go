package graph

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// A project document is a YAML description of a roots set. It exists
// for tooling and fixtures; it is not the engine's project format.

type projectDoc struct {
	Timeline *producerDoc `yaml:"timeline,omitempty"`
	Bin      *producerDoc `yaml:"bin,omitempty"`
	Clip     *producerDoc `yaml:"clip,omitempty"`
}

type producerDoc struct {
	Kind       string        `yaml:"kind"`
	Name       string        `yaml:"name,omitempty"`
	Properties []propertyDoc `yaml:"properties,omitempty"`
	Filters    []filterDoc   `yaml:"filters,omitempty"`
	Children   []producerDoc `yaml:"children,omitempty"`
}

func kindFromString(s string) (Kind, error) {
	switch s {
	case "clip":
		return KindClip, nil
	case "chain":
		return KindChain, nil
	case "playlist":
		return KindPlaylist, nil
	case "tractor":
		return KindTractor, nil
	default:
		return 0, fmt.Errorf("unknown producer kind %q", s)
	}
}

func producerFromDoc(doc producerDoc) (*Producer, error) {
	kind, err := kindFromString(doc.Kind)
	if err != nil {
		return nil, err
	}
	p := newProducer(kind, doc.Name)
	for _, prop := range doc.Properties {
		p.props.Set(prop.Name, prop.Value)
	}
	for _, fd := range doc.Filters {
		p.AttachFilter(filterFromDoc(fd))
	}
	for _, cd := range doc.Children {
		c, err := producerFromDoc(cd)
		if err != nil {
			return nil, err
		}
		p.AppendChild(c)
	}
	return p, nil
}

func producerToDoc(p *Producer) *producerDoc {
	doc := &producerDoc{Kind: p.Kind().String(), Name: p.Name()}
	for _, k := range p.props.Keys() {
		doc.Properties = append(doc.Properties, propertyDoc{Name: k, Value: p.props.Get(k)})
	}
	for i := 0; i < p.FilterCount(); i++ {
		doc.Filters = append(doc.Filters, filterToDoc(p.FilterAt(i)))
	}
	for i := 0; i < p.ChildCount(); i++ {
		cd := producerToDoc(p.Child(i))
		doc.Children = append(doc.Children, *cd)
	}
	return doc
}

// LoadProject reads a project document and builds its roots set.
func LoadProject(r io.Reader) (Roots, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Roots{}, fmt.Errorf("load project: %w", err)
	}
	var doc projectDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Roots{}, fmt.Errorf("load project: %w", err)
	}
	var roots Roots
	if doc.Timeline != nil {
		if roots.Timeline, err = producerFromDoc(*doc.Timeline); err != nil {
			return Roots{}, fmt.Errorf("load project timeline: %w", err)
		}
	}
	if doc.Bin != nil {
		if roots.Bin, err = producerFromDoc(*doc.Bin); err != nil {
			return Roots{}, fmt.Errorf("load project bin: %w", err)
		}
	}
	if doc.Clip != nil {
		if roots.Clip, err = producerFromDoc(*doc.Clip); err != nil {
			return Roots{}, fmt.Errorf("load project clip: %w", err)
		}
	}
	return roots, nil
}

// SaveProject writes a roots set as a project document.
func SaveProject(w io.Writer, roots Roots) error {
	var doc projectDoc
	if roots.Timeline.IsValid() {
		doc.Timeline = producerToDoc(roots.Timeline)
	}
	if roots.Bin.IsValid() {
		doc.Bin = producerToDoc(roots.Bin)
	}
	if roots.Clip.IsValid() {
		doc.Clip = producerToDoc(roots.Clip)
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}
