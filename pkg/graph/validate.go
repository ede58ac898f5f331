package graph

import "fmt"

// Severity indicates whether a finding blocks editing or is advisory.
type Severity int

const (
	SeverityError   Severity = iota // structural invariant broken
	SeverityWarning                 // advisory
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding describes a single validation result.
type Finding struct {
	Producer *Producer // which producer has the problem (nil if graph-level)
	Message  string
	Severity Severity
}

func (f Finding) String() string {
	if f.Producer == nil {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("[%s] %s %q: %s", f.Severity, f.Producer.Kind(), f.Producer.Name(), f.Message)
}

// Validate runs structural checks over every root and returns the
// findings. An empty slice means the graph satisfies the invariants
// the undo subsystem relies on. Read-only; never mutates the graph.
func Validate(roots Roots) []Finding {
	var findings []Finding
	seen := make(map[string]*Producer)
	for _, root := range []*Producer{roots.Timeline, roots.Bin, roots.Clip} {
		if root.IsValid() {
			findings = append(findings, validateProducer(root, seen)...)
		}
	}
	return findings
}

func validateProducer(p *Producer, seen map[string]*Producer) []Finding {
	var findings []Finding

	if p.props.Has(uuidProperty) {
		raw := p.props.Get(uuidProperty)
		if _, ok := UUIDOf(p); !ok {
			findings = append(findings, Finding{
				Producer: p,
				Message:  fmt.Sprintf("malformed uuid property %q", raw),
				Severity: SeverityError,
			})
		} else if prev, dup := seen[raw]; dup && prev != p {
			findings = append(findings, Finding{
				Producer: p,
				Message:  fmt.Sprintf("duplicate uuid %s (also on %s %q)", raw, prev.Kind(), prev.Name()),
				Severity: SeverityError,
			})
		} else {
			seen[raw] = p
		}
	}

	// Loader filters are attached by the engine ahead of user filters;
	// one appearing after a user filter suggests a corrupted chain.
	sawUser := false
	for i := 0; i < p.FilterCount(); i++ {
		f := p.FilterAt(i)
		if f == nil {
			findings = append(findings, Finding{
				Producer: p,
				Message:  fmt.Sprintf("nil filter at attachment index %d", i),
				Severity: SeverityError,
			})
			continue
		}
		if f.IsLoader() {
			if sawUser {
				findings = append(findings, Finding{
					Producer: p,
					Message:  fmt.Sprintf("loader filter %q after user filters", f.Service()),
					Severity: SeverityWarning,
				})
			}
		} else if !f.IsHidden() {
			sawUser = true
		}
	}

	for i := 0; i < p.ChildCount(); i++ {
		c := p.Child(i)
		if c == nil {
			findings = append(findings, Finding{
				Producer: p,
				Message:  fmt.Sprintf("nil child at index %d", i),
				Severity: SeverityError,
			})
			continue
		}
		findings = append(findings, validateProducer(c, seen)...)
	}
	return findings
}
