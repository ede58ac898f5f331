package graph

import "github.com/google/uuid"

// Roots is the set of top-level search domains for producer lookup,
// in priority order: the active timeline, the bin of standalone
// clips, and the currently open clip. Only one root is expected to
// contain a given logical producer at a time.
type Roots struct {
	Timeline *Producer // active multitrack timeline
	Bin      *Producer // playlist of standalone project clips
	Clip     *Producer // currently open standalone clip
}

// Find returns the live producer carrying the logical identifier, or
// false if no root contains it. Each root is searched depth-first,
// pre-order, descending into every container kind; the first match
// aborts the traversal. Identifiers are globally unique so at most
// one match can exist. Cost is linear in the graph size on every
// call; re-scanning is deliberate, because caching a direct reference
// across edits risks operating on a stale instance after the engine
// recreates producers.
func Find(roots Roots, id uuid.UUID) (*Producer, bool) {
	if roots.Timeline.IsValid() {
		if p, ok := findIn(roots.Timeline, id); ok {
			return p, true
		}
	}
	if roots.Bin.IsValid() && roots.Bin.ChildCount() > 0 {
		if p, ok := findIn(roots.Bin, id); ok {
			return p, true
		}
	}
	if roots.Clip.IsValid() {
		if p, ok := findIn(roots.Clip, id); ok {
			return p, true
		}
	}
	return nil, false
}

func findIn(p *Producer, id uuid.UUID) (*Producer, bool) {
	if got, ok := UUIDOf(p); ok && got == id {
		return p, true
	}
	for i := 0; i < p.ChildCount(); i++ {
		if found, ok := findIn(p.Child(i), id); ok {
			return found, true
		}
	}
	return nil, false
}
