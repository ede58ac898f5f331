// Package commands implements the reversible filter-chain edits:
// add, remove, move, disable, paste, and parameter change. A command
// stores the logical UUID of its target producer, not a live
// reference; every apply or reverse after the first resolves the
// current live instance by searching the graph roots, so edits keep
// working after the engine replaces the producer's in-memory
// instance.
package commands

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/annihilatorrrr/shotcut/pkg/graph"
)

// ErrTargetNotFound means a command's target producer could not be
// resolved in any root. This is a broken precondition: commands must
// not outlive their target's logical existence. Callers treat it as
// fatal and must not retry or partially apply.
var ErrTargetNotFound = errors.New("target producer not found")

// ErrNoProducer means a command was constructed against a model with
// no valid producer.
var ErrNoProducer = errors.New("no producer")

// ErrNoService means a command was constructed against a row with no
// filter on it.
var ErrNoService = errors.New("no filter at row")

// Command is one reversible edit. Redo applies it, Undo reverses it;
// both may be called any number of times after the history container
// sequences the first Redo. TryMerge lets a command absorb a
// newly created command of the same kind so rapid micro-edits
// collapse into one undo step; it reports whether it did.
type Command interface {
	Text() string
	Redo() error
	Undo() error
	TryMerge(other Command) bool
}

// RootsProvider yields the current graph roots at resolve time. The
// roots must be read live on every call; capturing them once would
// defeat the point of lookup-by-identifier.
type RootsProvider interface {
	GraphRoots() graph.Roots
}

// Notifier receives the broadcast that filters were pasted onto a
// producer, so open views can refresh.
type Notifier interface {
	FiltersPasted(p *graph.Producer)
}

// findProducer resolves the live instance of a logical producer.
func findProducer(src RootsProvider, id uuid.UUID) (*graph.Producer, error) {
	if p, ok := graph.Find(src.GraphRoots(), id); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, id)
}
