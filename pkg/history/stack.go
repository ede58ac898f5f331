// Package history provides the linear undo stack that owns and
// sequences commands: push applies a command once, offers it to the
// top-of-stack command for merging, and evicts the oldest steps when
// a capacity limit is set.
package history

import (
	"github.com/annihilatorrrr/shotcut/pkg/commands"
	"github.com/annihilatorrrr/shotcut/pkg/logging"
)

// Stack is a linear undo/redo history. Commands below index are
// applied; commands at and above it are undone and redoable. All
// methods run on the control thread; the stack does no locking.
type Stack struct {
	limit int
	index int
	cmds  []commands.Command
}

// NewStack creates a history limited to the given number of undo
// steps. A limit of 0 means unbounded.
func NewStack(limit int) *Stack {
	return &Stack{limit: limit}
}

// Push applies the command and takes ownership of it. Any redoable
// tail is discarded first. After the command's first apply, the
// current top-of-stack command is offered a merge; on acceptance the
// new command is discarded and the top absorbs its effect. A failed
// apply is returned unchanged and nothing is pushed.
func (s *Stack) Push(cmd commands.Command) error {
	s.cmds = s.cmds[:s.index]
	if err := cmd.Redo(); err != nil {
		return err
	}
	if s.index > 0 && s.cmds[s.index-1].TryMerge(cmd) {
		logging.Debug("merged command", "text", cmd.Text())
		return nil
	}
	s.cmds = append(s.cmds, cmd)
	s.index++
	if s.limit > 0 && len(s.cmds) > s.limit {
		drop := len(s.cmds) - s.limit
		s.cmds = append(s.cmds[:0:0], s.cmds[drop:]...)
		s.index -= drop
	}
	return nil
}

// Undo reverses the most recent applied command. A failure leaves the
// position unchanged; an empty history is a no-op.
func (s *Stack) Undo() error {
	if !s.CanUndo() {
		return nil
	}
	if err := s.cmds[s.index-1].Undo(); err != nil {
		return err
	}
	s.index--
	return nil
}

// Redo reapplies the most recently undone command.
func (s *Stack) Redo() error {
	if !s.CanRedo() {
		return nil
	}
	if err := s.cmds[s.index].Redo(); err != nil {
		return err
	}
	s.index++
	return nil
}

// CanUndo reports whether an applied command is available.
func (s *Stack) CanUndo() bool {
	return s.index > 0
}

// CanRedo reports whether an undone command is available.
func (s *Stack) CanRedo() bool {
	return s.index < len(s.cmds)
}

// UndoText returns the display text of the next command to undo.
func (s *Stack) UndoText() string {
	if !s.CanUndo() {
		return ""
	}
	return s.cmds[s.index-1].Text()
}

// RedoText returns the display text of the next command to redo.
func (s *Stack) RedoText() string {
	if !s.CanRedo() {
		return ""
	}
	return s.cmds[s.index].Text()
}

// Len returns the number of commands held.
func (s *Stack) Len() int {
	return len(s.cmds)
}

// Clear evicts every command.
func (s *Stack) Clear() {
	s.cmds = nil
	s.index = 0
}
