// Package history keeps the undo/redo stacks of finished model edit sessions.
package history

import (
	"go.uber.org/zap"

	"github.com/Faultbox/mdlx/pkg/mdlx"
)

// History is a bounded pair of undo/redo stacks. Each entry is the command
// produced by one ended undo/redo session.
type History struct {
	undo     []mdlx.Command
	redo     []mdlx.Command
	maxDepth int
	log      *zap.Logger
}

// New creates a history keeping at most maxDepth undo entries.
// A maxDepth of 0 or less keeps everything.
func New(maxDepth int, log *zap.Logger) *History {
	if log == nil {
		log = zap.NewNop()
	}
	return &History{maxDepth: maxDepth, log: log}
}

// Push records an already applied command. Pushing discards the redo stack.
// Nil commands and empty sessions are ignored.
func (h *History) Push(cmd mdlx.Command) {
	if cmd == nil {
		return
	}
	if c, ok := cmd.(*mdlx.CompositeCommand); ok && (c == nil || c.Empty()) {
		return
	}
	h.undo = append(h.undo, cmd)
	h.redo = h.redo[:0]

	if h.maxDepth > 0 && len(h.undo) > h.maxDepth {
		dropped := len(h.undo) - h.maxDepth
		h.undo = append(h.undo[:0], h.undo[dropped:]...)
		h.log.Debug("history trimmed", zap.Int("dropped", dropped))
	}
}

// Undo reverts the most recent entry and moves it to the redo stack.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	cmd.Undo()
	h.redo = append(h.redo, cmd)
	h.log.Debug("undo", zap.Int("remaining", len(h.undo)))
	return true
}

// Redo reapplies the most recently undone entry.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	cmd.Apply()
	h.undo = append(h.undo, cmd)
	h.log.Debug("redo", zap.Int("remaining", len(h.redo)))
	return true
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the number of undoable entries.
func (h *History) Len() int { return len(h.undo) }

// RedoLen returns the number of redoable entries.
func (h *History) RedoLen() int { return len(h.redo) }
