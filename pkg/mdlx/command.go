package mdlx

import "go.uber.org/zap"

// Command is a reversible mutation. Apply performs the forward effect and
// Undo reverses it; both replay previously validated state changes and
// never fail on a consistent model.
type Command interface {
	Apply()
	Undo()
}

// CompositeCommand is the ordered log of one undo/redo session.
type CompositeCommand struct {
	commands []Command
}

// Apply replays the children in recorded order.
func (c *CompositeCommand) Apply() {
	for _, cmd := range c.commands {
		cmd.Apply()
	}
}

// Undo reverses the children in reverse recorded order.
func (c *CompositeCommand) Undo() {
	for i := len(c.commands) - 1; i >= 0; i-- {
		c.commands[i].Undo()
	}
}

// Len returns the number of recorded commands.
func (c *CompositeCommand) Len() int { return len(c.commands) }

// Empty reports whether nothing was recorded.
func (c *CompositeCommand) Empty() bool { return len(c.commands) == 0 }

func (c *CompositeCommand) add(cmd Command) {
	c.commands = append(c.commands, cmd)
}

// BeginUndoRedoSession starts recording. Calling it while a session is open
// keeps accumulating into the existing session.
func (m *Model) BeginUndoRedoSession() {
	if m.session != nil {
		return
	}
	m.session = &CompositeCommand{}
	m.log.Debug("undo session started")
}

// EndUndoRedoSession stops recording and returns everything recorded since
// BeginUndoRedoSession as one command. It returns nil when no session is open.
func (m *Model) EndUndoRedoSession() *CompositeCommand {
	s := m.session
	if s == nil {
		return nil
	}
	m.session = nil
	m.log.Debug("undo session ended", zap.Int("commands", s.Len()))
	return s
}

// Recording reports whether an undo/redo session is open.
func (m *Model) Recording() bool { return m.session != nil }

// execute applies cmd now and logs it when a session is open.
func (m *Model) execute(cmd Command) {
	cmd.Apply()
	if m.session != nil {
		m.session.add(cmd)
	}
}

// fieldCommand records a scalar field change. The pointer acts as the
// getter/setter pair for the field.
type fieldCommand[V any] struct {
	field string
	ptr   *V
	old   V
	new   V
}

func (c *fieldCommand[V]) Apply() { *c.ptr = c.new }
func (c *fieldCommand[V]) Undo()  { *c.ptr = c.old }

// String names the field for debugging.
func (c *fieldCommand[V]) String() string { return "set " + c.field }

func setField[V any](m *Model, field string, ptr *V, v V) {
	m.execute(&fieldCommand[V]{field: field, ptr: ptr, old: *ptr, new: v})
}

// FuncCommand adapts a closure pair to a Command. Host code can use it to
// put its own state changes into the same session as model edits.
type FuncCommand struct {
	ApplyFunc func()
	UndoFunc  func()
}

// Apply calls ApplyFunc.
func (c FuncCommand) Apply() { c.ApplyFunc() }

// Undo calls UndoFunc.
func (c FuncCommand) Undo() { c.UndoFunc() }

// Do applies cmd now and records it in the open session, if any.
func (m *Model) Do(cmd Command) {
	m.execute(cmd)
}
