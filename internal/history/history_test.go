package history

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Faultbox/mdlx/pkg/mdlx"
)

// rename runs one recorded session renaming the model.
func rename(m *mdlx.Model, name string) *mdlx.CompositeCommand {
	m.BeginUndoRedoSession()
	m.SetName(name)
	return m.EndUndoRedoSession()
}

func TestUndoRedo(t *testing.T) {
	m := mdlx.NewModel()
	h := New(0, nil)

	h.Push(rename(m, "a"))
	h.Push(rename(m, "b"))

	if !h.Undo() {
		t.Fatal("Undo returned false")
	}
	if m.Name() != "a" {
		t.Errorf("after undo name = %q, want a", m.Name())
	}
	if !h.CanRedo() {
		t.Error("expected redo to be available")
	}
	if !h.Redo() {
		t.Fatal("Redo returned false")
	}
	if m.Name() != "b" {
		t.Errorf("after redo name = %q, want b", m.Name())
	}
	if h.Redo() {
		t.Error("Redo with empty stack returned true")
	}
}

func TestPushClearsRedo(t *testing.T) {
	m := mdlx.NewModel()
	h := New(0, nil)

	h.Push(rename(m, "a"))
	h.Push(rename(m, "b"))
	h.Undo()
	h.Push(rename(m, "c"))

	if h.CanRedo() {
		t.Error("push should discard the redo stack")
	}
	h.Undo()
	if m.Name() != "a" {
		t.Errorf("name = %q, want a", m.Name())
	}
}

func TestPushIgnoresEmpty(t *testing.T) {
	m := mdlx.NewModel()
	h := New(0, nil)

	m.BeginUndoRedoSession()
	h.Push(m.EndUndoRedoSession())
	h.Push(nil)
	h.Push(m.EndUndoRedoSession()) // no session open

	if h.CanUndo() {
		t.Errorf("expected no entries, got %d", h.Len())
	}
	if h.Undo() {
		t.Error("Undo on empty history returned true")
	}
}

func TestMaxDepth(t *testing.T) {
	m := mdlx.NewModel()
	h := New(2, nil)

	var names []string
	for _, n := range []string{"a", "b", "c", "d"} {
		h.Push(rename(m, n))
	}
	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	for h.Undo() {
		names = append(names, m.Name())
	}
	// Only the two most recent renames are undoable.
	if diff := cmp.Diff([]string{"c", "b"}, names); diff != "" {
		t.Errorf("undo sequence mismatch (-want +got):\n%s", diff)
	}
	if h.RedoLen() != 2 {
		t.Errorf("RedoLen = %d, want 2", h.RedoLen())
	}
}

func TestStructuralUndo(t *testing.T) {
	m := mdlx.NewModel()
	h := New(10, nil)

	tex := mdlx.NewTexture(m, "a.blp")
	m.BeginUndoRedoSession()
	if err := m.Textures().Add(tex); err != nil {
		t.Fatalf("Add: %v", err)
	}
	layer := mdlx.NewLayer(m)
	if err := layer.Texture().Attach(tex); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	h.Push(m.EndUndoRedoSession())

	m.BeginUndoRedoSession()
	m.Textures().Clear()
	h.Push(m.EndUndoRedoSession())

	if layer.Texture().Attached() {
		t.Fatal("clear should sever the layer reference")
	}
	h.Undo()
	if got, ok := layer.Texture().Target(); !ok || got != tex {
		t.Errorf("undo should restore the layer reference")
	}
	h.Undo()
	if m.Textures().Len() != 0 || layer.Texture().Attached() {
		t.Errorf("second undo should remove the texture and the link")
	}
}
