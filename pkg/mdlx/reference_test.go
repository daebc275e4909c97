package mdlx

import (
	"errors"
	"slices"
	"testing"
)

func TestReferenceAttachRegistersBackReference(t *testing.T) {
	m := NewModel()
	x, y := NewTexture(m, "x"), NewTexture(m, "y")
	mustAdd(t, m.Textures(), x, y)

	r := NewReference[*Texture](m)
	if r.Attached() || r.TargetObjectId() != InvalidId {
		t.Fatal("new reference should be unattached")
	}

	if err := r.Attach(x); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !x.ReferencedBy(r) || len(x.IncomingReferences()) != 1 {
		t.Errorf("x incoming = %v, want [r]", x.IncomingReferences())
	}
	if r.TargetObjectId() != 0 {
		t.Errorf("TargetObjectId = %d, want 0", r.TargetObjectId())
	}

	// Attaching elsewhere detaches from the old target first.
	if err := r.Attach(y); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if x.Referenced() {
		t.Error("x still referenced after retarget")
	}
	if !y.ReferencedBy(r) {
		t.Error("y missing back-reference")
	}

	r.Detach()
	if y.Referenced() || r.Attached() {
		t.Error("detach left a link behind")
	}
	r.Detach() // no-op
	if m.ReferenceCount() != 0 {
		t.Errorf("ReferenceCount = %d, want 0", m.ReferenceCount())
	}
}

func TestReferenceAttachForeignModel(t *testing.T) {
	m, other := NewModel(), NewModel()
	r := NewReference[*Texture](m)
	x := NewTexture(m, "x")
	if err := r.Attach(x); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	err := r.Attach(NewTexture(other, "foreign"))
	if !errors.Is(err, ErrForeignModel) {
		t.Fatalf("Attach foreign = %v, want ErrForeignModel", err)
	}
	if tgt, _ := r.Target(); tgt != x {
		t.Error("rejected attach changed the target")
	}
}

func TestReferenceToUncontainedObject(t *testing.T) {
	m := NewModel()
	x := NewTexture(m, "loose")
	r := NewReference[*Texture](m)
	if err := r.Attach(x); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if !r.Attached() {
		t.Fatal("reference should be attached")
	}
	if r.TargetObjectId() != InvalidId {
		t.Errorf("TargetObjectId = %d, want InvalidId for an uncontained target", r.TargetObjectId())
	}
}

func TestNodeReference(t *testing.T) {
	m := NewModel()
	b := NewBone(m, "b")
	h := NewHelper(m, "h")
	mustAdd(t, m.Bones(), b)
	mustAdd(t, m.Helpers(), h)

	r := NewNodeReference(m)
	if r.TargetNodeId() != InvalidId {
		t.Errorf("unattached TargetNodeId = %d", r.TargetNodeId())
	}
	if err := r.Attach(h); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if r.TargetNodeId() != 1 {
		t.Errorf("TargetNodeId = %d, want 1", r.TargetNodeId())
	}
	if !h.ReferencedBy(r) {
		t.Error("ReferencedBy should accept the NodeReference itself")
	}
	if got := m.IncomingNodeReferences(h); len(got) != 1 || !got[0].IsNodeReference() {
		t.Errorf("IncomingNodeReferences = %v", got)
	}

	if err := r.Attach(nil); !errors.Is(err, ErrNilObject) {
		t.Errorf("Attach(nil) = %v, want ErrNilObject", err)
	}
}

func TestNodeReferenceIdentityInIndex(t *testing.T) {
	m := NewModel()
	b := NewBone(m, "b")
	mustAdd(t, m.Bones(), b)

	r := NewNodeReference(m)
	if err := r.Attach(b); err != nil {
		t.Fatal(err)
	}
	check := func(stage string) {
		t.Helper()
		if !slices.Contains(b.IncomingReferences(), AnyReference(r)) {
			t.Errorf("%s: IncomingReferences does not hold the NodeReference", stage)
		}
		got := m.IncomingNodeReferences(b)
		if len(got) != 1 {
			t.Fatalf("%s: IncomingNodeReferences = %v", stage, got)
		}
		nr, ok := got[0].(*NodeReference)
		if !ok || nr != r || nr.TargetNodeId() != 0 {
			t.Errorf("%s: IncomingNodeReferences()[0] = %T, want the attached *NodeReference", stage, got[0])
		}
	}
	check("attached")

	// Removal detaches through the index; restoring must re-register the
	// same handle.
	m.BeginUndoRedoSession()
	m.Bones().Clear()
	cmd := m.EndUndoRedoSession()
	if r.Attached() {
		t.Fatal("removal should detach the NodeReference")
	}
	cmd.Undo()
	check("undo")
	cmd.Apply()
	cmd.Undo()
	check("redo+undo")

	a := &Attacher{}
	r.Detach()
	a.RequestNode(m, r, 0)
	if resolved, skipped := a.Resolve(); resolved != 1 || skipped != 0 {
		t.Fatalf("Resolve = %d, %d; want 1, 0", resolved, skipped)
	}
	check("resolved")
}

func TestIncomingReferencesOrder(t *testing.T) {
	m := NewModel()
	x := NewTexture(m, "x")
	refs := []*Reference[*Texture]{NewReference[*Texture](m), NewReference[*Texture](m), NewReference[*Texture](m)}
	for _, r := range refs {
		if err := r.Attach(x); err != nil {
			t.Fatalf("Attach: %v", err)
		}
	}
	refs[1].Detach()

	got := m.IncomingReferences(x)
	if len(got) != 2 || got[0] != AnyReference(refs[0]) || got[1] != AnyReference(refs[2]) {
		t.Errorf("IncomingReferences = %v, want [r0 r2]", got)
	}
}
