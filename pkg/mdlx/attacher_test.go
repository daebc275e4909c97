package mdlx

import "testing"

func TestAttacherResolvesAfterLoad(t *testing.T) {
	m := NewModel()
	var a Attacher

	// The geoset refers to material 2 before any material exists.
	g := NewGeoset(m)
	mustAdd(t, m.Geosets(), g)
	RequestObject(&a, m.Materials(), g.Material(), 2)
	if g.Material().Attached() {
		t.Fatal("request must not touch the reference")
	}

	mats := make([]*Material, 5)
	for i := range mats {
		mats[i] = NewMaterial(m)
		mustAdd(t, m.Materials(), mats[i])
	}

	resolved, skipped := a.Resolve()
	if resolved != 1 || skipped != 0 {
		t.Errorf("Resolve = %d, %d; want 1, 0", resolved, skipped)
	}
	if tgt, _ := g.Material().Target(); tgt != mats[2] {
		t.Errorf("geoset material = %v, want materials[2]", tgt)
	}
	if a.Pending() != 0 {
		t.Errorf("Pending after resolve = %d", a.Pending())
	}
}

func TestAttacherSkipsMissingTargets(t *testing.T) {
	m := NewModel()
	var a Attacher
	mustAdd(t, m.Textures(), NewTexture(m, "only"))

	outOfRange := NewLayer(m)
	none := NewLayer(m)
	ok := NewLayer(m)
	RequestObject(&a, m.Textures(), outOfRange.Texture(), 7)
	RequestObject(&a, m.Textures(), none.Texture(), -1)
	RequestObject(&a, m.Textures(), ok.Texture(), 0)

	resolved, skipped := a.Resolve()
	if resolved != 1 || skipped != 2 {
		t.Errorf("Resolve = %d, %d; want 1, 2", resolved, skipped)
	}
	if outOfRange.Texture().Attached() || none.Texture().Attached() {
		t.Error("missing targets should leave references unattached")
	}
	if !ok.Texture().Attached() {
		t.Error("valid request was not resolved")
	}
}

func TestAttacherRequestNode(t *testing.T) {
	m := NewModel()
	var a Attacher

	// Parent links refer forward to a helper decoded after the bones.
	b0, b1 := NewBone(m, "b0"), NewBone(m, "b1")
	mustAdd(t, m.Bones(), b0, b1)
	a.RequestNode(m, b0.Parent(), 2)
	a.RequestNode(m, b1.Parent(), 2)

	h := NewHelper(m, "root")
	mustAdd(t, m.Helpers(), h)
	a.RequestNode(m, h.Parent(), InvalidId)

	resolved, skipped := a.Resolve()
	if resolved != 2 || skipped != 1 {
		t.Errorf("Resolve = %d, %d; want 2, 1", resolved, skipped)
	}
	for _, b := range []*Bone{b0, b1} {
		if p, _ := b.Parent().Target(); p != Node(h) {
			t.Errorf("%s parent = %v, want helper", b.Name(), p)
		}
	}
	if len(h.Children()) != 2 {
		t.Errorf("helper children = %d, want 2", len(h.Children()))
	}
}

func TestAttacherRecordsIntoOpenSession(t *testing.T) {
	m := NewModel()
	var a Attacher
	tx := NewTexture(m, "t")
	mustAdd(t, m.Textures(), tx)
	l := NewLayer(m)
	RequestObject(&a, m.Textures(), l.Texture(), 0)

	m.BeginUndoRedoSession()
	a.Resolve()
	cmd := m.EndUndoRedoSession()

	cmd.Undo()
	if l.Texture().Attached() || tx.Referenced() {
		t.Error("undo should detach resolved references")
	}
}
