package mdlx

// backrefIndex maps each referenced object to the references pointing at it.
// Entries are created on first attach and dropped when the last reference
// detaches, so objects nobody points at cost nothing.
type backrefIndex struct {
	sets map[*ObjectBase][]AnyReference
}

func (b *backrefIndex) add(target *ObjectBase, ref AnyReference) {
	if b.sets == nil {
		b.sets = make(map[*ObjectBase][]AnyReference)
	}
	b.sets[target] = append(b.sets[target], ref)
}

func (b *backrefIndex) remove(target *ObjectBase, ref AnyReference) {
	refs := b.sets[target]
	for i, r := range refs {
		if r == ref {
			refs = append(refs[:i:i], refs[i+1:]...)
			break
		}
	}
	if len(refs) == 0 {
		delete(b.sets, target)
		return
	}
	b.sets[target] = refs
}

// list returns a copy in attach order.
func (b *backrefIndex) list(target *ObjectBase) []AnyReference {
	refs := b.sets[target]
	if len(refs) == 0 {
		return nil
	}
	out := make([]AnyReference, len(refs))
	copy(out, refs)
	return out
}

func (b *backrefIndex) count(target *ObjectBase) int {
	return len(b.sets[target])
}

func (b *backrefIndex) contains(target *ObjectBase, ref AnyReference) bool {
	for _, r := range b.sets[target] {
		if r == ref {
			return true
		}
	}
	return false
}

// total returns the number of live links in the model.
func (b *backrefIndex) total() int {
	n := 0
	for _, refs := range b.sets {
		n += len(refs)
	}
	return n
}
