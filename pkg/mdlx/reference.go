package mdlx

import "fmt"

// AnyReference is the type-erased view of a Reference used by the
// back-reference index, Detachers and the Attacher.
type AnyReference interface {
	// Model returns the model the reference is bound to.
	Model() *Model
	// TargetObject returns the current target, or nil.
	TargetObject() Object
	// IsNodeReference reports whether the reference addresses the flat
	// node space.
	IsNodeReference() bool

	forceAttach(target Object)
	forceDetach()
}

// Reference is a non-owning handle to at most one object of type T in the
// same model. Every attached reference is registered on its target, so the
// target can enumerate and sever everything pointing at it.
type Reference[T Object] struct {
	model  *Model
	target Object
	node   bool
	// self is the value registered on the target. It differs from the
	// receiver when the reference is embedded, as in NodeReference.
	self AnyReference
}

// NewReference creates an unattached reference bound to m.
func NewReference[T Object](m *Model) *Reference[T] {
	r := &Reference[T]{model: m}
	r.self = r
	return r
}

func (r *Reference[T]) handle() AnyReference {
	if r.self == nil {
		return r
	}
	return r.self
}

// Model returns the model the reference is bound to.
func (r *Reference[T]) Model() *Model { return r.model }

// IsNodeReference reports whether the reference addresses the flat node space.
func (r *Reference[T]) IsNodeReference() bool { return r.node }

// TargetObject returns the current target, or nil.
func (r *Reference[T]) TargetObject() Object { return r.target }

// Target returns the current target and whether one is attached.
func (r *Reference[T]) Target() (T, bool) {
	if r.target == nil {
		var zero T
		return zero, false
	}
	return r.target.(T), true
}

// Attached reports whether the reference points at something.
func (r *Reference[T]) Attached() bool { return r.target != nil }

// TargetObjectId returns the target's current ObjectId, or InvalidId when
// unattached or when the target is not contained.
func (r *Reference[T]) TargetObjectId() ObjectId {
	if r.target == nil {
		return InvalidId
	}
	return r.target.ObjectId()
}

// Attach points the reference at target, replacing any current target.
func (r *Reference[T]) Attach(target T) error {
	obj := Object(target)
	if obj == nil {
		return ErrNilObject
	}
	if obj.Model() != r.model {
		return fmt.Errorf("attaching reference: %w", ErrForeignModel)
	}
	if r.target == obj {
		return nil
	}
	r.model.execute(&attachCommand{ref: r.handle(), prev: r.target, next: obj})
	return nil
}

// Detach clears the reference. It is a no-op when unattached.
func (r *Reference[T]) Detach() {
	if r.target == nil {
		return
	}
	r.model.execute(&detachCommand{ref: r.handle(), prev: r.target})
}

func (r *Reference[T]) forceAttach(target Object) {
	if r.target == target {
		return
	}
	r.forceDetach()
	r.target = target
	r.model.backrefs.add(target.object(), r.handle())
}

func (r *Reference[T]) forceDetach() {
	if r.target == nil {
		return
	}
	r.model.backrefs.remove(r.target.object(), r.handle())
	r.target = nil
}

// NodeReference points at any node kind and reports the target's NodeId.
type NodeReference struct {
	Reference[Node]
}

// NewNodeReference creates an unattached node reference bound to m.
func NewNodeReference(m *Model) *NodeReference {
	r := &NodeReference{Reference: Reference[Node]{model: m, node: true}}
	r.self = r
	return r
}

// TargetNodeId returns the target's NodeId, or InvalidId.
func (r *NodeReference) TargetNodeId() NodeId {
	n, ok := r.Target()
	if !ok {
		return InvalidId
	}
	return n.NodeId()
}

// attachCommand and detachCommand replay through the force variants so
// that undo and redo never record further commands.
type attachCommand struct {
	ref  AnyReference
	prev Object
	next Object
}

func (c *attachCommand) Apply() { c.ref.forceAttach(c.next) }

func (c *attachCommand) Undo() {
	if c.prev == nil {
		c.ref.forceDetach()
		return
	}
	c.ref.forceAttach(c.prev)
}

type detachCommand struct {
	ref  AnyReference
	prev Object
}

func (c *detachCommand) Apply() { c.ref.forceDetach() }
func (c *detachCommand) Undo()  { c.ref.forceAttach(c.prev) }

// Detacher is a severed-link obligation produced before a structural
// removal: Detach breaks the link, Attach restores it to the same target.
type Detacher struct {
	Ref    AnyReference
	Target Object
}

// Detach severs the link.
func (d Detacher) Detach() { d.Ref.forceDetach() }

// Attach restores the link to the original target.
func (d Detacher) Attach() { d.Ref.forceAttach(d.Target) }

// collectDetachers gathers every reference pointing at objs or at any member
// of their nested containers, depth first, in a stable order.
func collectDetachers(m *Model, objs ...Object) []Detacher {
	var out []Detacher
	var walk func(o Object)
	walk = func(o Object) {
		for _, ref := range m.backrefs.list(o.object()) {
			out = append(out, Detacher{Ref: ref, Target: o})
		}
		p, ok := o.(parent)
		if !ok {
			return
		}
		for _, c := range p.subContainers() {
			for i := 0; i < c.Len(); i++ {
				walk(c.objectAt(i))
			}
		}
	}
	for _, o := range objs {
		walk(o)
	}
	return out
}

func detachAll(ds []Detacher) {
	for _, d := range ds {
		d.Detach()
	}
}

func attachAll(ds []Detacher) {
	for _, d := range ds {
		d.Attach()
	}
}
