package mdlx

// InvalidId is the ObjectId/NodeId of anything not held by a container.
const InvalidId = -1

// ObjectId is the position of an object inside its container. It is derived
// on every call and shifts whenever an earlier member is inserted or removed.
type ObjectId int

// Valid reports whether id refers to a contained object.
func (id ObjectId) Valid() bool { return id >= 0 }

// NodeId is the flat index of a node across every node container.
type NodeId int

// Valid reports whether id refers to a contained node.
func (id NodeId) Valid() bool { return id >= 0 }

// Object is implemented by every entity stored in a Container.
type Object interface {
	// Model returns the model the object was created for.
	Model() *Model
	// ObjectId returns the current index in the owning container, or
	// InvalidId when the object is not contained.
	ObjectId() ObjectId
	// Contained reports whether the object is held by a container.
	Contained() bool

	object() *ObjectBase
}

// ObjectBase carries the bookkeeping shared by all entities. Concrete
// entities embed it and are created through their New* constructors.
type ObjectBase struct {
	model     *Model
	container anyContainer
}

func (o *ObjectBase) init(m *Model) {
	if m == nil {
		panic("mdlx: object created without a model")
	}
	o.model = m
}

// Model returns the model the object was created for.
func (o *ObjectBase) Model() *Model { return o.model }

// ObjectId returns the current index in the owning container.
func (o *ObjectBase) ObjectId() ObjectId {
	if o.container == nil {
		return InvalidId
	}
	return ObjectId(o.container.indexOfBase(o))
}

// Contained reports whether the object is held by a container.
func (o *ObjectBase) Contained() bool { return o.container != nil }

// IncomingReferences lists every reference currently pointing at the object.
func (o *ObjectBase) IncomingReferences() []AnyReference {
	return o.model.backrefs.list(o)
}

// Referenced reports whether anything points at the object.
func (o *ObjectBase) Referenced() bool {
	return o.model.backrefs.count(o) > 0
}

func (o *ObjectBase) object() *ObjectBase { return o }

// parent is implemented by objects that own nested containers. Removing such
// an object must also sever references into its nested members.
type parent interface {
	subContainers() []anyContainer
}

// ReferencedBy reports whether ref currently points at the object.
func (o *ObjectBase) ReferencedBy(ref AnyReference) bool {
	return o.model.backrefs.contains(o, ref)
}
