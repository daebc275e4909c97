package mdlx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/mdlx/pkg/math"
)

// NodeKind identifies one of the node containers. The declaration order is
// the precedence order of the flat NodeId space.
type NodeKind int

const (
	KindBone NodeKind = iota
	KindLight
	KindHelper
	KindAttachment
	KindParticleEmitter
	KindParticleEmitter2
	KindRibbonEmitter
	KindEvent
	KindCollisionShape

	nodeKindCount
)

var nodeKindNames = [nodeKindCount]string{
	"Bone", "Light", "Helper", "Attachment", "ParticleEmitter",
	"ParticleEmitter2", "RibbonEmitter", "Event", "CollisionShape",
}

// String returns the kind name.
func (k NodeKind) String() string {
	if k < 0 || k >= nodeKindCount {
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
	return nodeKindNames[k]
}

// NodeFlags is the node flag bitfield.
type NodeFlags uint32

const (
	NodeDontInheritTranslation NodeFlags = 1 << iota
	NodeDontInheritRotation
	NodeDontInheritScaling
	NodeBillboarded
	NodeBillboardedLockX
	NodeBillboardedLockY
	NodeBillboardedLockZ
	NodeCameraAnchored
)

// Node is an Object that lives in the skeleton hierarchy.
type Node interface {
	Object
	// Kind returns which node container the node belongs in.
	Kind() NodeKind
	// NodeId returns the flat index across all node containers.
	NodeId() NodeId
	Name() string
	SetName(name string)
	// Parent returns the reference to the parent node.
	Parent() *NodeReference
	Pivot() math.Vec3
	WorldTransform(seq Interval, t, globalTime int32) mgl32.Mat4

	node() *NodeBase
}

// NodeBase carries the state shared by all node kinds.
type NodeBase struct {
	ObjectBase

	kind        NodeKind
	name        string
	flags       NodeFlags
	parent      *NodeReference
	translation *Animator[math.Vec3]
	rotation    *Animator[math.Quat]
	scaling     *Animator[math.Vec3]
}

func (n *NodeBase) initNode(m *Model, kind NodeKind) {
	n.init(m)
	n.kind = kind
	n.parent = NewNodeReference(m)
	n.translation = NewAnimator(m, "Translation", math.Vec3{})
	n.rotation = NewAnimator(m, "Rotation", math.QuatIdentity())
	n.scaling = NewAnimator(m, "Scaling", math.Vec3One)
}

func (n *NodeBase) node() *NodeBase { return n }

// Kind returns which node container the node belongs in.
func (n *NodeBase) Kind() NodeKind { return n.kind }

// NodeId returns the flat index across all node containers.
func (n *NodeBase) NodeId() NodeId { return n.model.nodeIdOf(n) }

// Name returns the node name.
func (n *NodeBase) Name() string { return n.name }

// SetName changes the node name.
func (n *NodeBase) SetName(name string) { setField(n.model, "Name", &n.name, name) }

// Flags returns the node flags.
func (n *NodeBase) Flags() NodeFlags { return n.flags }

// SetFlags changes the node flags.
func (n *NodeBase) SetFlags(f NodeFlags) { setField(n.model, "Flags", &n.flags, f) }

// Parent returns the parent link.
func (n *NodeBase) Parent() *NodeReference { return n.parent }

// Translation returns the translation track.
func (n *NodeBase) Translation() *Animator[math.Vec3] { return n.translation }

// Rotation returns the rotation track.
func (n *NodeBase) Rotation() *Animator[math.Quat] { return n.rotation }

// Scaling returns the scaling track.
func (n *NodeBase) Scaling() *Animator[math.Vec3] { return n.scaling }

// Children returns the nodes whose parent is this node, in NodeId order.
func (n *NodeBase) Children() []Node {
	var out []Node
	for _, c := range n.model.Nodes().All() {
		if p, ok := c.node().parent.Target(); ok && p.node() == n {
			out = append(out, c)
		}
	}
	return out
}

// Pivot returns the pivot point paired with this node's NodeId.
func (n *NodeBase) Pivot() math.Vec3 {
	id := n.NodeId()
	if !id.Valid() {
		return math.Vec3{}
	}
	p, ok := n.model.PivotPoints().Get(int(id))
	if !ok {
		return math.Vec3{}
	}
	return p.Position()
}

// LocalTransform evaluates the node's animated transform relative to its
// parent, rotating and scaling about the pivot point.
func (n *NodeBase) LocalTransform(seq Interval, t, globalTime int32) mgl32.Mat4 {
	pivot := n.Pivot().Mgl()
	tr := n.translation.Sample(seq, t, globalTime).Mgl()
	rot := n.rotation.Sample(seq, t, globalTime)
	sc := n.scaling.Sample(seq, t, globalTime).Mgl()

	m := mgl32.Translate3D(tr[0]+pivot[0], tr[1]+pivot[1], tr[2]+pivot[2])
	m = m.Mul4(rot.Mat4())
	m = m.Mul4(mgl32.Scale3D(sc[0], sc[1], sc[2]))
	return m.Mul4(mgl32.Translate3D(-pivot[0], -pivot[1], -pivot[2]))
}

// WorldTransform composes LocalTransform up the parent chain. A parent cycle
// stops the walk after every node has been visited once.
func (n *NodeBase) WorldTransform(seq Interval, t, globalTime int32) mgl32.Mat4 {
	m := n.LocalTransform(seq, t, globalTime)
	cur := n
	for steps := n.model.Nodes().Len(); steps > 0; steps-- {
		p, ok := cur.parent.Target()
		if !ok {
			break
		}
		cur = p.node()
		m = cur.LocalTransform(seq, t, globalTime).Mul4(m)
	}
	return m
}
