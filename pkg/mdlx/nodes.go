package mdlx

// NodeContainer is a read-through view over the nine node containers in
// precedence order. It owns nothing.
type NodeContainer struct {
	model *Model
}

// Nodes returns the flat node view.
func (m *Model) Nodes() NodeContainer { return NodeContainer{model: m} }

// Len returns the total number of contained nodes.
func (nc NodeContainer) Len() int {
	n := 0
	for _, c := range nc.model.nodeContainers {
		n += c.Len()
	}
	return n
}

// Get returns the node with the given NodeId.
func (nc NodeContainer) Get(id NodeId) (Node, bool) {
	if id < 0 {
		return nil, false
	}
	i := int(id)
	for _, c := range nc.model.nodeContainers {
		if i < c.Len() {
			return c.objectAt(i).(Node), true
		}
		i -= c.Len()
	}
	return nil, false
}

// All returns every node in NodeId order.
func (nc NodeContainer) All() []Node {
	out := make([]Node, 0, nc.Len())
	for _, c := range nc.model.nodeContainers {
		for i := 0; i < c.Len(); i++ {
			out = append(out, c.objectAt(i).(Node))
		}
	}
	return out
}

// ByName returns the first node with the given name.
func (nc NodeContainer) ByName(name string) (Node, bool) {
	for _, n := range nc.All() {
		if n.node().name == name {
			return n, true
		}
	}
	return nil, false
}

// nodeIdOf is the single place NodeIds are computed: the node's local index
// plus the sizes of every node container preceding its kind.
func (m *Model) nodeIdOf(n *NodeBase) NodeId {
	if n.container == nil {
		return InvalidId
	}
	offset := 0
	for k := NodeKind(0); k < n.kind; k++ {
		offset += m.nodeContainers[k].Len()
	}
	return NodeId(offset + n.container.indexOfBase(&n.ObjectBase))
}
