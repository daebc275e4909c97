package mdlx

import "github.com/Faultbox/mdlx/pkg/math"

// Geoset is one mesh of the model. It owns its vertices, faces and matrix
// groups; faces and vertices refer to siblings in the same geoset.
type Geoset struct {
	ObjectBase

	material       *Reference[*Material]
	selectionGroup uint32
	unselectable   bool
	extent         Extent
	vertices       *Container[*GeosetVertex]
	faces          *Container[*Face]
	groups         *Container[*GeosetGroup]
}

// NewGeoset creates an uncontained, empty geoset.
func NewGeoset(m *Model) *Geoset {
	g := &Geoset{
		material: NewReference[*Material](m),
		vertices: newContainer[*GeosetVertex](m, "Vertices"),
		faces:    newContainer[*Face](m, "Faces"),
		groups:   newContainer[*GeosetGroup](m, "Groups"),
	}
	g.init(m)
	return g
}

func (g *Geoset) Material() *Reference[*Material] { return g.material }
func (g *Geoset) SelectionGroup() uint32          { return g.selectionGroup }
func (g *Geoset) SetSelectionGroup(v uint32) {
	setField(g.model, "SelectionGroup", &g.selectionGroup, v)
}
func (g *Geoset) Unselectable() bool                  { return g.unselectable }
func (g *Geoset) SetUnselectable(v bool)              { setField(g.model, "Unselectable", &g.unselectable, v) }
func (g *Geoset) Extent() Extent                      { return g.extent }
func (g *Geoset) SetExtent(e Extent)                  { setField(g.model, "Extent", &g.extent, e) }
func (g *Geoset) Vertices() *Container[*GeosetVertex] { return g.vertices }
func (g *Geoset) Faces() *Container[*Face]            { return g.faces }
func (g *Geoset) Groups() *Container[*GeosetGroup]    { return g.groups }

func (g *Geoset) subContainers() []anyContainer {
	return []anyContainer{g.vertices, g.faces, g.groups}
}

// GeosetVertex is a mesh vertex bound to one matrix group.
type GeosetVertex struct {
	ObjectBase

	position math.Vec3
	normal   math.Vec3
	texCoord math.Vec2
	group    *Reference[*GeosetGroup]
}

// NewGeosetVertex creates an uncontained vertex.
func NewGeosetVertex(m *Model, position, normal math.Vec3, texCoord math.Vec2) *GeosetVertex {
	v := &GeosetVertex{
		position: position,
		normal:   normal,
		texCoord: texCoord,
		group:    NewReference[*GeosetGroup](m),
	}
	v.init(m)
	return v
}

func (v *GeosetVertex) Position() math.Vec3             { return v.position }
func (v *GeosetVertex) SetPosition(p math.Vec3)         { setField(v.model, "Position", &v.position, p) }
func (v *GeosetVertex) Normal() math.Vec3               { return v.normal }
func (v *GeosetVertex) SetNormal(n math.Vec3)           { setField(v.model, "Normal", &v.normal, n) }
func (v *GeosetVertex) TexCoord() math.Vec2             { return v.texCoord }
func (v *GeosetVertex) SetTexCoord(tc math.Vec2)        { setField(v.model, "TexCoord", &v.texCoord, tc) }
func (v *GeosetVertex) Group() *Reference[*GeosetGroup] { return v.group }

// Face is a triangle over three vertices of the same geoset.
type Face struct {
	ObjectBase

	vertices [3]*Reference[*GeosetVertex]
}

// NewFace creates an uncontained face with unattached corners.
func NewFace(m *Model) *Face {
	f := &Face{}
	for i := range f.vertices {
		f.vertices[i] = NewReference[*GeosetVertex](m)
	}
	f.init(m)
	return f
}

// Vertex returns the reference for corner i (0..2).
func (f *Face) Vertex(i int) *Reference[*GeosetVertex] { return f.vertices[i] }

// VertexIds returns the ObjectIds of the three corners.
func (f *Face) VertexIds() [3]ObjectId {
	return [3]ObjectId{
		f.vertices[0].TargetObjectId(),
		f.vertices[1].TargetObjectId(),
		f.vertices[2].TargetObjectId(),
	}
}

// GeosetGroup is a matrix group: the set of nodes whose transforms are
// averaged to skin the vertices bound to it.
type GeosetGroup struct {
	ObjectBase

	matrices *Container[*GroupMatrix]
}

// NewGeosetGroup creates an uncontained, empty matrix group.
func NewGeosetGroup(m *Model) *GeosetGroup {
	g := &GeosetGroup{matrices: newContainer[*GroupMatrix](m, "Matrices")}
	g.init(m)
	return g
}

func (g *GeosetGroup) Matrices() *Container[*GroupMatrix] { return g.matrices }

func (g *GeosetGroup) subContainers() []anyContainer {
	return []anyContainer{g.matrices}
}

// NodeIds returns the NodeIds of the group's matrices.
func (g *GeosetGroup) NodeIds() []NodeId {
	out := make([]NodeId, 0, g.matrices.Len())
	for _, gm := range g.matrices.items {
		out = append(out, gm.node.TargetNodeId())
	}
	return out
}

// GroupMatrix is one node entry of a matrix group.
type GroupMatrix struct {
	ObjectBase

	node *NodeReference
}

// NewGroupMatrix creates an uncontained matrix entry.
func NewGroupMatrix(m *Model) *GroupMatrix {
	gm := &GroupMatrix{node: NewNodeReference(m)}
	gm.init(m)
	return gm
}

func (gm *GroupMatrix) Node() *NodeReference { return gm.node }

// GeosetAnimation animates a geoset's visibility and color.
type GeosetAnimation struct {
	ObjectBase

	useColor bool
	alpha    *Animator[math.Float]
	color    *Animator[math.Vec3]
	geoset   *Reference[*Geoset]
}

// NewGeosetAnimation creates an uncontained geoset animation.
func NewGeosetAnimation(m *Model) *GeosetAnimation {
	ga := &GeosetAnimation{
		alpha:  NewAnimator(m, "Alpha", math.Float(1)),
		color:  NewAnimator(m, "Color", math.Vec3One),
		geoset: NewReference[*Geoset](m),
	}
	ga.init(m)
	return ga
}

func (ga *GeosetAnimation) UseColor() bool               { return ga.useColor }
func (ga *GeosetAnimation) SetUseColor(v bool)           { setField(ga.model, "UseColor", &ga.useColor, v) }
func (ga *GeosetAnimation) Alpha() *Animator[math.Float] { return ga.alpha }
func (ga *GeosetAnimation) Color() *Animator[math.Vec3]  { return ga.color }
func (ga *GeosetAnimation) Geoset() *Reference[*Geoset]  { return ga.geoset }

// PivotPoint is the rotation center of the node with the same NodeId.
type PivotPoint struct {
	ObjectBase

	position math.Vec3
}

// NewPivotPoint creates an uncontained pivot point.
func NewPivotPoint(m *Model, position math.Vec3) *PivotPoint {
	p := &PivotPoint{position: position}
	p.init(m)
	return p
}

func (p *PivotPoint) Position() math.Vec3     { return p.position }
func (p *PivotPoint) SetPosition(v math.Vec3) { setField(p.model, "Position", &p.position, v) }
