package mdlx

import (
	"slices"

	"github.com/Faultbox/mdlx/pkg/math"
)

// Event fires a sound or effect at fixed track times.
type Event struct {
	NodeBase

	tracks         []int32
	globalSequence *Reference[*GlobalSequence]
}

// NewEvent creates an uncontained event.
func NewEvent(m *Model, name string) *Event {
	e := &Event{globalSequence: NewReference[*GlobalSequence](m)}
	e.initNode(m, KindEvent)
	e.name = name
	return e
}

// Tracks returns the sorted trigger times. The slice is a copy.
func (e *Event) Tracks() []int32 { return slices.Clone(e.tracks) }

// SetTracks replaces the trigger times; they are stored sorted and unique.
func (e *Event) SetTracks(tracks []int32) {
	next := slices.Clone(tracks)
	slices.Sort(next)
	next = slices.Compact(next)
	setField(e.model, "Tracks", &e.tracks, next)
}

// AddTrack inserts one trigger time.
func (e *Event) AddTrack(t int32) {
	i, found := slices.BinarySearch(e.tracks, t)
	if found {
		return
	}
	setField(e.model, "Tracks", &e.tracks, slices.Insert(slices.Clone(e.tracks), i, t))
}

// TracksIn returns the trigger times inside iv.
func (e *Event) TracksIn(iv Interval) []int32 {
	var out []int32
	for _, t := range e.tracks {
		if iv.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

func (e *Event) GlobalSequence() *Reference[*GlobalSequence] { return e.globalSequence }

// ShapeType is the collision volume kind.
type ShapeType uint32

const (
	ShapeBox ShapeType = iota
	ShapePlane
	ShapeSphere
	ShapeCylinder
)

// CollisionShape is a picking/collision volume attached to the skeleton.
type CollisionShape struct {
	NodeBase

	shapeType ShapeType
	vertices  [2]math.Vec3
	radius    float32
}

// NewCollisionShape creates an uncontained collision shape.
func NewCollisionShape(m *Model, name string, shapeType ShapeType) *CollisionShape {
	c := &CollisionShape{shapeType: shapeType}
	c.initNode(m, KindCollisionShape)
	c.name = name
	return c
}

func (c *CollisionShape) ShapeType() ShapeType       { return c.shapeType }
func (c *CollisionShape) SetShapeType(t ShapeType)   { setField(c.model, "Type", &c.shapeType, t) }
func (c *CollisionShape) Vertices() [2]math.Vec3     { return c.vertices }
func (c *CollisionShape) SetVertices(v [2]math.Vec3) { setField(c.model, "Vertices", &c.vertices, v) }
func (c *CollisionShape) Radius() float32            { return c.radius }
func (c *CollisionShape) SetRadius(r float32)        { setField(c.model, "BoundsRadius", &c.radius, r) }

// VertexCount returns how many of Vertices are meaningful for the shape type.
func (c *CollisionShape) VertexCount() int {
	if c.shapeType == ShapeSphere {
		return 1
	}
	return 2
}
