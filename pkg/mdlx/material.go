package mdlx

import "github.com/Faultbox/mdlx/pkg/math"

// MaterialFlags is the material flag bitfield.
type MaterialFlags uint32

const (
	MaterialConstantColor MaterialFlags = 1 << iota
	_
	_
	_
	MaterialSortPrimsFarZ
	MaterialFullResolution
)

// Material is an ordered stack of layers.
type Material struct {
	ObjectBase

	priorityPlane int32
	flags         MaterialFlags
	layers        *Container[*Layer]
}

// NewMaterial creates an uncontained material with no layers.
func NewMaterial(m *Model) *Material {
	mat := &Material{layers: newContainer[*Layer](m, "Layers")}
	mat.init(m)
	return mat
}

func (mat *Material) PriorityPlane() int32 { return mat.priorityPlane }
func (mat *Material) SetPriorityPlane(p int32) {
	setField(mat.model, "PriorityPlane", &mat.priorityPlane, p)
}
func (mat *Material) Flags() MaterialFlags     { return mat.flags }
func (mat *Material) SetFlags(f MaterialFlags) { setField(mat.model, "Flags", &mat.flags, f) }

// Layers returns the material's layer stack.
func (mat *Material) Layers() *Container[*Layer] { return mat.layers }

func (mat *Material) subContainers() []anyContainer {
	return []anyContainer{mat.layers}
}

// FilterMode is a layer's blend mode.
type FilterMode uint32

const (
	FilterNone FilterMode = iota
	FilterTransparent
	FilterBlend
	FilterAdditive
	FilterAddAlpha
	FilterModulate
	FilterModulate2x
)

// String returns the filter mode name as written in the text format.
func (f FilterMode) String() string {
	switch f {
	case FilterNone:
		return "None"
	case FilterTransparent:
		return "Transparent"
	case FilterBlend:
		return "Blend"
	case FilterAdditive:
		return "Additive"
	case FilterAddAlpha:
		return "AddAlpha"
	case FilterModulate:
		return "Modulate"
	case FilterModulate2x:
		return "Modulate2x"
	default:
		return "Unknown"
	}
}

// LayerShading is the layer shading flag bitfield.
type LayerShading uint32

const (
	ShadingUnshaded LayerShading = 1 << iota
	ShadingSphereEnvMap
	_
	_
	ShadingTwoSided
	ShadingUnfogged
	ShadingNoDepthTest
	ShadingNoDepthSet
)

// Layer is one texture pass of a material.
type Layer struct {
	ObjectBase

	filterMode       FilterMode
	shading          LayerShading
	coordId          uint32
	texture          *Reference[*Texture]
	textureAnimation *Reference[*TextureAnimation]
	alpha            *Animator[math.Float]
	textureId        *Animator[math.Float]
}

// NewLayer creates an uncontained layer.
func NewLayer(m *Model) *Layer {
	l := &Layer{
		texture:          NewReference[*Texture](m),
		textureAnimation: NewReference[*TextureAnimation](m),
		alpha:            NewAnimator(m, "Alpha", math.Float(1)),
		textureId:        NewAnimator(m, "TextureId", math.Float(0)),
	}
	l.init(m)
	return l
}

func (l *Layer) FilterMode() FilterMode        { return l.filterMode }
func (l *Layer) SetFilterMode(f FilterMode)    { setField(l.model, "FilterMode", &l.filterMode, f) }
func (l *Layer) Shading() LayerShading         { return l.shading }
func (l *Layer) SetShading(s LayerShading)     { setField(l.model, "Shading", &l.shading, s) }
func (l *Layer) CoordId() uint32               { return l.coordId }
func (l *Layer) SetCoordId(id uint32)          { setField(l.model, "CoordId", &l.coordId, id) }
func (l *Layer) Texture() *Reference[*Texture] { return l.texture }
func (l *Layer) TextureAnimation() *Reference[*TextureAnimation] {
	return l.textureAnimation
}
func (l *Layer) Alpha() *Animator[math.Float]     { return l.alpha }
func (l *Layer) TextureId() *Animator[math.Float] { return l.textureId }
