package mdlx

import "github.com/Faultbox/mdlx/pkg/math"

// ParticleEmitter spawns model-based particles.
type ParticleEmitter struct {
	NodeBase

	path            string
	emissionRate    *Animator[math.Float]
	gravity         *Animator[math.Float]
	longitude       *Animator[math.Float]
	latitude        *Animator[math.Float]
	lifespan        *Animator[math.Float]
	initialVelocity *Animator[math.Float]
	visibility      *Animator[math.Float]
}

// NewParticleEmitter creates an uncontained particle emitter.
func NewParticleEmitter(m *Model, name string) *ParticleEmitter {
	p := &ParticleEmitter{
		emissionRate:    NewAnimator(m, "EmissionRate", math.Float(0)),
		gravity:         NewAnimator(m, "Gravity", math.Float(0)),
		longitude:       NewAnimator(m, "Longitude", math.Float(0)),
		latitude:        NewAnimator(m, "Latitude", math.Float(0)),
		lifespan:        NewAnimator(m, "LifeSpan", math.Float(0)),
		initialVelocity: NewAnimator(m, "InitVelocity", math.Float(0)),
		visibility:      NewAnimator(m, "Visibility", math.Float(1)),
	}
	p.initNode(m, KindParticleEmitter)
	p.name = name
	return p
}

func (p *ParticleEmitter) Path() string                           { return p.path }
func (p *ParticleEmitter) SetPath(path string)                    { setField(p.model, "Path", &p.path, path) }
func (p *ParticleEmitter) EmissionRate() *Animator[math.Float]    { return p.emissionRate }
func (p *ParticleEmitter) Gravity() *Animator[math.Float]         { return p.gravity }
func (p *ParticleEmitter) Longitude() *Animator[math.Float]       { return p.longitude }
func (p *ParticleEmitter) Latitude() *Animator[math.Float]        { return p.latitude }
func (p *ParticleEmitter) Lifespan() *Animator[math.Float]        { return p.lifespan }
func (p *ParticleEmitter) InitialVelocity() *Animator[math.Float] { return p.initialVelocity }
func (p *ParticleEmitter) Visibility() *Animator[math.Float]      { return p.visibility }

// Segment is one of the three color stages of a ParticleEmitter2 particle.
type Segment struct {
	Color   math.Vec3
	Alpha   uint8
	Scaling float32
}

// ParticleEmitter2 spawns textured billboard particles.
type ParticleEmitter2 struct {
	NodeBase

	texture      *Reference[*Texture]
	filterMode   FilterMode
	rows         uint32
	columns      uint32
	lifespan     float32
	segments     [3]Segment
	speed        *Animator[math.Float]
	variation    *Animator[math.Float]
	latitude     *Animator[math.Float]
	gravity      *Animator[math.Float]
	emissionRate *Animator[math.Float]
	width        *Animator[math.Float]
	length       *Animator[math.Float]
	visibility   *Animator[math.Float]
}

// NewParticleEmitter2 creates an uncontained particle emitter.
func NewParticleEmitter2(m *Model, name string) *ParticleEmitter2 {
	p := &ParticleEmitter2{
		texture:      NewReference[*Texture](m),
		rows:         1,
		columns:      1,
		speed:        NewAnimator(m, "Speed", math.Float(0)),
		variation:    NewAnimator(m, "Variation", math.Float(0)),
		latitude:     NewAnimator(m, "Latitude", math.Float(0)),
		gravity:      NewAnimator(m, "Gravity", math.Float(0)),
		emissionRate: NewAnimator(m, "EmissionRate", math.Float(0)),
		width:        NewAnimator(m, "Width", math.Float(0)),
		length:       NewAnimator(m, "Length", math.Float(0)),
		visibility:   NewAnimator(m, "Visibility", math.Float(1)),
	}
	p.initNode(m, KindParticleEmitter2)
	p.name = name
	return p
}

func (p *ParticleEmitter2) Texture() *Reference[*Texture] { return p.texture }
func (p *ParticleEmitter2) FilterMode() FilterMode        { return p.filterMode }
func (p *ParticleEmitter2) SetFilterMode(f FilterMode) {
	setField(p.model, "FilterMode", &p.filterMode, f)
}
func (p *ParticleEmitter2) Rows() uint32          { return p.rows }
func (p *ParticleEmitter2) SetRows(v uint32)      { setField(p.model, "Rows", &p.rows, v) }
func (p *ParticleEmitter2) Columns() uint32       { return p.columns }
func (p *ParticleEmitter2) SetColumns(v uint32)   { setField(p.model, "Columns", &p.columns, v) }
func (p *ParticleEmitter2) Lifespan() float32     { return p.lifespan }
func (p *ParticleEmitter2) SetLifespan(v float32) { setField(p.model, "LifeSpan", &p.lifespan, v) }
func (p *ParticleEmitter2) Segments() [3]Segment  { return p.segments }
func (p *ParticleEmitter2) SetSegments(s [3]Segment) {
	setField(p.model, "Segments", &p.segments, s)
}
func (p *ParticleEmitter2) Speed() *Animator[math.Float]        { return p.speed }
func (p *ParticleEmitter2) Variation() *Animator[math.Float]    { return p.variation }
func (p *ParticleEmitter2) Latitude() *Animator[math.Float]     { return p.latitude }
func (p *ParticleEmitter2) Gravity() *Animator[math.Float]      { return p.gravity }
func (p *ParticleEmitter2) EmissionRate() *Animator[math.Float] { return p.emissionRate }
func (p *ParticleEmitter2) Width() *Animator[math.Float]        { return p.width }
func (p *ParticleEmitter2) Length() *Animator[math.Float]       { return p.length }
func (p *ParticleEmitter2) Visibility() *Animator[math.Float]   { return p.visibility }

// RibbonEmitter trails a textured ribbon behind the node.
type RibbonEmitter struct {
	NodeBase

	material     *Reference[*Material]
	emissionRate uint32
	lifespan     float32
	gravity      float32
	rows         uint32
	columns      uint32
	heightAbove  *Animator[math.Float]
	heightBelow  *Animator[math.Float]
	alpha        *Animator[math.Float]
	color        *Animator[math.Vec3]
	textureSlot  *Animator[math.Float]
	visibility   *Animator[math.Float]
}

// NewRibbonEmitter creates an uncontained ribbon emitter.
func NewRibbonEmitter(m *Model, name string) *RibbonEmitter {
	r := &RibbonEmitter{
		material:    NewReference[*Material](m),
		rows:        1,
		columns:     1,
		heightAbove: NewAnimator(m, "HeightAbove", math.Float(0)),
		heightBelow: NewAnimator(m, "HeightBelow", math.Float(0)),
		alpha:       NewAnimator(m, "Alpha", math.Float(1)),
		color:       NewAnimator(m, "Color", math.Vec3One),
		textureSlot: NewAnimator(m, "TextureSlot", math.Float(0)),
		visibility:  NewAnimator(m, "Visibility", math.Float(1)),
	}
	r.initNode(m, KindRibbonEmitter)
	r.name = name
	return r
}

func (r *RibbonEmitter) Material() *Reference[*Material] { return r.material }
func (r *RibbonEmitter) EmissionRate() uint32            { return r.emissionRate }
func (r *RibbonEmitter) SetEmissionRate(v uint32) {
	setField(r.model, "EmissionRate", &r.emissionRate, v)
}
func (r *RibbonEmitter) Lifespan() float32                  { return r.lifespan }
func (r *RibbonEmitter) SetLifespan(v float32)              { setField(r.model, "LifeSpan", &r.lifespan, v) }
func (r *RibbonEmitter) Gravity() float32                   { return r.gravity }
func (r *RibbonEmitter) SetGravity(v float32)               { setField(r.model, "Gravity", &r.gravity, v) }
func (r *RibbonEmitter) Rows() uint32                       { return r.rows }
func (r *RibbonEmitter) SetRows(v uint32)                   { setField(r.model, "Rows", &r.rows, v) }
func (r *RibbonEmitter) Columns() uint32                    { return r.columns }
func (r *RibbonEmitter) SetColumns(v uint32)                { setField(r.model, "Columns", &r.columns, v) }
func (r *RibbonEmitter) HeightAbove() *Animator[math.Float] { return r.heightAbove }
func (r *RibbonEmitter) HeightBelow() *Animator[math.Float] { return r.heightBelow }
func (r *RibbonEmitter) Alpha() *Animator[math.Float]       { return r.alpha }
func (r *RibbonEmitter) Color() *Animator[math.Vec3]        { return r.color }
func (r *RibbonEmitter) TextureSlot() *Animator[math.Float] { return r.textureSlot }
func (r *RibbonEmitter) Visibility() *Animator[math.Float]  { return r.visibility }
