package mdlx

import "github.com/Faultbox/mdlx/pkg/math"

// Camera is a named viewpoint used for portraits.
type Camera struct {
	ObjectBase

	name              string
	position          math.Vec3
	target            math.Vec3
	fieldOfView       float32
	nearClip, farClip float32
	translation       *Animator[math.Vec3]
	rotation          *Animator[math.Float]
	targetTranslation *Animator[math.Vec3]
}

// NewCamera creates an uncontained camera.
func NewCamera(m *Model, name string) *Camera {
	c := &Camera{
		name:              name,
		translation:       NewAnimator(m, "Translation", math.Vec3{}),
		rotation:          NewAnimator(m, "Rotation", math.Float(0)),
		targetTranslation: NewAnimator(m, "TargetTranslation", math.Vec3{}),
	}
	c.init(m)
	return c
}

func (c *Camera) Name() string             { return c.name }
func (c *Camera) SetName(name string)      { setField(c.model, "Name", &c.name, name) }
func (c *Camera) Position() math.Vec3      { return c.position }
func (c *Camera) SetPosition(p math.Vec3)  { setField(c.model, "Position", &c.position, p) }
func (c *Camera) Target() math.Vec3        { return c.target }
func (c *Camera) SetTarget(p math.Vec3)    { setField(c.model, "Target", &c.target, p) }
func (c *Camera) FieldOfView() float32     { return c.fieldOfView }
func (c *Camera) SetFieldOfView(v float32) { setField(c.model, "FieldOfView", &c.fieldOfView, v) }
func (c *Camera) NearClip() float32        { return c.nearClip }
func (c *Camera) SetNearClip(v float32)    { setField(c.model, "NearClip", &c.nearClip, v) }
func (c *Camera) FarClip() float32         { return c.farClip }
func (c *Camera) SetFarClip(v float32)     { setField(c.model, "FarClip", &c.farClip, v) }

func (c *Camera) Translation() *Animator[math.Vec3]       { return c.translation }
func (c *Camera) Rotation() *Animator[math.Float]         { return c.rotation }
func (c *Camera) TargetTranslation() *Animator[math.Vec3] { return c.targetTranslation }
