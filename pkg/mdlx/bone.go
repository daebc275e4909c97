package mdlx

import "github.com/Faultbox/mdlx/pkg/math"

// Bone is a skeleton node that geoset vertices can be skinned to.
type Bone struct {
	NodeBase

	geoset          *Reference[*Geoset]
	geosetAnimation *Reference[*GeosetAnimation]
}

// NewBone creates an uncontained bone.
func NewBone(m *Model, name string) *Bone {
	b := &Bone{
		geoset:          NewReference[*Geoset](m),
		geosetAnimation: NewReference[*GeosetAnimation](m),
	}
	b.initNode(m, KindBone)
	b.name = name
	return b
}

func (b *Bone) Geoset() *Reference[*Geoset]                   { return b.geoset }
func (b *Bone) GeosetAnimation() *Reference[*GeosetAnimation] { return b.geosetAnimation }

// Helper is a transform-only node.
type Helper struct {
	NodeBase
}

// NewHelper creates an uncontained helper.
func NewHelper(m *Model, name string) *Helper {
	h := &Helper{}
	h.initNode(m, KindHelper)
	h.name = name
	return h
}

// Attachment marks a point where other models can be attached.
type Attachment struct {
	NodeBase

	path         string
	attachmentId uint32
	visibility   *Animator[math.Float]
}

// NewAttachment creates an uncontained attachment.
func NewAttachment(m *Model, name string) *Attachment {
	a := &Attachment{visibility: NewAnimator(m, "Visibility", math.Float(1))}
	a.initNode(m, KindAttachment)
	a.name = name
	return a
}

func (a *Attachment) Path() string             { return a.path }
func (a *Attachment) SetPath(p string)         { setField(a.model, "Path", &a.path, p) }
func (a *Attachment) AttachmentId() uint32     { return a.attachmentId }
func (a *Attachment) SetAttachmentId(v uint32) { setField(a.model, "AttachmentId", &a.attachmentId, v) }
func (a *Attachment) Visibility() *Animator[math.Float] {
	return a.visibility
}

// LightType is the kind of light source.
type LightType uint32

const (
	LightOmnidirectional LightType = iota
	LightDirectional
	LightAmbient
)

// Light is a light source node.
type Light struct {
	NodeBase

	lightType        LightType
	attenuationStart *Animator[math.Float]
	attenuationEnd   *Animator[math.Float]
	color            *Animator[math.Vec3]
	intensity        *Animator[math.Float]
	ambientColor     *Animator[math.Vec3]
	ambientIntensity *Animator[math.Float]
	visibility       *Animator[math.Float]
}

// NewLight creates an uncontained light.
func NewLight(m *Model, name string) *Light {
	l := &Light{
		attenuationStart: NewAnimator(m, "AttenuationStart", math.Float(0)),
		attenuationEnd:   NewAnimator(m, "AttenuationEnd", math.Float(0)),
		color:            NewAnimator(m, "Color", math.Vec3One),
		intensity:        NewAnimator(m, "Intensity", math.Float(1)),
		ambientColor:     NewAnimator(m, "AmbColor", math.Vec3One),
		ambientIntensity: NewAnimator(m, "AmbIntensity", math.Float(0)),
		visibility:       NewAnimator(m, "Visibility", math.Float(1)),
	}
	l.initNode(m, KindLight)
	l.name = name
	return l
}

func (l *Light) LightType() LightType                    { return l.lightType }
func (l *Light) SetLightType(t LightType)                { setField(l.model, "LightType", &l.lightType, t) }
func (l *Light) AttenuationStart() *Animator[math.Float] { return l.attenuationStart }
func (l *Light) AttenuationEnd() *Animator[math.Float]   { return l.attenuationEnd }
func (l *Light) Color() *Animator[math.Vec3]             { return l.color }
func (l *Light) Intensity() *Animator[math.Float]        { return l.intensity }
func (l *Light) AmbientColor() *Animator[math.Vec3]      { return l.ambientColor }
func (l *Light) AmbientIntensity() *Animator[math.Float] { return l.ambientIntensity }
func (l *Light) Visibility() *Animator[math.Float]       { return l.visibility }
