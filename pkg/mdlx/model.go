// Package mdlx is the in-memory object model for animated MDX/MDL assets:
// typed entities held in ordered containers, reciprocally tracked
// references between them, a command log for undo and redo, deferred
// resolution of index-based references during decoding, and keyframe
// interpolation for animated attributes.
//
// A Model and everything it owns is a single unit of mutual exclusion;
// callers sharing one across goroutines must serialize access.
package mdlx

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/mdlx/pkg/math"
)

// Extent is a bounding volume.
type Extent struct {
	BoundsRadius float32
	Min          math.Vec3
	Max          math.Vec3
}

// Model is the root of one asset. It owns every container.
type Model struct {
	id       uuid.UUID
	log      *zap.Logger
	backrefs backrefIndex
	session  *CompositeCommand

	name          string
	animationFile string
	formatVersion uint32
	blendTime     uint32
	extent        Extent

	sequences         *Container[*Sequence]
	globalSequences   *Container[*GlobalSequence]
	textures          *Container[*Texture]
	materials         *Container[*Material]
	textureAnimations *Container[*TextureAnimation]
	geosets           *Container[*Geoset]
	geosetAnimations  *Container[*GeosetAnimation]
	bones             *Container[*Bone]
	lights            *Container[*Light]
	helpers           *Container[*Helper]
	attachments       *Container[*Attachment]
	pivotPoints       *Container[*PivotPoint]
	particleEmitters  *Container[*ParticleEmitter]
	particleEmitter2s *Container[*ParticleEmitter2]
	ribbonEmitters    *Container[*RibbonEmitter]
	cameras           *Container[*Camera]
	events            *Container[*Event]
	collisionShapes   *Container[*CollisionShape]

	nodeContainers [nodeKindCount]anyContainer
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithID overrides the generated model id.
func WithID(id uuid.UUID) Option {
	return func(m *Model) { m.id = id }
}

// DefaultFormatVersion is the version written by current tools.
const DefaultFormatVersion = 800

// NewModel creates an empty model.
func NewModel(opts ...Option) *Model {
	m := &Model{
		id:            uuid.New(),
		log:           zap.NewNop(),
		formatVersion: DefaultFormatVersion,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(zap.Stringer("model", m.id))

	m.sequences = newContainer[*Sequence](m, "Sequences")
	m.globalSequences = newContainer[*GlobalSequence](m, "GlobalSequences")
	m.textures = newContainer[*Texture](m, "Textures")
	m.materials = newContainer[*Material](m, "Materials")
	m.textureAnimations = newContainer[*TextureAnimation](m, "TextureAnimations")
	m.geosets = newContainer[*Geoset](m, "Geosets")
	m.geosetAnimations = newContainer[*GeosetAnimation](m, "GeosetAnimations")
	m.bones = newContainer[*Bone](m, "Bones")
	m.lights = newContainer[*Light](m, "Lights")
	m.helpers = newContainer[*Helper](m, "Helpers")
	m.attachments = newContainer[*Attachment](m, "Attachments")
	m.pivotPoints = newContainer[*PivotPoint](m, "PivotPoints")
	m.particleEmitters = newContainer[*ParticleEmitter](m, "ParticleEmitters")
	m.particleEmitter2s = newContainer[*ParticleEmitter2](m, "ParticleEmitter2s")
	m.ribbonEmitters = newContainer[*RibbonEmitter](m, "RibbonEmitters")
	m.cameras = newContainer[*Camera](m, "Cameras")
	m.events = newContainer[*Event](m, "Events")
	m.collisionShapes = newContainer[*CollisionShape](m, "CollisionShapes")

	m.nodeContainers = [nodeKindCount]anyContainer{
		KindBone:             m.bones,
		KindLight:            m.lights,
		KindHelper:           m.helpers,
		KindAttachment:       m.attachments,
		KindParticleEmitter:  m.particleEmitters,
		KindParticleEmitter2: m.particleEmitter2s,
		KindRibbonEmitter:    m.ribbonEmitters,
		KindEvent:            m.events,
		KindCollisionShape:   m.collisionShapes,
	}
	return m
}

// ID returns the model's identity, used in log fields.
func (m *Model) ID() uuid.UUID { return m.id }

// Logger returns the model's logger.
func (m *Model) Logger() *zap.Logger { return m.log }

func (m *Model) Name() string              { return m.name }
func (m *Model) SetName(name string)       { setField(m, "Name", &m.name, name) }
func (m *Model) AnimationFile() string     { return m.animationFile }
func (m *Model) SetAnimationFile(p string) { setField(m, "AnimationFile", &m.animationFile, p) }
func (m *Model) FormatVersion() uint32     { return m.formatVersion }
func (m *Model) SetFormatVersion(v uint32) { setField(m, "FormatVersion", &m.formatVersion, v) }
func (m *Model) BlendTime() uint32         { return m.blendTime }
func (m *Model) SetBlendTime(t uint32)     { setField(m, "BlendTime", &m.blendTime, t) }
func (m *Model) Extent() Extent            { return m.extent }
func (m *Model) SetExtent(e Extent)        { setField(m, "Extent", &m.extent, e) }

func (m *Model) Sequences() *Container[*Sequence]                 { return m.sequences }
func (m *Model) GlobalSequences() *Container[*GlobalSequence]     { return m.globalSequences }
func (m *Model) Textures() *Container[*Texture]                   { return m.textures }
func (m *Model) Materials() *Container[*Material]                 { return m.materials }
func (m *Model) TextureAnimations() *Container[*TextureAnimation] { return m.textureAnimations }
func (m *Model) Geosets() *Container[*Geoset]                     { return m.geosets }
func (m *Model) GeosetAnimations() *Container[*GeosetAnimation]   { return m.geosetAnimations }
func (m *Model) Bones() *Container[*Bone]                         { return m.bones }
func (m *Model) Lights() *Container[*Light]                       { return m.lights }
func (m *Model) Helpers() *Container[*Helper]                     { return m.helpers }
func (m *Model) Attachments() *Container[*Attachment]             { return m.attachments }
func (m *Model) PivotPoints() *Container[*PivotPoint]             { return m.pivotPoints }
func (m *Model) ParticleEmitters() *Container[*ParticleEmitter]   { return m.particleEmitters }
func (m *Model) ParticleEmitter2s() *Container[*ParticleEmitter2] { return m.particleEmitter2s }
func (m *Model) RibbonEmitters() *Container[*RibbonEmitter]       { return m.ribbonEmitters }
func (m *Model) Cameras() *Container[*Camera]                     { return m.cameras }
func (m *Model) Events() *Container[*Event]                       { return m.events }
func (m *Model) CollisionShapes() *Container[*CollisionShape]     { return m.collisionShapes }

// IncomingReferences lists every reference pointing at o.
func (m *Model) IncomingReferences(o Object) []AnyReference {
	return m.backrefs.list(o.object())
}

// IncomingNodeReferences lists the node references pointing at n.
func (m *Model) IncomingNodeReferences(n Node) []AnyReference {
	var out []AnyReference
	for _, r := range m.backrefs.list(n.object()) {
		if r.IsNodeReference() {
			out = append(out, r)
		}
	}
	return out
}

// SequenceByName returns the first sequence with the given name.
func (m *Model) SequenceByName(name string) (*Sequence, bool) {
	for _, s := range m.sequences.items {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// ContainerStat is the size of one top-level container.
type ContainerStat struct {
	Name string
	Len  int
}

// Stats returns the sizes of all top-level containers in declaration order.
func (m *Model) Stats() []ContainerStat {
	cs := m.containers()
	out := make([]ContainerStat, len(cs))
	for i, c := range cs {
		out[i] = ContainerStat{Name: c.Name(), Len: c.Len()}
	}
	return out
}

// ReferenceCount returns the number of attached references in the model.
func (m *Model) ReferenceCount() int { return m.backrefs.total() }

func (m *Model) containers() []anyContainer {
	return []anyContainer{
		m.sequences, m.globalSequences, m.textures, m.materials,
		m.textureAnimations, m.geosets, m.geosetAnimations, m.bones,
		m.lights, m.helpers, m.attachments, m.pivotPoints,
		m.particleEmitters, m.particleEmitter2s, m.ribbonEmitters,
		m.cameras, m.events, m.collisionShapes,
	}
}
