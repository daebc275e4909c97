package mdlx

import "github.com/Faultbox/mdlx/pkg/math"

// TextureFlags controls texture wrapping.
type TextureFlags uint32

const (
	TextureWrapWidth TextureFlags = 1 << iota
	TextureWrapHeight
)

// Texture is an image used by material layers and particle emitters.
type Texture struct {
	ObjectBase

	path          string
	replaceableId uint32
	flags         TextureFlags
}

// NewTexture creates an uncontained texture.
func NewTexture(m *Model, path string) *Texture {
	t := &Texture{path: path}
	t.init(m)
	return t
}

func (t *Texture) Path() string          { return t.path }
func (t *Texture) SetPath(p string)      { setField(t.model, "Path", &t.path, p) }
func (t *Texture) ReplaceableId() uint32 { return t.replaceableId }
func (t *Texture) SetReplaceableId(id uint32) {
	setField(t.model, "ReplaceableId", &t.replaceableId, id)
}
func (t *Texture) Flags() TextureFlags     { return t.flags }
func (t *Texture) SetFlags(f TextureFlags) { setField(t.model, "Flags", &t.flags, f) }

// TextureAnimation animates texture coordinates of the layers using it.
type TextureAnimation struct {
	ObjectBase

	translation *Animator[math.Vec3]
	rotation    *Animator[math.Quat]
	scaling     *Animator[math.Vec3]
}

// NewTextureAnimation creates an uncontained texture animation.
func NewTextureAnimation(m *Model) *TextureAnimation {
	ta := &TextureAnimation{
		translation: NewAnimator(m, "Translation", math.Vec3{}),
		rotation:    NewAnimator(m, "Rotation", math.QuatIdentity()),
		scaling:     NewAnimator(m, "Scaling", math.Vec3One),
	}
	ta.init(m)
	return ta
}

func (ta *TextureAnimation) Translation() *Animator[math.Vec3] { return ta.translation }
func (ta *TextureAnimation) Rotation() *Animator[math.Quat]    { return ta.rotation }
func (ta *TextureAnimation) Scaling() *Animator[math.Vec3]     { return ta.scaling }
