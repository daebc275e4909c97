// Package script builds models from YAML documents and replays edit lists
// against them with undo/redo.
package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/mdlx/pkg/math"
	"github.com/Faultbox/mdlx/pkg/mdlx"
)

// Script errors.
var (
	ErrUnknownOp     = errors.New("unknown op")
	ErrUnknownTarget = errors.New("unknown target")
	ErrBadValue      = errors.New("bad value")
	ErrNotFound      = errors.New("not found")
	ErrSession       = errors.New("session misuse")
)

// Document is the YAML form of a model plus the edits to run on it.
// Cross references are indices into the document's own lists; node
// references use the flat NodeId space.
type Document struct {
	Name            string        `yaml:"name"`
	AnimationFile   string        `yaml:"animation_file"`
	BlendTime       uint32        `yaml:"blend_time"`
	GlobalSequences []uint32      `yaml:"global_sequences"`
	Sequences       []SequenceDoc `yaml:"sequences"`
	Textures        []TextureDoc  `yaml:"textures"`
	Materials       []MaterialDoc `yaml:"materials"`
	Geosets         []GeosetDoc   `yaml:"geosets"`
	Bones           []NodeDoc     `yaml:"bones"`
	Lights          []NodeDoc     `yaml:"lights"`
	Helpers         []NodeDoc     `yaml:"helpers"`
	Attachments     []NodeDoc     `yaml:"attachments"`
	Events          []NodeDoc     `yaml:"events"`
	CollisionShapes []NodeDoc     `yaml:"collision_shapes"`
	Pivots          [][3]float32  `yaml:"pivots"`
	Edits           []Edit        `yaml:"edits"`
}

// SequenceDoc describes one named animation.
type SequenceDoc struct {
	Name       string   `yaml:"name"`
	Interval   [2]int32 `yaml:"interval"`
	NonLooping bool     `yaml:"non_looping"`
	MoveSpeed  float32  `yaml:"move_speed"`
	Rarity     float32  `yaml:"rarity"`
}

// TextureDoc describes one texture.
type TextureDoc struct {
	Path          string `yaml:"path"`
	ReplaceableId uint32 `yaml:"replaceable_id"`
}

// MaterialDoc describes a material and its layers.
type MaterialDoc struct {
	PriorityPlane int32      `yaml:"priority_plane"`
	Layers        []LayerDoc `yaml:"layers"`
}

// LayerDoc describes one material layer.
type LayerDoc struct {
	FilterMode string    `yaml:"filter_mode"`
	Texture    *int      `yaml:"texture"`
	Alpha      *TrackDoc `yaml:"alpha"`
}

// GeosetDoc describes a mesh. Face entries index Vertices, vertex groups
// index Groups and each group lists NodeIds.
type GeosetDoc struct {
	Material *int        `yaml:"material"`
	Vertices []VertexDoc `yaml:"vertices"`
	Faces    [][3]int    `yaml:"faces"`
	Groups   [][]int     `yaml:"groups"`
}

// VertexDoc describes one geoset vertex.
type VertexDoc struct {
	Position [3]float32 `yaml:"position"`
	Normal   [3]float32 `yaml:"normal"`
	TexCoord [2]float32 `yaml:"tex_coord"`
	Group    *int       `yaml:"group"`
}

// NodeDoc describes a node of any kind. Fields that do not apply to the
// node's kind are ignored.
type NodeDoc struct {
	Name        string    `yaml:"name"`
	Parent      *int      `yaml:"parent"`
	Translation *TrackDoc `yaml:"translation"`
	Rotation    *TrackDoc `yaml:"rotation"`
	Scaling     *TrackDoc `yaml:"scaling"`

	Geoset    *int         `yaml:"geoset"`     // bones
	LightType string       `yaml:"light_type"` // lights
	Path      string       `yaml:"path"`       // attachments
	Tracks    []int32      `yaml:"tracks"`     // events
	Shape     string       `yaml:"shape"`      // collision shapes
	Vertices  [][3]float32 `yaml:"vertices"`   // collision shapes
	Radius    float32      `yaml:"radius"`     // collision shapes
}

// TrackDoc describes an animator. An empty key list with a Static value
// makes the animator static.
type TrackDoc struct {
	Interpolation  string    `yaml:"interpolation"`
	GlobalSequence *int      `yaml:"global_sequence"`
	Static         []float32 `yaml:"static"`
	Keys           []KeyDoc  `yaml:"keys"`
}

// KeyDoc is one keyframe. Tangents are read for hermite and bezier tracks.
type KeyDoc struct {
	Time   int32     `yaml:"time"`
	Value  []float32 `yaml:"value"`
	InTan  []float32 `yaml:"in_tan"`
	OutTan []float32 `yaml:"out_tan"`
}

// Edit is one scripted operation. Which fields are read depends on Op.
type Edit struct {
	Op     string `yaml:"op"`
	Target string `yaml:"target"`
	Index  int    `yaml:"index"`
	Node   int    `yaml:"node"`
	Parent int    `yaml:"parent"`
	Value  string `yaml:"value"`
}

func (e Edit) String() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s[%d]", e.Op, e.Target, e.Index)
	}
	return e.Op
}

// Parse decodes a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	return &doc, nil
}

// ParseFile reads and decodes a document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func parseInterpolation(s string) (mdlx.Interpolation, error) {
	switch strings.ToLower(s) {
	case "", "linear":
		return mdlx.InterpolationLinear, nil
	case "step", "dontinterp", "none":
		return mdlx.InterpolationStep, nil
	case "hermite":
		return mdlx.InterpolationHermite, nil
	case "bezier":
		return mdlx.InterpolationBezier, nil
	}
	return 0, fmt.Errorf("%w: interpolation %q", ErrBadValue, s)
}

func parseFilterMode(s string) (mdlx.FilterMode, error) {
	for f := mdlx.FilterNone; f <= mdlx.FilterModulate2x; f++ {
		if strings.EqualFold(f.String(), s) {
			return f, nil
		}
	}
	if s == "" {
		return mdlx.FilterNone, nil
	}
	return 0, fmt.Errorf("%w: filter mode %q", ErrBadValue, s)
}

func parseLightType(s string) (mdlx.LightType, error) {
	switch strings.ToLower(s) {
	case "", "omnidirectional", "omni":
		return mdlx.LightOmnidirectional, nil
	case "directional":
		return mdlx.LightDirectional, nil
	case "ambient":
		return mdlx.LightAmbient, nil
	}
	return 0, fmt.Errorf("%w: light type %q", ErrBadValue, s)
}

func parseShape(s string) (mdlx.ShapeType, error) {
	switch strings.ToLower(s) {
	case "", "box":
		return mdlx.ShapeBox, nil
	case "plane":
		return mdlx.ShapePlane, nil
	case "sphere":
		return mdlx.ShapeSphere, nil
	case "cylinder":
		return mdlx.ShapeCylinder, nil
	}
	return 0, fmt.Errorf("%w: shape %q", ErrBadValue, s)
}

func toFloat(v []float32) (math.Float, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("%w: want 1 component, got %d", ErrBadValue, len(v))
	}
	return math.Float(v[0]), nil
}

func toVec3(v []float32) (math.Vec3, error) {
	if len(v) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: want 3 components, got %d", ErrBadValue, len(v))
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func toQuat(v []float32) (math.Quat, error) {
	if len(v) != 4 {
		return math.Quat{}, fmt.Errorf("%w: want 4 components, got %d", ErrBadValue, len(v))
	}
	return math.Quat{X: v[0], Y: v[1], Z: v[2], W: v[3]}, nil
}

func vec3(v [3]float32) math.Vec3 { return math.Vec3{X: v[0], Y: v[1], Z: v[2]} }
