package script

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/mdlx/pkg/math"
	"github.com/Faultbox/mdlx/pkg/mdlx"
)

// BuildStats summarizes reference resolution during Build.
type BuildStats struct {
	Resolved int
	Skipped  int
}

type builder struct {
	m   *mdlx.Model
	att mdlx.Attacher
}

// Build creates a model from doc. Index references may point forward; they
// are queued on an Attacher and resolved once every entity exists.
// References whose index is out of range are left detached and counted in
// BuildStats.Skipped. Edits are not run.
func Build(doc *Document, opts ...mdlx.Option) (*mdlx.Model, BuildStats, error) {
	b := &builder{m: mdlx.NewModel(opts...)}
	m := b.m

	m.SetName(doc.Name)
	m.SetAnimationFile(doc.AnimationFile)
	m.SetBlendTime(doc.BlendTime)

	for _, d := range doc.GlobalSequences {
		b.add(m.GlobalSequences().Add(mdlx.NewGlobalSequence(m, d)))
	}
	for _, sd := range doc.Sequences {
		s := mdlx.NewSequence(m)
		s.SetName(sd.Name)
		s.SetInterval(mdlx.Interval{Start: sd.Interval[0], End: sd.Interval[1]})
		s.SetNonLooping(sd.NonLooping)
		s.SetMoveSpeed(sd.MoveSpeed)
		s.SetRarity(sd.Rarity)
		b.add(m.Sequences().Add(s))
	}
	for _, td := range doc.Textures {
		t := mdlx.NewTexture(m, td.Path)
		t.SetReplaceableId(td.ReplaceableId)
		b.add(m.Textures().Add(t))
	}
	for i, md := range doc.Materials {
		if err := b.material(md); err != nil {
			return nil, BuildStats{}, fmt.Errorf("material %d: %w", i, err)
		}
	}
	for _, gd := range doc.Geosets {
		b.geoset(gd)
	}

	nodeLists := []struct {
		name  string
		docs  []NodeDoc
		build func(NodeDoc) (mdlx.Node, error)
	}{
		{"bones", doc.Bones, b.bone},
		{"lights", doc.Lights, b.light},
		{"helpers", doc.Helpers, b.helper},
		{"attachments", doc.Attachments, b.attachment},
		{"events", doc.Events, b.event},
		{"collision_shapes", doc.CollisionShapes, b.collisionShape},
	}
	for _, nl := range nodeLists {
		for i, nd := range nl.docs {
			if _, err := nl.build(nd); err != nil {
				return nil, BuildStats{}, fmt.Errorf("%s %d (%s): %w", nl.name, i, nd.Name, err)
			}
		}
	}

	for _, p := range doc.Pivots {
		b.add(m.PivotPoints().Add(mdlx.NewPivotPoint(m, vec3(p))))
	}

	pending := b.att.Pending()
	resolved, skipped := b.att.Resolve()
	m.Logger().Debug("model built",
		zap.String("name", doc.Name),
		zap.Int("references", pending),
		zap.Int("nodes", m.Nodes().Len()))
	return m, BuildStats{Resolved: resolved, Skipped: skipped}, nil
}

// add checks the result of adding a freshly created object to its
// container. Such an add only fails on a programming error.
func (b *builder) add(err error) {
	if err != nil {
		panic(err)
	}
}

func (b *builder) material(md MaterialDoc) error {
	m := b.m
	mat := mdlx.NewMaterial(m)
	mat.SetPriorityPlane(md.PriorityPlane)
	for j, ld := range md.Layers {
		l := mdlx.NewLayer(m)
		fm, err := parseFilterMode(ld.FilterMode)
		if err != nil {
			return fmt.Errorf("layer %d: %w", j, err)
		}
		l.SetFilterMode(fm)
		if ld.Texture != nil {
			mdlx.RequestObject(&b.att, m.Textures(), l.Texture(), *ld.Texture)
		}
		if err := applyTrack(b, l.Alpha(), ld.Alpha, toFloat); err != nil {
			return fmt.Errorf("layer %d alpha: %w", j, err)
		}
		b.add(mat.Layers().Add(l))
	}
	b.add(m.Materials().Add(mat))
	return nil
}

func (b *builder) geoset(gd GeosetDoc) {
	m := b.m
	g := mdlx.NewGeoset(m)
	if gd.Material != nil {
		mdlx.RequestObject(&b.att, m.Materials(), g.Material(), *gd.Material)
	}
	for _, vd := range gd.Vertices {
		v := mdlx.NewGeosetVertex(m, vec3(vd.Position), vec3(vd.Normal),
			math.Vec2{X: vd.TexCoord[0], Y: vd.TexCoord[1]})
		if vd.Group != nil {
			mdlx.RequestObject(&b.att, g.Groups(), v.Group(), *vd.Group)
		}
		b.add(g.Vertices().Add(v))
	}
	for _, fd := range gd.Faces {
		f := mdlx.NewFace(m)
		for k, vi := range fd {
			mdlx.RequestObject(&b.att, g.Vertices(), f.Vertex(k), vi)
		}
		b.add(g.Faces().Add(f))
	}
	for _, ids := range gd.Groups {
		grp := mdlx.NewGeosetGroup(m)
		for _, id := range ids {
			gm := mdlx.NewGroupMatrix(m)
			b.att.RequestNode(m, gm.Node(), mdlx.NodeId(id))
			b.add(grp.Matrices().Add(gm))
		}
		b.add(g.Groups().Add(grp))
	}
	b.add(m.Geosets().Add(g))
}

// node applies the fields shared by every node kind.
func (b *builder) node(n *mdlx.NodeBase, nd NodeDoc) error {
	if nd.Parent != nil {
		b.att.RequestNode(b.m, n.Parent(), mdlx.NodeId(*nd.Parent))
	}
	if err := applyTrack(b, n.Translation(), nd.Translation, toVec3); err != nil {
		return fmt.Errorf("translation: %w", err)
	}
	if err := applyTrack(b, n.Rotation(), nd.Rotation, toQuat); err != nil {
		return fmt.Errorf("rotation: %w", err)
	}
	if err := applyTrack(b, n.Scaling(), nd.Scaling, toVec3); err != nil {
		return fmt.Errorf("scaling: %w", err)
	}
	return nil
}

func (b *builder) bone(nd NodeDoc) (mdlx.Node, error) {
	bone := mdlx.NewBone(b.m, nd.Name)
	if err := b.node(&bone.NodeBase, nd); err != nil {
		return nil, err
	}
	if nd.Geoset != nil {
		mdlx.RequestObject(&b.att, b.m.Geosets(), bone.Geoset(), *nd.Geoset)
	}
	b.add(b.m.Bones().Add(bone))
	return bone, nil
}

func (b *builder) light(nd NodeDoc) (mdlx.Node, error) {
	l := mdlx.NewLight(b.m, nd.Name)
	if err := b.node(&l.NodeBase, nd); err != nil {
		return nil, err
	}
	lt, err := parseLightType(nd.LightType)
	if err != nil {
		return nil, err
	}
	l.SetLightType(lt)
	b.add(b.m.Lights().Add(l))
	return l, nil
}

func (b *builder) helper(nd NodeDoc) (mdlx.Node, error) {
	h := mdlx.NewHelper(b.m, nd.Name)
	if err := b.node(&h.NodeBase, nd); err != nil {
		return nil, err
	}
	b.add(b.m.Helpers().Add(h))
	return h, nil
}

func (b *builder) attachment(nd NodeDoc) (mdlx.Node, error) {
	a := mdlx.NewAttachment(b.m, nd.Name)
	if err := b.node(&a.NodeBase, nd); err != nil {
		return nil, err
	}
	a.SetPath(nd.Path)
	b.add(b.m.Attachments().Add(a))
	return a, nil
}

func (b *builder) event(nd NodeDoc) (mdlx.Node, error) {
	e := mdlx.NewEvent(b.m, nd.Name)
	if err := b.node(&e.NodeBase, nd); err != nil {
		return nil, err
	}
	e.SetTracks(nd.Tracks)
	b.add(b.m.Events().Add(e))
	return e, nil
}

func (b *builder) collisionShape(nd NodeDoc) (mdlx.Node, error) {
	st, err := parseShape(nd.Shape)
	if err != nil {
		return nil, err
	}
	c := mdlx.NewCollisionShape(b.m, nd.Name, st)
	if err := b.node(&c.NodeBase, nd); err != nil {
		return nil, err
	}
	if len(nd.Vertices) > 2 {
		return nil, fmt.Errorf("%w: %d collision vertices", ErrBadValue, len(nd.Vertices))
	}
	var vs [2]math.Vec3
	for i, v := range nd.Vertices {
		vs[i] = vec3(v)
	}
	c.SetVertices(vs)
	c.SetRadius(nd.Radius)
	b.add(b.m.CollisionShapes().Add(c))
	return c, nil
}

// applyTrack configures a from td. A nil td leaves the default static value.
func applyTrack[T math.Blendable[T]](b *builder, a *mdlx.Animator[T], td *TrackDoc, conv func([]float32) (T, error)) error {
	if td == nil {
		return nil
	}
	if len(td.Keys) == 0 {
		if td.Static == nil {
			return nil
		}
		v, err := conv(td.Static)
		if err != nil {
			return err
		}
		a.MakeStatic(v)
		return nil
	}

	mode, err := parseInterpolation(td.Interpolation)
	if err != nil {
		return err
	}
	a.MakeAnimated(mode)
	for _, kd := range td.Keys {
		kf := mdlx.Keyframe[T]{Time: kd.Time}
		if kf.Value, err = conv(kd.Value); err != nil {
			return fmt.Errorf("key %d: %w", kd.Time, err)
		}
		if mode.HasTangents() {
			if kf.InTan, err = conv(kd.InTan); err != nil {
				return fmt.Errorf("key %d in_tan: %w", kd.Time, err)
			}
			if kf.OutTan, err = conv(kd.OutTan); err != nil {
				return fmt.Errorf("key %d out_tan: %w", kd.Time, err)
			}
		}
		if err := a.Insert(kf); err != nil {
			return err
		}
	}
	if td.GlobalSequence != nil {
		mdlx.RequestObject(&b.att, b.m.GlobalSequences(), a.GlobalSequence(), *td.GlobalSequence)
	}
	return nil
}
