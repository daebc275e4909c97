package mdlx

// Sequence is a named animation clip on the model's shared timeline.
type Sequence struct {
	ObjectBase

	name       string
	interval   Interval
	moveSpeed  float32
	nonLooping bool
	rarity     float32
	syncPoint  uint32
	extent     Extent
}

// NewSequence creates an uncontained sequence.
func NewSequence(m *Model) *Sequence {
	s := &Sequence{}
	s.init(m)
	return s
}

func (s *Sequence) Name() string            { return s.name }
func (s *Sequence) SetName(name string)     { setField(s.model, "Name", &s.name, name) }
func (s *Sequence) Interval() Interval      { return s.interval }
func (s *Sequence) SetInterval(iv Interval) { setField(s.model, "Interval", &s.interval, iv) }
func (s *Sequence) MoveSpeed() float32      { return s.moveSpeed }
func (s *Sequence) SetMoveSpeed(v float32)  { setField(s.model, "MoveSpeed", &s.moveSpeed, v) }
func (s *Sequence) NonLooping() bool        { return s.nonLooping }
func (s *Sequence) SetNonLooping(v bool)    { setField(s.model, "NonLooping", &s.nonLooping, v) }
func (s *Sequence) Rarity() float32         { return s.rarity }
func (s *Sequence) SetRarity(v float32)     { setField(s.model, "Rarity", &s.rarity, v) }
func (s *Sequence) SyncPoint() uint32       { return s.syncPoint }
func (s *Sequence) SetSyncPoint(v uint32)   { setField(s.model, "SyncPoint", &s.syncPoint, v) }
func (s *Sequence) Extent() Extent          { return s.extent }
func (s *Sequence) SetExtent(e Extent)      { setField(s.model, "Extent", &s.extent, e) }

// GlobalSequence is a looping time axis shared by the animators linked to
// it, independent of the playing sequence.
type GlobalSequence struct {
	ObjectBase

	duration uint32
}

// NewGlobalSequence creates an uncontained global sequence.
func NewGlobalSequence(m *Model, duration uint32) *GlobalSequence {
	g := &GlobalSequence{duration: duration}
	g.init(m)
	return g
}

func (g *GlobalSequence) Duration() uint32     { return g.duration }
func (g *GlobalSequence) SetDuration(d uint32) { setField(g.model, "Duration", &g.duration, d) }
