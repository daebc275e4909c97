package mdlx

import "fmt"

// anyContainer is the type-erased view used for ObjectId derivation,
// NodeId arithmetic and recursive Detacher collection.
type anyContainer interface {
	Name() string
	Len() int
	objectAt(i int) Object
	indexOfBase(b *ObjectBase) int
}

// Container is an ordered sequence of objects of one type. It exclusively
// owns its members: an object belongs to at most one container at a time,
// and its ObjectId is its index here.
type Container[T Object] struct {
	model *Model
	name  string
	items []T
}

func newContainer[T Object](m *Model, name string) *Container[T] {
	return &Container[T]{model: m, name: name}
}

// Name returns the container's name, used in logs and errors.
func (c *Container[T]) Name() string { return c.name }

// Len returns the number of members.
func (c *Container[T]) Len() int { return len(c.items) }

// Get returns the member at index i.
func (c *Container[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// All returns the members in index order. The slice is a copy.
func (c *Container[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// IndexOf returns the index of o, or -1.
func (c *Container[T]) IndexOf(o T) int {
	if Object(o) == nil {
		return -1
	}
	return c.indexOfBase(o.object())
}

func (c *Container[T]) indexOfBase(b *ObjectBase) int {
	for i, it := range c.items {
		if it.object() == b {
			return i
		}
	}
	return -1
}

func (c *Container[T]) objectAt(i int) Object { return c.items[i] }

// Add appends o.
func (c *Container[T]) Add(o T) error {
	return c.Insert(len(c.items), o)
}

// Insert splices o in at index i, shifting later members up by one.
func (c *Container[T]) Insert(i int, o T) error {
	if err := c.checkIncoming(o); err != nil {
		return err
	}
	if i < 0 || i > len(c.items) {
		return fmt.Errorf("inserting into %s at %d (len %d): %w", c.name, i, len(c.items), ErrIndexOutOfRange)
	}
	c.model.execute(&insertCommand[T]{c: c, index: i, obj: o})
	return nil
}

// Set replaces the member at index i with o and returns the old member.
// References to the old member and its nested members are severed.
func (c *Container[T]) Set(i int, o T) (T, error) {
	var zero T
	if err := c.checkIncoming(o); err != nil {
		return zero, err
	}
	if i < 0 || i >= len(c.items) {
		return zero, fmt.Errorf("setting %s[%d] (len %d): %w", c.name, i, len(c.items), ErrIndexOutOfRange)
	}
	old := c.items[i]
	c.model.execute(&setCommand[T]{
		c:         c,
		index:     i,
		old:       old,
		new:       o,
		detachers: collectDetachers(c.model, old),
	})
	return old, nil
}

// Remove takes out the member at index i after severing every reference to
// it and to its nested members. Out of range indices are a no-op.
func (c *Container[T]) Remove(i int) (T, bool) {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, false
	}
	o := c.items[i]
	c.model.execute(&removeCommand[T]{
		c:         c,
		index:     i,
		obj:       o,
		detachers: collectDetachers(c.model, o),
	})
	return o, true
}

// RemoveObject removes o if it is a member.
func (c *Container[T]) RemoveObject(o T) bool {
	i := c.IndexOf(o)
	if i < 0 {
		return false
	}
	_, ok := c.Remove(i)
	return ok
}

// Clear removes every member, severing references to all of them.
func (c *Container[T]) Clear() {
	if len(c.items) == 0 {
		return
	}
	items := c.All()
	objs := make([]Object, len(items))
	for i, it := range items {
		objs[i] = it
	}
	c.model.execute(&clearCommand[T]{
		c:         c,
		items:     items,
		detachers: collectDetachers(c.model, objs...),
	})
}

func (c *Container[T]) checkIncoming(o T) error {
	obj := Object(o)
	if obj == nil {
		return ErrNilObject
	}
	if obj.Model() != c.model {
		return fmt.Errorf("adding to %s: %w", c.name, ErrForeignModel)
	}
	if obj.Contained() {
		return fmt.Errorf("adding to %s: %w", c.name, ErrAlreadyContained)
	}
	return nil
}

func (c *Container[T]) rawInsert(i int, o T) {
	var zero T
	c.items = append(c.items, zero)
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = o
	o.object().container = c
}

func (c *Container[T]) rawRemove(i int) T {
	o := c.items[i]
	copy(c.items[i:], c.items[i+1:])
	var zero T
	c.items[len(c.items)-1] = zero
	c.items = c.items[:len(c.items)-1]
	o.object().container = nil
	return o
}

func (c *Container[T]) rawSet(i int, o T) {
	c.items[i].object().container = nil
	c.items[i] = o
	o.object().container = c
}

func (c *Container[T]) rawReplaceAll(items []T) {
	for _, it := range c.items {
		it.object().container = nil
	}
	c.items = make([]T, len(items))
	copy(c.items, items)
	for _, it := range c.items {
		it.object().container = c
	}
}

type insertCommand[T Object] struct {
	c     *Container[T]
	index int
	obj   T
}

func (cmd *insertCommand[T]) Apply() { cmd.c.rawInsert(cmd.index, cmd.obj) }
func (cmd *insertCommand[T]) Undo()  { cmd.c.rawRemove(cmd.index) }

// removeCommand, setCommand and clearCommand sever references before the
// structural edit and restore them after reversing it, so no reference ever
// points at an object absent from its container.
type removeCommand[T Object] struct {
	c         *Container[T]
	index     int
	obj       T
	detachers []Detacher
}

func (cmd *removeCommand[T]) Apply() {
	detachAll(cmd.detachers)
	cmd.c.rawRemove(cmd.index)
}

func (cmd *removeCommand[T]) Undo() {
	cmd.c.rawInsert(cmd.index, cmd.obj)
	attachAll(cmd.detachers)
}

type setCommand[T Object] struct {
	c         *Container[T]
	index     int
	old       T
	new       T
	detachers []Detacher
}

func (cmd *setCommand[T]) Apply() {
	detachAll(cmd.detachers)
	cmd.c.rawSet(cmd.index, cmd.new)
}

func (cmd *setCommand[T]) Undo() {
	cmd.c.rawSet(cmd.index, cmd.old)
	attachAll(cmd.detachers)
}

type clearCommand[T Object] struct {
	c         *Container[T]
	items     []T
	detachers []Detacher
}

func (cmd *clearCommand[T]) Apply() {
	detachAll(cmd.detachers)
	cmd.c.rawReplaceAll(nil)
}

func (cmd *clearCommand[T]) Undo() {
	cmd.c.rawReplaceAll(cmd.items)
	attachAll(cmd.detachers)
}
