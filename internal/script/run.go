package script

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/mdlx/internal/history"
	"github.com/Faultbox/mdlx/pkg/mdlx"
)

// Report counts the outcome of a Run.
type Report struct {
	Applied int
	Failed  int
}

// Runner replays edits against a model. Every edit outside a begin/end
// pair is recorded as its own history entry.
type Runner struct {
	model       *mdlx.Model
	history     *history.History
	log         *zap.Logger
	targets     map[string]target
	stopOnError bool
	inSession   bool
}

// NewRunner creates a runner editing m and recording into h.
func NewRunner(m *mdlx.Model, h *history.History, stopOnError bool) *Runner {
	return &Runner{
		model:       m,
		history:     h,
		log:         m.Logger().Named("script"),
		targets:     targetsOf(m),
		stopOnError: stopOnError,
	}
}

// History returns the runner's undo/redo history.
func (r *Runner) History() *history.History { return r.history }

// Run applies edits in order. When the runner stops on errors the first
// failure is returned; otherwise all failures are joined. A session left
// open by a missing end is closed and recorded.
func (r *Runner) Run(edits []Edit) (Report, error) {
	var rep Report
	var errs []error
	for i, e := range edits {
		if err := r.Apply(e); err != nil {
			rep.Failed++
			err = fmt.Errorf("edit %d (%s): %w", i, e, err)
			r.log.Warn("edit failed", zap.Error(err))
			if r.stopOnError {
				r.closeSession()
				return rep, err
			}
			errs = append(errs, err)
			continue
		}
		rep.Applied++
	}
	if r.closeSession() {
		r.log.Warn("session left open; closed at end of script")
	}
	return rep, errors.Join(errs...)
}

func (r *Runner) closeSession() bool {
	if !r.inSession {
		return false
	}
	r.inSession = false
	r.history.Push(r.model.EndUndoRedoSession())
	return true
}

// Apply runs a single edit.
func (r *Runner) Apply(e Edit) error {
	switch e.Op {
	case "begin":
		if r.inSession {
			return fmt.Errorf("%w: begin inside a session", ErrSession)
		}
		r.model.BeginUndoRedoSession()
		r.inSession = true
		return nil
	case "end":
		if !r.inSession {
			return fmt.Errorf("%w: end without begin", ErrSession)
		}
		r.closeSession()
		return nil
	case "undo":
		if r.inSession {
			return fmt.Errorf("%w: undo inside a session", ErrSession)
		}
		if !r.history.Undo() {
			return fmt.Errorf("%w: nothing to undo", ErrNotFound)
		}
		return nil
	case "redo":
		if r.inSession {
			return fmt.Errorf("%w: redo inside a session", ErrSession)
		}
		if !r.history.Redo() {
			return fmt.Errorf("%w: nothing to redo", ErrNotFound)
		}
		return nil
	}

	op, ok := editOps[e.Op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOp, e.Op)
	}
	if r.inSession {
		return op(r, e)
	}
	r.model.BeginUndoRedoSession()
	err := op(r, e)
	r.history.Push(r.model.EndUndoRedoSession())
	return err
}

var editOps = map[string]func(*Runner, Edit) error{
	"set_name":      (*Runner).setName,
	"remove":        (*Runner).remove,
	"clear":         (*Runner).clear,
	"insert_bone":   (*Runner).insertBone,
	"attach_parent": (*Runner).attachParent,
	"detach_parent": (*Runner).detachParent,
}

func (r *Runner) target(name string) (target, error) {
	t, ok := r.targets[name]
	if !ok {
		return target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return t, nil
}

func (r *Runner) setName(e Edit) error {
	if e.Target == "model" {
		r.model.SetName(e.Value)
		return nil
	}
	t, err := r.target(e.Target)
	if err != nil {
		return err
	}
	return t.setName(e.Index, e.Value)
}

func (r *Runner) remove(e Edit) error {
	t, err := r.target(e.Target)
	if err != nil {
		return err
	}
	if !t.remove(e.Index) {
		return fmt.Errorf("%w: %s[%d]", ErrNotFound, e.Target, e.Index)
	}
	return nil
}

func (r *Runner) clear(e Edit) error {
	t, err := r.target(e.Target)
	if err != nil {
		return err
	}
	t.clear()
	return nil
}

func (r *Runner) insertBone(e Edit) error {
	return r.model.Bones().Insert(e.Index, mdlx.NewBone(r.model, e.Value))
}

func (r *Runner) node(id int) (mdlx.Node, error) {
	n, ok := r.model.Nodes().Get(mdlx.NodeId(id))
	if !ok {
		return nil, fmt.Errorf("%w: node %d", ErrNotFound, id)
	}
	return n, nil
}

func (r *Runner) attachParent(e Edit) error {
	child, err := r.node(e.Node)
	if err != nil {
		return err
	}
	parent, err := r.node(e.Parent)
	if err != nil {
		return err
	}
	return child.Parent().Attach(parent)
}

func (r *Runner) detachParent(e Edit) error {
	child, err := r.node(e.Node)
	if err != nil {
		return err
	}
	child.Parent().Detach()
	return nil
}

// target is the untyped view of one container used by the dispatch table.
type target struct {
	remove  func(i int) bool
	clear   func()
	setName func(i int, name string) error
}

type namer interface {
	SetName(name string)
}

func targetOf[T mdlx.Object](c *mdlx.Container[T]) target {
	return target{
		remove: func(i int) bool {
			_, ok := c.Remove(i)
			return ok
		},
		clear: c.Clear,
		setName: func(i int, name string) error {
			o, ok := c.Get(i)
			if !ok {
				return fmt.Errorf("%w: %s[%d]", ErrNotFound, c.Name(), i)
			}
			n, ok := any(o).(namer)
			if !ok {
				return fmt.Errorf("%w: %s members have no name", ErrBadValue, c.Name())
			}
			n.SetName(name)
			return nil
		},
	}
}

func targetsOf(m *mdlx.Model) map[string]target {
	return map[string]target{
		"sequences":          targetOf(m.Sequences()),
		"global_sequences":   targetOf(m.GlobalSequences()),
		"textures":           targetOf(m.Textures()),
		"materials":          targetOf(m.Materials()),
		"texture_animations": targetOf(m.TextureAnimations()),
		"geosets":            targetOf(m.Geosets()),
		"geoset_animations":  targetOf(m.GeosetAnimations()),
		"bones":              targetOf(m.Bones()),
		"lights":             targetOf(m.Lights()),
		"helpers":            targetOf(m.Helpers()),
		"attachments":        targetOf(m.Attachments()),
		"pivots":             targetOf(m.PivotPoints()),
		"particle_emitters":  targetOf(m.ParticleEmitters()),
		"particle_emitter2s": targetOf(m.ParticleEmitter2s()),
		"ribbon_emitters":    targetOf(m.RibbonEmitters()),
		"cameras":            targetOf(m.Cameras()),
		"events":             targetOf(m.Events()),
		"collision_shapes":   targetOf(m.CollisionShapes()),
	}
}
