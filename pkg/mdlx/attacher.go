package mdlx

import "go.uber.org/zap"

// Attacher collects index-based references met while decoding and resolves
// them once every container holds its final members. Formats may refer
// forward to entities that are decoded later, so attaching immediately
// would depend on element order.
type Attacher struct {
	requests []request
}

type request struct {
	model   *Model
	ref     AnyReference
	where   string
	index   int
	resolve func() (Object, bool)
}

// RequestObject records that ref should point at c's member at index once
// decoding completes. Negative indices mean "none" and are skipped.
func RequestObject[T Object](a *Attacher, c *Container[T], ref *Reference[T], index int) {
	a.requests = append(a.requests, request{
		model: ref.model,
		ref:   ref.handle(),
		where: c.name,
		index: index,
		resolve: func() (Object, bool) {
			o, ok := c.Get(index)
			if !ok {
				return nil, false
			}
			return o, true
		},
	})
}

// RequestNode records that ref should point at the node with the given
// NodeId in m once decoding completes.
func (a *Attacher) RequestNode(m *Model, ref *NodeReference, id NodeId) {
	a.requests = append(a.requests, request{
		model: m,
		ref:   ref,
		where: "Nodes",
		index: int(id),
		resolve: func() (Object, bool) {
			n, ok := m.Nodes().Get(id)
			if !ok {
				return nil, false
			}
			return n, true
		},
	})
}

// Pending returns the number of unresolved requests.
func (a *Attacher) Pending() int { return len(a.requests) }

// Resolve attaches every recorded request whose index exists and clears the
// queue. Requests with a missing target are left unattached.
func (a *Attacher) Resolve() (resolved, skipped int) {
	for _, r := range a.requests {
		if r.index < 0 {
			skipped++
			continue
		}
		target, ok := r.resolve()
		if !ok || target.Model() != r.model || r.ref.Model() != r.model {
			skipped++
			r.model.log.Debug("unresolved reference",
				zap.String("container", r.where),
				zap.Int("index", r.index))
			continue
		}
		r.model.execute(&attachCommand{ref: r.ref, prev: r.ref.TargetObject(), next: target})
		resolved++
	}
	if len(a.requests) > 0 {
		a.requests[0].model.log.Debug("references resolved",
			zap.Int("resolved", resolved),
			zap.Int("skipped", skipped))
	}
	a.requests = nil
	return resolved, skipped
}
