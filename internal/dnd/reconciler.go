package dnd

import (
	"errors"

	"nestdnd/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

type Options struct {
	// RestoreOnCancel rolls the hierarchy back to its pre-drag order when a drag
	// is cancelled. Off by default: a cancelled drag keeps any cross-group move
	// already applied while hovering.
	RestoreOnCancel bool
	Logger          *zap.Logger
}

// Reconciler turns drag lifecycle events into hierarchy mutations.
//
// It is not safe for concurrent use; the event source calls it from a single
// loop and every call runs to completion before the next event.
type Reconciler struct {
	h    *model.Hierarchy
	opts Options
	base *zap.Logger
	// log carries the current drag's session id.
	log *zap.Logger

	session  string
	active   model.ID
	snapshot *model.Snapshot
	revision uint64
}

func New(h *model.Hierarchy, opts Options) *Reconciler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{h: h, opts: opts, base: log, log: log}
}

func (r *Reconciler) Model() *model.Hierarchy { return r.h }

// Active is the element picked up by the last Start, kept for overlays.
func (r *Reconciler) Active() model.ID { return r.active }

func (r *Reconciler) State() State {
	if r.active.IsZero() {
		return StateIdle
	}
	return StateDragging
}

// Revision increases by one for every applied mutation.
func (r *Reconciler) Revision() uint64 { return r.revision }

// Session identifies the drag started by the last Start; log lines for that
// drag carry it as the "drag" field.
func (r *Reconciler) Session() string { return r.session }

func (r *Reconciler) Start(active model.ID) {
	r.session = uuid.NewString()
	r.log = r.base.With(zap.String("drag", r.session))
	r.active = active
	r.snapshot = nil
	if r.opts.RestoreOnCancel {
		s := r.h.Snapshot()
		r.snapshot = &s
	}
	r.log.Debug("drag start", zap.Stringer("active", active))
}

func (r *Reconciler) Cancel() {
	r.log.Debug("drag cancel", zap.Stringer("active", r.active))
	if r.snapshot != nil {
		r.h.Restore(*r.snapshot)
		r.revision++
		r.log.Debug("restored pre-drag order")
	}
	r.snapshot = nil
	r.active = model.ID{}
	r.log = r.base
}

// Over handles a hover over a new target. Crossing into another group moves
// the active sub-item there immediately, at the front of the group; hovering
// within one group changes nothing until the drop.
func (r *Reconciler) Over(active, over model.ID) bool {
	if over.IsZero() || active == over {
		return false
	}
	ac, ok := r.h.Container(active)
	if !ok {
		return r.miss("over", model.NotFoundError{Kind: "container", ID: active.String()})
	}
	oc, ok := r.h.Container(over)
	if !ok {
		return r.miss("over", model.NotFoundError{Kind: "container", ID: over.String()})
	}
	if ac.ID == oc.ID {
		return false
	}
	if err := r.h.MoveSubItem(active, over); err != nil {
		return r.miss("over", err)
	}
	r.revision++
	r.log.Debug("moved across groups",
		zap.Stringer("active", active),
		zap.Stringer("from", ac.ID),
		zap.Stringer("to", oc.ID))
	return true
}

// End handles the drop. Two items reorder the top level; two sub-items
// reorder within (or between) their current groups; mixed kinds do nothing.
func (r *Reconciler) End(active, over model.ID) bool {
	r.snapshot = nil
	if over.IsZero() || active == over {
		return false
	}

	switch {
	case active.IsItem() && over.IsItem():
		if err := r.h.ReorderItems(active, over); err != nil {
			return r.miss("end", err)
		}
		r.revision++
		r.log.Debug("reordered items", zap.Stringer("active", active), zap.Stringer("over", over))
		return true

	case active.IsSubItem() && over.IsSubItem():
		// Only this branch drops the active id.
		r.active = model.ID{}
		ap, ok := r.h.Container(active)
		if !ok {
			return r.miss("end", model.NotFoundError{Kind: "container", ID: active.String()})
		}
		op, ok := r.h.Container(over)
		if !ok {
			return r.miss("end", model.NotFoundError{Kind: "container", ID: over.String()})
		}
		if err := r.h.ReorderSubItems(ap.ID, op.ID, active, over); err != nil {
			return r.miss("end", err)
		}
		r.revision++
		r.log.Debug("reordered sub-items",
			zap.Stringer("active", active),
			zap.Stringer("over", over),
			zap.Stringer("group", op.ID))
		return true

	default:
		r.log.Debug("drop ignored: mixed kinds",
			zap.Stringer("active", active),
			zap.Stringer("over", over))
		return false
	}
}

// Apply dispatches a single scripted event.
func (r *Reconciler) Apply(ev Event) bool {
	switch ev.Type {
	case EventStart:
		r.Start(ev.Active)
		return false
	case EventOver:
		return r.Over(ev.Active, ev.Over)
	case EventEnd:
		return r.End(ev.Active, ev.Over)
	case EventCancel:
		before := r.revision
		r.Cancel()
		return r.revision != before
	default:
		return false
	}
}

// miss absorbs a lookup failure. Events can reference ids that moved or never
// existed; the gesture is dropped without touching the hierarchy.
func (r *Reconciler) miss(phase string, err error) bool {
	if errors.Is(err, model.ErrLookupMiss) {
		r.log.Debug("lookup miss", zap.String("phase", phase), zap.Error(err))
		return false
	}
	r.log.Warn("reconcile failed", zap.String("phase", phase), zap.Error(err))
	return false
}
