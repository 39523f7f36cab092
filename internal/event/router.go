package event

import (
	"runtime/debug"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/mnemonic/internal/element"
)

// PanicHandler is called when a routed handler panics. It receives the
// envelope being delivered, the panic value, and the stack trace.
type PanicHandler func(env *Envelope, panicValue any, stack []byte)

// defaultPanicHandler silently recovers.
func defaultPanicHandler(env *Envelope, panicValue any, stack []byte) {}

type routeKey struct {
	ref   element.Ref
	typ   Type
	phase Phase
}

// Router delivers envelopes along the element tree.
//
// The route table is guarded so handlers may subscribe and unsubscribe from
// within delivery; each delivery step works from a snapshot of the matching
// handler list, never a live iterator.
type Router struct {
	mu     sync.Mutex
	routes map[routeKey][]*subscription

	panicHandler PanicHandler
}

// Option configures a Router.
type Option func(*Router)

// WithPanicHandler sets the handler-panic callback.
func WithPanicHandler(h PanicHandler) Option {
	return func(r *Router) {
		if h != nil {
			r.panicHandler = h
		}
	}
}

// NewRouter creates an empty router.
func NewRouter(opts ...Option) *Router {
	r := &Router{
		routes:       make(map[routeKey][]*subscription),
		panicHandler: defaultPanicHandler,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Subscribe attaches a handler to an element for one event type and phase.
func (r *Router) Subscribe(el *element.Node, t Type, p Phase, h Handler) (Subscription, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if el == nil {
		return nil, ErrNilElement
	}
	ref := el.Ref()
	if ref.IsNil() {
		return nil, ErrDeadElement
	}

	sub := &subscription{
		id:      uuid.NewString(),
		router:  r,
		key:     routeKey{ref: ref, typ: t, phase: p},
		handler: h,
	}

	r.mu.Lock()
	r.routes[sub.key] = append(r.routes[sub.key], sub)
	r.mu.Unlock()

	return sub, nil
}

// SubscribeFunc is Subscribe for a bare function.
func (r *Router) SubscribeFunc(el *element.Node, t Type, p Phase, fn HandlerFunc) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return r.Subscribe(el, t, p, fn)
}

func (r *Router) remove(sub *subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.routes[sub.key]
	for i, s := range subs {
		if s == sub {
			r.routes[sub.key] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(r.routes[sub.key]) == 0 {
		delete(r.routes, sub.key)
	}
}

// handlersFor snapshots the active handlers for one route step.
func (r *Router) handlersFor(ref element.Ref, t Type, p Phase) []Handler {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.routes[routeKey{ref: ref, typ: t, phase: p}]
	if len(subs) == 0 {
		return nil
	}
	out := make([]Handler, 0, len(subs))
	for _, s := range subs {
		if s.IsActive() {
			out = append(out, s.handler)
		}
	}
	return out
}

// Dispatch routes an envelope: tunnel handlers from the root down to the
// source, then the source's direct handlers, then bubble handlers back up
// to the root. Delivery stops as soon as the envelope is marked handled.
func (r *Router) Dispatch(env *Envelope) error {
	if env == nil || env.Source == nil {
		return ErrNoSource
	}
	if env.Type == TypeNone {
		return ErrInvalidType
	}

	// Root-to-source path.
	var path []*element.Node
	for cur := env.Source; cur != nil; cur = cur.Parent() {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	for _, el := range path {
		if r.deliver(el, PhaseTunnel, env) {
			return nil
		}
	}
	if r.deliver(env.Source, PhaseDirect, env) {
		return nil
	}
	for i := len(path) - 1; i >= 0; i-- {
		if r.deliver(path[i], PhaseBubble, env) {
			return nil
		}
	}
	return nil
}

// deliver runs one route step and reports whether delivery should stop.
func (r *Router) deliver(el *element.Node, p Phase, env *Envelope) bool {
	for _, h := range r.handlersFor(el.Ref(), env.Type, p) {
		r.run(h, env)
		if env.Handled {
			return true
		}
	}
	return false
}

func (r *Router) run(h Handler, env *Envelope) {
	defer func() {
		if v := recover(); v != nil {
			r.panicHandler(env, v, debug.Stack())
		}
	}()
	h.HandleRouted(env)
}

// ResolveAccessTarget performs the synchronous resolve-scope round-trip:
// it asks el what its effective action target for key is. An element with
// no resolve handler nominates itself; a handler may redirect the
// nomination to another element or clear it to decline.
func (r *Router) ResolveAccessTarget(el *element.Node, accessKey string) (element.Ref, bool) {
	if el == nil || el.Ref().IsNil() {
		return element.NilRef, false
	}

	env := &Envelope{
		Type:   TypeAccessKeyResolve,
		Source: el,
		Access: AccessKeyInfo{Key: accessKey, Target: el.Ref()},
	}
	if err := r.Dispatch(env); err != nil {
		return element.NilRef, false
	}
	if env.Access.Target.IsNil() {
		return element.NilRef, false
	}
	return env.Access.Target, true
}

// RaiseAccessKeyInvoke raises the invocation event on the chosen element.
func (r *Router) RaiseAccessKeyInvoke(el *element.Node, accessKey string, isMultiple bool) error {
	env := &Envelope{
		Type:   TypeAccessKeyInvoke,
		Source: el,
		Access: AccessKeyInfo{Key: accessKey, IsMultiple: isMultiple},
	}
	return r.Dispatch(env)
}
