package access

import "github.com/dshills/mnemonic/internal/element"

// TargetResolver asks an element what its effective action target is for an
// access key. It is the outbound resolve-scope round-trip, injected as a
// capability so the resolver stays independent of the event delivery
// mechanism. An element with no special behavior nominates itself; ok is
// false when the element declines.
type TargetResolver func(n *element.Node, accessKey string) (element.Ref, bool)

// Resolver produces the elements in scope for a key press.
type Resolver struct {
	arena   *element.Arena
	table   *Table
	resolve TargetResolver
}

// NewResolver creates a resolver over the given table and resolve
// capability.
func NewResolver(arena *element.Arena, table *Table, resolve TargetResolver) *Resolver {
	return &Resolver{
		arena:   arena,
		table:   table,
		resolve: resolve,
	}
}

// ResolveTargets returns the nominated targets for accessKey (already
// normalized), in registration order.
//
// The sender, when it appears among the candidates, is trusted as the
// effective context of the key press: its own nomination is computed once
// up front and reused without a targetability re-check. Every other
// candidate must prove it is targetable and nominate a live target, or it
// is skipped. A container registering on behalf of a descendant nominates
// that descendant here.
func (r *Resolver) ResolveTargets(accessKey string, sender *element.Node) []*element.Node {
	var senderTarget *element.Node
	if sender != nil {
		if ref, ok := r.resolve(sender, accessKey); ok {
			if n, live := r.arena.Resolve(ref); live {
				senderTarget = n
			}
		}
	}

	candidates := r.table.SnapshotLive(accessKey)
	if len(candidates) == 0 {
		return nil
	}

	out := make([]*element.Node, 0, len(candidates))
	for _, cand := range candidates {
		if sender != nil && cand == sender {
			if senderTarget != nil {
				out = append(out, senderTarget)
			}
			continue
		}
		if !cand.IsTargetable() {
			continue
		}
		ref, ok := r.resolve(cand, accessKey)
		if !ok {
			continue
		}
		n, live := r.arena.Resolve(ref)
		if !live {
			continue
		}
		out = append(out, n)
	}
	return out
}
