package access

import (
	"sync"

	"github.com/dshills/mnemonic/internal/element"
	"github.com/dshills/mnemonic/internal/input/key"
)

// Table maps normalized access keys to weakly-held candidate elements.
//
// Registrations never keep an element alive: entries hold handles, and an
// entry whose handle no longer resolves is dead. Dead entries are removed
// lazily, the next time the key is scanned. The guard exists for
// reentrancy: registration can be triggered synchronously from within the
// resolve callbacks used during scope resolution, so the table is never
// iterated while also being mutated.
type Table struct {
	arena *element.Arena

	mu      sync.Mutex
	entries map[string][]element.Ref
}

// NewTable creates an empty table over the given arena.
func NewTable(arena *element.Arena) *Table {
	return &Table{
		arena:   arena,
		entries: make(map[string][]element.Ref),
	}
}

// Register binds an access key to an element. The key is normalized first
// and rejected (never truncated) if it is not exactly one character.
// Several distinct elements may share a key; that is an expected mnemonic
// collision, not an error. Registering the same (key, element) pair again
// is a no-op while the prior registration is live.
func (t *Table) Register(accessKey string, n *element.Node) error {
	nk, err := key.Normalize(accessKey)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNilElement
	}
	ref := n.Ref()
	if ref.IsNil() {
		return ErrDeadElement
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.purgeLocked(nk)
	for _, r := range t.entries[nk] {
		if r == ref {
			return nil
		}
	}
	t.entries[nk] = append(t.entries[nk], ref)
	return nil
}

// Unregister removes every registration pointing at n, across all keys.
// Dead entries encountered along the way are dropped too, so explicit
// unregistration doubles as incidental garbage collection.
func (t *Table) Unregister(n *element.Node) {
	if n == nil {
		return
	}
	ref := n.Ref()

	t.mu.Lock()
	defer t.mu.Unlock()

	for k, refs := range t.entries {
		kept := refs[:0]
		for _, r := range refs {
			if r == ref || !t.arena.Alive(r) {
				continue
			}
			kept = append(kept, r)
		}
		if len(kept) == 0 {
			delete(t.entries, k)
		} else {
			t.entries[k] = kept
		}
	}
}

// SnapshotLive purges dead entries under accessKey (already normalized) and
// returns the currently-resolvable elements, in registration order. The
// returned slice is a materialized copy; callers may trigger reentrant
// registration while walking it.
func (t *Table) SnapshotLive(accessKey string) []*element.Node {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.purgeLocked(accessKey)

	refs := t.entries[accessKey]
	if len(refs) == 0 {
		return nil
	}
	out := make([]*element.Node, 0, len(refs))
	for _, r := range refs {
		if n, ok := t.arena.Resolve(r); ok {
			out = append(out, n)
		}
	}
	return out
}

// purgeLocked drops entries under k whose handles no longer resolve.
func (t *Table) purgeLocked(k string) {
	refs := t.entries[k]
	if len(refs) == 0 {
		return
	}
	kept := refs[:0]
	for _, r := range refs {
		if t.arena.Alive(r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		delete(t.entries, k)
	} else {
		t.entries[k] = kept
	}
}

// Len returns the number of registrations currently stored, dead entries
// included. Mostly useful in tests.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	count := 0
	for _, refs := range t.entries {
		count += len(refs)
	}
	return count
}
