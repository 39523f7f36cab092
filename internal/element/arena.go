package element

import "sync"

// Ref is a non-owning handle to an element. The zero Ref never resolves.
type Ref struct {
	index uint32
	gen   uint32
}

// NilRef is the zero handle; it resolves to nothing.
var NilRef = Ref{}

// IsNil returns true for the zero handle.
func (r Ref) IsNil() bool {
	return r.gen == 0
}

type slot struct {
	node *Node
	gen  uint32
}

// Arena owns the elements of one tree and hands out generation-checked
// handles to them. The guard makes handle resolution safe against element
// destruction triggered from within resolution callbacks.
type Arena struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32

	focus Ref
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewNode allocates a new element in the arena. The node starts enabled,
// visible, detached, and with the given identifier.
func (a *Arena) NewNode(id string) *Node {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := &Node{
		arena:   a,
		id:      id,
		enabled: true,
		visible: true,
	}

	var idx uint32
	if len(a.free) > 0 {
		idx = a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		a.slots[idx].node = n
		a.slots[idx].gen++
	} else {
		// Generation starts at 1 so the zero Ref never matches a live slot.
		a.slots = append(a.slots, slot{node: n, gen: 1})
		idx = uint32(len(a.slots) - 1)
	}

	n.ref = Ref{index: idx, gen: a.slots[idx].gen}
	return n
}

// Resolve returns the element a handle points at, or false if the element
// has been destroyed (or the handle is nil). Dead handles are routine, not
// errors.
func (a *Arena) Resolve(r Ref) (*Node, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.resolveLocked(r)
}

func (a *Arena) resolveLocked(r Ref) (*Node, bool) {
	if r.IsNil() || int(r.index) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[r.index]
	if s.node == nil || s.gen != r.gen {
		return nil, false
	}
	return s.node, true
}

// Alive reports whether a handle still resolves.
func (a *Arena) Alive(r Ref) bool {
	_, ok := a.Resolve(r)
	return ok
}

// Destroy removes an element and its whole subtree from the arena. All
// outstanding handles to the destroyed elements stop resolving. Destroying
// the focused element clears focus.
func (a *Arena) Destroy(n *Node) {
	if n == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if n.parent != nil {
		n.parent.removeChild(n)
	}
	a.destroyLocked(n)
}

func (a *Arena) destroyLocked(n *Node) {
	for _, c := range n.children {
		a.destroyLocked(c)
	}
	n.children = nil
	n.parent = nil

	idx := n.ref.index
	if int(idx) < len(a.slots) && a.slots[idx].node == n {
		a.slots[idx].node = nil
		a.slots[idx].gen++
		a.free = append(a.free, idx)
	}

	if a.focus == n.ref {
		a.focus = NilRef
	}
	n.ref = NilRef
}

// Len returns the number of live elements.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	count := 0
	for _, s := range a.slots {
		if s.node != nil {
			count++
		}
	}
	return count
}
