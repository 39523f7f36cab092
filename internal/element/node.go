package element

// Node is a single interactive element in the tree.
//
// Nodes are created through Arena.NewNode and referenced long-term only via
// Ref handles. The Enabled and Visible flags are local; effective state
// walks the ancestor chain, so disabling a container disables everything
// under it.
type Node struct {
	arena *Arena
	ref   Ref

	id       string
	parent   *Node
	children []*Node

	enabled   bool
	visible   bool
	focusable bool
}

// ID returns the element's identifier.
func (n *Node) ID() string {
	return n.id
}

// Ref returns the element's handle. After destruction this is NilRef.
func (n *Node) Ref() Ref {
	return n.ref
}

// Arena returns the owning arena.
func (n *Node) Arena() *Arena {
	return n.arena
}

// Parent returns the element's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the element's children in document order.
func (n *Node) Children() []*Node {
	return n.children
}

// AppendChild attaches child as the last child of n. A child already
// attached elsewhere is first detached.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil || child == n {
		return child
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Root returns the top of the tree n belongs to.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// IsAncestorOf reports whether n is a proper logical ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	for cur := other.parent; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Contains reports whether other is n itself or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	return n == other || n.IsAncestorOf(other)
}

// SetEnabled sets the element's local enabled flag.
func (n *Node) SetEnabled(v bool) *Node {
	n.enabled = v
	return n
}

// SetVisible sets the element's local visible flag.
func (n *Node) SetVisible(v bool) *Node {
	n.visible = v
	return n
}

// SetFocusable marks the element as able to receive focus.
func (n *Node) SetFocusable(v bool) *Node {
	n.focusable = v
	return n
}

// Enabled returns the local enabled flag.
func (n *Node) Enabled() bool {
	return n.enabled
}

// Visible returns the local visible flag.
func (n *Node) Visible() bool {
	return n.visible
}

// Focusable returns whether the element can receive focus.
func (n *Node) Focusable() bool {
	return n.focusable
}

// EffectivelyEnabled reports whether the element and all its ancestors are
// enabled.
func (n *Node) EffectivelyEnabled() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.enabled {
			return false
		}
	}
	return true
}

// EffectivelyVisible reports whether the element and all its ancestors are
// visible.
func (n *Node) EffectivelyVisible() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.visible {
			return false
		}
	}
	return true
}

// IsTargetable reports whether the element can be acted upon right now:
// effectively enabled and effectively visible.
func (n *Node) IsTargetable() bool {
	return n.EffectivelyEnabled() && n.EffectivelyVisible()
}
