package element

// Focused returns the currently focused element, or nil.
func (a *Arena) Focused() *Node {
	a.mu.Lock()
	defer a.mu.Unlock()

	n, ok := a.resolveLocked(a.focus)
	if !ok {
		return nil
	}
	return n
}

// FocusedRef returns a handle to the currently focused element. The handle
// is NilRef when nothing is focused, and stops resolving if the element is
// destroyed afterward, which is exactly the behavior a saved-focus slot
// needs.
func (a *Arena) FocusedRef() Ref {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.focus
}

// SetFocus moves focus to n. Passing nil clears focus. Focus is refused for
// destroyed or non-targetable elements; the return value reports whether
// focus changed.
func (a *Arena) SetFocus(n *Node) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n == nil {
		a.focus = NilRef
		return true
	}
	if _, ok := a.resolveLocked(n.ref); !ok {
		return false
	}
	if !n.IsTargetable() {
		return false
	}
	a.focus = n.ref
	return true
}

// IsFocused reports whether n currently holds focus.
func (a *Arena) IsFocused(n *Node) bool {
	if n == nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.focus.IsNil() && a.focus == n.ref
}
