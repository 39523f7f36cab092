package element

import "testing"

func TestArenaResolve(t *testing.T) {
	a := NewArena()
	n := a.NewNode("button")

	got, ok := a.Resolve(n.Ref())
	if !ok {
		t.Fatal("Resolve failed for live node")
	}
	if got != n {
		t.Error("Resolve returned a different node")
	}

	if _, ok := a.Resolve(NilRef); ok {
		t.Error("NilRef resolved")
	}
}

func TestArenaDestroyInvalidatesHandles(t *testing.T) {
	a := NewArena()
	n := a.NewNode("button")
	ref := n.Ref()

	a.Destroy(n)

	if _, ok := a.Resolve(ref); ok {
		t.Error("handle resolved after Destroy")
	}
	if a.Alive(ref) {
		t.Error("Alive reported true after Destroy")
	}
}

func TestArenaSlotReuseDoesNotResurrect(t *testing.T) {
	a := NewArena()
	old := a.NewNode("first")
	oldRef := old.Ref()
	a.Destroy(old)

	// The replacement reuses the slot; the stale handle must not see it.
	replacement := a.NewNode("second")
	if _, ok := a.Resolve(oldRef); ok {
		t.Error("stale handle resolved to a reused slot")
	}
	if _, ok := a.Resolve(replacement.Ref()); !ok {
		t.Error("fresh handle did not resolve")
	}
}

func TestArenaDestroySubtree(t *testing.T) {
	a := NewArena()
	root := a.NewNode("root")
	panel := root.AppendChild(a.NewNode("panel"))
	button := panel.AppendChild(a.NewNode("button"))
	buttonRef := button.Ref()

	a.Destroy(panel)

	if _, ok := a.Resolve(buttonRef); ok {
		t.Error("descendant handle resolved after subtree destroy")
	}
	if len(root.Children()) != 0 {
		t.Errorf("root still has %d children", len(root.Children()))
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestArenaDestroyFocusedClearsFocus(t *testing.T) {
	a := NewArena()
	root := a.NewNode("root")
	field := root.AppendChild(a.NewNode("field").SetFocusable(true))

	if !a.SetFocus(field) {
		t.Fatal("SetFocus failed")
	}
	a.Destroy(field)

	if a.Focused() != nil {
		t.Error("focus survived destruction of the focused element")
	}
	if !a.FocusedRef().IsNil() {
		t.Error("FocusedRef not nil after destruction")
	}
}
