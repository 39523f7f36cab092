package access

import (
	"errors"
	"testing"

	"github.com/dshills/mnemonic/internal/element"
	"github.com/dshills/mnemonic/internal/input/key"
)

func TestTableRegisterNormalizes(t *testing.T) {
	a := element.NewArena()
	tbl := NewTable(a)
	n := a.NewNode("button")

	if err := tbl.Register("f", n); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	live := tbl.SnapshotLive("F")
	if len(live) != 1 || live[0] != n {
		t.Errorf("SnapshotLive(F) = %v, want the registered node", live)
	}
}

func TestTableRegisterRejectsBadKeys(t *testing.T) {
	a := element.NewArena()
	tbl := NewTable(a)
	n := a.NewNode("button")

	for _, bad := range []string{"", "fo", "File"} {
		if err := tbl.Register(bad, n); !errors.Is(err, key.ErrInvalidKey) {
			t.Errorf("Register(%q) error = %v, want ErrInvalidKey", bad, err)
		}
	}

	if err := tbl.Register("f", nil); !errors.Is(err, ErrNilElement) {
		t.Errorf("nil element: error = %v, want ErrNilElement", err)
	}

	dead := a.NewNode("dead")
	a.Destroy(dead)
	if err := tbl.Register("f", dead); !errors.Is(err, ErrDeadElement) {
		t.Errorf("dead element: error = %v, want ErrDeadElement", err)
	}
}

func TestTableCollisionIsNotAnError(t *testing.T) {
	a := element.NewArena()
	tbl := NewTable(a)
	first := a.NewNode("first")
	second := a.NewNode("second")

	if err := tbl.Register("N", first); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := tbl.Register("N", second); err != nil {
		t.Fatalf("collision Register failed: %v", err)
	}

	live := tbl.SnapshotLive("N")
	if len(live) != 2 || live[0] != first || live[1] != second {
		t.Errorf("SnapshotLive order = %v, want [first second]", live)
	}
}

func TestTableReRegisterSamePairIsNoop(t *testing.T) {
	a := element.NewArena()
	tbl := NewTable(a)
	n := a.NewNode("button")

	tbl.Register("F", n)
	tbl.Register("f", n)

	if got := len(tbl.SnapshotLive("F")); got != 1 {
		t.Errorf("duplicate live registrations: %d, want 1", got)
	}
}

func TestTableStalePurgeOnRegister(t *testing.T) {
	a := element.NewArena()
	tbl := NewTable(a)

	dead := a.NewNode("dead")
	tbl.Register("F", dead)
	a.Destroy(dead)

	// The dead entry lingers until the key is next scanned.
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d before purge, want 1", tbl.Len())
	}

	fresh := a.NewNode("fresh")
	if err := tbl.Register("F", fresh); err != nil {
		t.Fatalf("Register after drop failed: %v", err)
	}

	live := tbl.SnapshotLive("F")
	if len(live) != 1 || live[0] != fresh {
		t.Errorf("SnapshotLive = %v, want only the fresh node", live)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d after purge, want 1", tbl.Len())
	}
}

func TestTableStalePurgeOnSnapshot(t *testing.T) {
	a := element.NewArena()
	tbl := NewTable(a)

	dead := a.NewNode("dead")
	survivor := a.NewNode("survivor")
	tbl.Register("F", dead)
	tbl.Register("F", survivor)
	a.Destroy(dead)

	live := tbl.SnapshotLive("F")
	if len(live) != 1 || live[0] != survivor {
		t.Errorf("SnapshotLive = %v, want only the survivor", live)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d after snapshot purge, want 1", tbl.Len())
	}
}

func TestTableUnregisterRemovesAllKeys(t *testing.T) {
	a := element.NewArena()
	tbl := NewTable(a)
	n := a.NewNode("button")
	other := a.NewNode("other")

	tbl.Register("F", n)
	tbl.Register("G", n)
	tbl.Register("F", other)

	tbl.Unregister(n)

	if got := tbl.SnapshotLive("G"); len(got) != 0 {
		t.Errorf("SnapshotLive(G) = %v after Unregister, want empty", got)
	}
	if got := tbl.SnapshotLive("F"); len(got) != 1 || got[0] != other {
		t.Errorf("SnapshotLive(F) = %v, want only the other node", got)
	}
}

func TestTableSnapshotAllowsReentrantRegister(t *testing.T) {
	a := element.NewArena()
	tbl := NewTable(a)
	first := a.NewNode("first")
	tbl.Register("F", first)

	// Walking a snapshot while registering must not deadlock or corrupt
	// the table; this mirrors a resolve callback registering a sibling.
	for _, n := range tbl.SnapshotLive("F") {
		_ = n
		late := a.NewNode("late")
		if err := tbl.Register("F", late); err != nil {
			t.Fatalf("reentrant Register failed: %v", err)
		}
	}

	if got := len(tbl.SnapshotLive("F")); got != 2 {
		t.Errorf("registrations after reentrant add = %d, want 2", got)
	}
}
