package presence

import (
	"errors"
	"reflect"
	"testing"
)

func TestIdentifyRejectsEmptyName(t *testing.T) {
	d := NewDirectory[int]()

	err := d.Identify("", 1)
	if !errors.Is(err, ErrInvalidIdentity) {
		t.Errorf("Expected ErrInvalidIdentity, got %v", err)
	}

	if len(d.Snapshot()) != 0 {
		t.Error("Expected empty snapshot after rejected identify")
	}
}

func TestIdentifyIsIdempotent(t *testing.T) {
	d := NewDirectory[int]()

	d.Identify("alice", 1)
	d.Identify("alice", 1)

	snap := d.Snapshot()
	if len(snap) != 1 || snap[0] != "alice" {
		t.Errorf("Expected snapshot [alice], got %v", snap)
	}
}

func TestIdentifyLastWriterWins(t *testing.T) {
	d := NewDirectory[int]()

	d.Identify("alice", 1)
	d.Identify("alice", 2)

	h, ok := d.Resolve("alice")
	if !ok || h != 2 {
		t.Errorf("Expected handle 2 for alice, got %v (ok=%v)", h, ok)
	}

	// The orphaned handle no longer owns the name.
	if d.Release(1) {
		t.Error("Expected release of orphaned handle to remove nothing")
	}
	if _, ok := d.Resolve("alice"); !ok {
		t.Error("Expected alice to still be present")
	}
}

func TestReleaseRemovesAllMatches(t *testing.T) {
	d := NewDirectory[int]()

	d.Identify("alice", 1)
	d.Identify("bob", 1)
	d.Identify("carol", 2)

	if !d.Release(1) {
		t.Error("Expected release to report removal")
	}

	snap := d.Snapshot()
	if !reflect.DeepEqual(snap, []string{"carol"}) {
		t.Errorf("Expected snapshot [carol], got %v", snap)
	}
}

func TestSnapshotKeepsIdentificationOrder(t *testing.T) {
	d := NewDirectory[int]()

	d.Identify("carol", 1)
	d.Identify("alice", 2)
	d.Identify("bob", 3)

	snap := d.Snapshot()
	want := []string{"carol", "alice", "bob"}
	if !reflect.DeepEqual(snap, want) {
		t.Errorf("Expected snapshot %v, got %v", want, snap)
	}

	// Re-identifying does not move an existing name.
	d.Identify("alice", 4)
	if !reflect.DeepEqual(d.Snapshot(), want) {
		t.Errorf("Expected snapshot %v after re-identify, got %v", want, d.Snapshot())
	}
}
