// Unit tests for the node arena: slot recycling, generation stamps, and
// stale-handle rejection at the store level.
package fibheap

import "testing"

func TestArena_AllocThenResolve(t *testing.T) {
	a := newArena[int](4)
	slot := a.alloc(7)
	hd := a.handle(slot)

	got, ok := a.resolve(hd)
	if !ok || got != slot {
		t.Fatalf("resolve(%v) = (%d, %v); want (%d, true)", hd, got, ok, slot)
	}
	if a.node(slot).value != 7 {
		t.Fatalf("node value = %d; want 7", a.node(slot).value)
	}
	if a.live != 1 {
		t.Fatalf("live = %d; want 1", a.live)
	}
}

func TestArena_RemoveStalesHandle(t *testing.T) {
	a := newArena[int](0)
	slot := a.alloc(1)
	hd := a.handle(slot)

	removed := a.remove(slot)
	if removed.value != 1 {
		t.Fatalf("removed value = %d; want 1", removed.value)
	}
	if a.live != 0 {
		t.Fatalf("live = %d; want 0", a.live)
	}
	if _, ok := a.resolve(hd); ok {
		t.Fatal("handle to removed node must not resolve")
	}
}

func TestArena_ReuseDoesNotResurrectHandle(t *testing.T) {
	a := newArena[int](0)
	first := a.alloc(1)
	stale := a.handle(first)
	a.remove(first)

	// The freed slot is recycled for the next allocation.
	second := a.alloc(2)
	if second != first {
		t.Fatalf("expected slot %d to be recycled, got %d", first, second)
	}

	// The stale handle points at the same slot but an older stamp: it
	// must be rejected, never reinterpreted as the new occupant.
	if _, ok := a.resolve(stale); ok {
		t.Fatal("stale handle resolved against the slot's new occupant")
	}
	if _, ok := a.resolve(a.handle(second)); !ok {
		t.Fatal("fresh handle for the recycled slot must resolve")
	}
}

func TestArena_ZeroHandleNeverResolves(t *testing.T) {
	a := newArena[int](0)
	a.alloc(1)

	// Stamps start at 1, so the zero Handle can never match slot 0.
	if _, ok := a.resolve(Handle{}); ok {
		t.Fatal("zero Handle must not resolve")
	}
}

func TestArena_ForeignSlotRejected(t *testing.T) {
	a := newArena[int](0)
	a.alloc(1)

	if _, ok := a.resolve(Handle{slot: 99, gen: 1}); ok {
		t.Fatal("out-of-range slot must not resolve")
	}
	if _, ok := a.resolve(Handle{slot: -3, gen: 1}); ok {
		t.Fatal("negative slot must not resolve")
	}
}

func TestArena_StampsAreMonotonic(t *testing.T) {
	a := newArena[int](0)
	prev := uint32(0)
	for i := 0; i < 100; i++ {
		slot := a.alloc(i)
		hd := a.handle(slot)
		if hd.gen <= prev {
			t.Fatalf("stamp %d not strictly greater than previous %d", hd.gen, prev)
		}
		prev = hd.gen
		if i%2 == 0 {
			a.remove(slot) // interleave removals so slots recycle
		}
	}
}
