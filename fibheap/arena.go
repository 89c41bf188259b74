// Node arena for the Fibonacci heap: a slab-style store that owns every
// node of one Heap and issues generation-stamped handles.
//
// Parent/child relationships are slot indices into this arena, never Go
// pointers, so the tree graph cannot form pointer cycles and a reference
// to a removed node is detectable rather than dangling (the generation
// stamp of the slot no longer matches the handle's).
package fibheap

import "golang.org/x/exp/constraints"

// noSlot marks an absent slot reference (no parent, no tracked minimum).
const noSlot int32 = -1

// node is one element of the heap: its value plus tree wiring.
//
// The marked flag is meaningful only while the node has a parent; roots
// are never marked. doomed is set transiently by Delete and makes the node
// compare below every real value until it is extracted.
type node[T constraints.Ordered] struct {
	value    T
	children []int32 // direct child slots; len(children) is the degree
	parent   int32   // parent slot, noSlot for roots
	gen      uint32  // issuance stamp of the current occupant
	live     bool    // slot currently holds a node
	marked   bool    // lost one child since becoming a child itself
	doomed   bool    // delete-pending: compares below everything
}

// degree returns the node's number of direct children. Complexity: O(1).
func (n *node[T]) degree() int { return len(n.children) }

// arena is the slab of nodes backing one Heap. Freed slots are recycled
// through a free list; a per-heap monotonic generation counter stamps each
// allocation so recycled slots never satisfy an old handle.
type arena[T constraints.Ordered] struct {
	slots   []node[T]
	free    []int32 // slot indices available for reuse
	live    int     // number of live nodes; the heap's element count
	nextGen uint32  // next issuance stamp; starts at 1
}

// newArena returns an arena pre-sized for capacity nodes.
func newArena[T constraints.Ordered](capacity int) arena[T] {
	return arena[T]{
		slots:   make([]node[T], 0, capacity),
		nextGen: 1,
	}
}

// alloc stores v in a fresh or recycled slot and returns the slot index.
// The new node is a parentless, unmarked singleton. Complexity: O(1)
// amortized.
func (a *arena[T]) alloc(v T) int32 {
	// 1) Stamp the occupant. Stamps are unique per arena lifetime, so a
	//    handle can never match a later occupant of the same slot.
	gen := a.nextGen
	a.nextGen++

	// 2) Recycle a freed slot if one is available, otherwise grow.
	var slot int32
	if n := len(a.free); n > 0 {
		slot = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		slot = int32(len(a.slots))
		a.slots = append(a.slots, node[T]{})
	}

	// 3) Reset the slot to a singleton node holding v.
	a.slots[slot] = node[T]{
		value:  v,
		parent: noSlot,
		gen:    gen,
		live:   true,
	}
	a.live++

	return slot
}

// handle returns the Handle addressing the current occupant of slot.
func (a *arena[T]) handle(slot int32) Handle {
	return Handle{slot: slot, gen: a.slots[slot].gen}
}

// node returns the node at slot. The caller must hold a slot index
// obtained from this arena; the returned pointer is invalidated by the
// next alloc. Complexity: O(1).
func (a *arena[T]) node(slot int32) *node[T] {
	return &a.slots[slot]
}

// resolve maps a caller-supplied Handle to its slot. ok=false when the
// handle is stale: out of range, freed, zero, or stamped for an earlier
// occupant of a since-reused slot. Complexity: O(1).
func (a *arena[T]) resolve(h Handle) (int32, bool) {
	if h.slot < 0 || int(h.slot) >= len(a.slots) {
		return noSlot, false
	}
	n := &a.slots[h.slot]
	if !n.live || n.gen != h.gen {
		return noSlot, false
	}

	return h.slot, true
}

// remove frees slot and returns the node contents it held. Any handle
// issued for this occupant is stale from here on. Complexity: O(1).
func (a *arena[T]) remove(slot int32) node[T] {
	removed := a.slots[slot]

	// Clear the slot and recycle it. resolve rejects the freed slot via
	// the live flag, and any later occupant carries a fresh stamp.
	a.slots[slot] = node[T]{gen: removed.gen}
	a.free = append(a.free, slot)
	a.live--

	return removed
}
