// Heap construction, root-set bookkeeping, and the cheap operations:
// Insert, FindMin, Merge, Len, IsEmpty, Contains.
//
// The expensive restructuring lives in extract.go (consolidation) and
// decrease.go (cut + cascading cut).
package fibheap

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/mergeq/pqueue"
)

// Heap is a Fibonacci heap over an ordered element type T.
//
// A Heap owns every one of its nodes exclusively through an internal
// arena; callers address elements only through Handle values. The zero
// Heap is not usable — construct with New.
//
// Invariants held before and after every exported operation:
//
//   - Heap order: every non-root's value is ≥ its parent's value.
//   - Min correctness: the tracked minimum is a root no other root
//     compares below.
//   - Root consistency: the root set holds exactly the parentless live
//     nodes, each once.
//   - Mark discipline: roots are never marked.
//   - Count consistency: Len() equals the number of live nodes.
//
// A Heap is purely sequential: no operation blocks, and no internal
// locking is performed. Concurrent use of one Heap requires external
// mutual exclusion supplied by the caller.
type Heap[T constraints.Ordered] struct {
	arena arena[T]
	roots []int32 // top-level tree slots, insertion-ordered, duplicate-free
	min   int32   // slot of the minimum root, noSlot when empty
}

// Compile-time conformance with the mergeable priority-queue contract.
var _ pqueue.Interface[int, Handle, *Heap[int]] = (*Heap[int])(nil)

// New returns an empty Heap configured by the given functional options.
//
//	h := fibheap.New[int64](fibheap.WithCapacity(1024))
//
// Complexity: O(1) (O(Capacity) allocation when pre-sized).
func New[T constraints.Ordered](opts ...Option) *Heap[T] {
	// 1) Build and validate Options (Option constructors panic on invalid
	//    arguments, so cfg is well-formed here).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Assemble the empty heap: no nodes, no roots, no tracked minimum.
	return &Heap[T]{
		arena: newArena[T](cfg.Capacity),
		roots: make([]int32, 0, cfg.Capacity),
		min:   noSlot,
	}
}

// Len returns the number of elements currently in the heap.
// Complexity: O(1).
func (h *Heap[T]) Len() int { return h.arena.live }

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (h *Heap[T]) IsEmpty() bool { return h.arena.live == 0 }

// Contains reports whether hd still addresses a live element of this
// heap. A handle whose element was extracted or deleted — or that was
// issued by another heap — yields false. Complexity: O(1).
func (h *Heap[T]) Contains(hd Handle) bool {
	_, ok := h.arena.resolve(hd)

	return ok
}

// FindMin returns the minimum element and true, without mutating state,
// or the zero value and false when the heap is empty.
// Complexity: O(1).
func (h *Heap[T]) FindMin() (T, bool) {
	if h.min == noSlot {
		var zero T

		return zero, false
	}

	return h.arena.node(h.min).value, true
}

// Insert adds v as a new singleton root and returns the Handle addressing
// it. The tracked minimum is updated when v compares strictly below it (or
// when the heap was empty). Complexity: amortized O(1).
func (h *Heap[T]) Insert(v T) Handle {
	slot := h.arena.alloc(v)
	h.addRoot(slot)

	return h.arena.handle(slot)
}

// Merge moves every element of other into h and returns h. The two
// element counts add; the surviving minimum is whichever of the two
// previous minimums compares smaller.
//
// other is consumed: it is left empty, and handles it issued are stale —
// they do not address elements of h. Merging a heap with itself or a nil
// heap is a no-op. Complexity: O(m) where m = other.Len().
func (h *Heap[T]) Merge(other *Heap[T]) *Heap[T] {
	if other == nil || other == h {
		return h
	}

	// 1) Migrate every live node of other into h's arena, allocating a
	//    fresh slot (and fresh stamp) per node. remap translates other's
	//    slot numbering into h's.
	remap := make(map[int32]int32, other.Len())
	for s := range other.arena.slots {
		src := &other.arena.slots[s]
		if !src.live {
			continue
		}
		slot := h.arena.alloc(src.value)
		h.arena.node(slot).marked = src.marked
		remap[int32(s)] = slot
	}

	// 2) Rebuild the tree wiring under the new numbering. No slots are
	//    allocated in this pass, so node pointers stay valid.
	for s := range other.arena.slots {
		src := &other.arena.slots[s]
		if !src.live {
			continue
		}
		dst := h.arena.node(remap[int32(s)])
		if src.parent != noSlot {
			dst.parent = remap[src.parent]
		}
		for _, c := range src.children {
			dst.children = append(dst.children, remap[c])
		}
	}

	// 3) Adopt other's former roots; addRoot retargets the tracked
	//    minimum whenever an adopted root compares strictly below it.
	for _, r := range other.roots {
		h.addRoot(remap[r])
	}

	// 4) Consume other: empty but structurally sound, so later calls on
	//    it behave like calls on a fresh empty heap instead of corrupting
	//    migrated nodes.
	other.arena = newArena[T](0)
	other.roots = nil
	other.min = noSlot

	return h
}

// addRoot records slot as a top-level tree and retargets the tracked
// minimum when the new root compares strictly below it (or when none was
// tracked). The node at slot must already be parentless and unmarked.
// Complexity: O(1).
func (h *Heap[T]) addRoot(slot int32) {
	h.roots = append(h.roots, slot)
	if h.min == noSlot || h.less(slot, h.min) {
		h.min = slot
	}
}

// dropRoot removes slot from the root set by swap-removal. The caller is
// responsible for recomputing the tracked minimum afterwards (removal is
// always followed by a bulk structural change, so an eager rescan here
// would be wasted work). Complexity: O(len(roots)).
func (h *Heap[T]) dropRoot(slot int32) {
	for i, s := range h.roots {
		if s == slot {
			last := len(h.roots) - 1
			h.roots[i] = h.roots[last]
			h.roots = h.roots[:last]

			return
		}
	}

	panic("fibheap: root set does not contain the removed root")
}

// less reports whether the node at slot a compares strictly below the
// node at slot b under the heap's total order. A delete-pending node
// compares below every real value, which is what lets Delete reuse the
// decrease-key machinery. Complexity: O(1).
func (h *Heap[T]) less(a, b int32) bool {
	na, nb := h.arena.node(a), h.arena.node(b)
	if na.doomed != nb.doomed {
		return na.doomed
	}

	return na.value < nb.value
}
