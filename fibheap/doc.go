// Package fibheap implements a Fibonacci heap: a mergeable min-priority
// queue with amortized O(1) Insert, FindMin, Merge and DecreaseKey, and
// amortized O(log n) ExtractMin and Delete.
//
// A Fibonacci heap is a forest of heap-ordered trees. Cheap operations
// (Insert, Merge) only grow the forest; the expensive restructuring is
// deferred to ExtractMin, whose consolidation pass links roots of equal
// degree until all root degrees are distinct, bounding the root count to
// O(log n). DecreaseKey keeps its amortized constant cost through the
// mark/cascading-cut discipline: each non-root may lose at most one child
// before it is cut loose itself, which bounds node degree.
//
// Complexity (amortized, n = element count):
//
//   - Insert:      O(1)   — allocate one node, append one root.
//   - FindMin:     O(1)   — read the tracked minimum root.
//   - Merge:       O(m)   — slot migration of the consumed heap (m = its
//     size); the structural meld itself is O(1) per migrated root.
//   - DecreaseKey: O(1)   — value update plus an O(1)-amortized cascade.
//   - ExtractMin:  O(log n) — child promotion, consolidation, min rescan.
//   - Delete:      O(log n) — decrease-to-bottom followed by ExtractMin.
//
// Notes on implementation choices:
//
//   - All nodes live in a slab-style arena; parent/child links are slot
//     indices, never pointers. Each Handle carries a generation stamp, so
//     a handle to an extracted node is rejected even after its slot is
//     reused (a stale handle is a no-op, never a different node).
//   - Consolidation and cascading cut run as iterative loops with
//     deterministic order and tie-breaks, so a given operation sequence
//     always yields the same forest.
//   - The heap is purely sequential and does no internal locking; callers
//     sharing one heap across goroutines must serialize access themselves.
//
// Example usage:
//
//	h := fibheap.New[int]()
//	h42 := h.Insert(42)
//	h.Insert(10)
//	min, _ := h.FindMin() // 10
//	h.DecreaseKey(h42, 2)
//	min, _ = h.FindMin()  // 2
//	_ = min
package fibheap
