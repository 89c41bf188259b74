// ExtractMin and the consolidation pass that follows it.
//
// Consolidation is where a Fibonacci heap earns its amortized bounds: the
// cheap operations (Insert, Merge, cascading cuts) are allowed to grow the
// root set freely, and the linking pass here repays that debt by merging
// equal-degree roots until all root degrees are distinct, leaving O(log n)
// trees.
package fibheap

// ExtractMin removes the minimum element from the heap and returns it,
// or returns the zero value and false when the heap is empty.
//
// Algorithm, in order:
//
//  1. Empty heap → (zero, false).
//  2. Remove the minimum root from the arena and the root set.
//  3. Promote its children to roots: parent references cleared, marks
//     cleared (roots are never marked).
//  4. If the forest is now empty, return — nothing to consolidate.
//  5. Consolidate: link equal-degree roots until all degrees differ.
//  6. Rescan the remaining roots for the new minimum. A full scan is
//     required, not an incremental update, because consolidation may have
//     demoted any previous candidate under another root.
//  7. Return the removed value.
//
// Complexity: amortized O(log n).
func (h *Heap[T]) ExtractMin() (T, bool) {
	// 1) Nothing tracked means nothing stored.
	if h.min == noSlot {
		var zero T

		return zero, false
	}

	// 2) Detach the minimum root from both the root set and the arena.
	//    The arena removal stales every outstanding handle to it.
	slot := h.min
	h.dropRoot(slot)
	removed := h.arena.remove(slot)

	// 3) Promote the children of the removed root into the forest. Their
	//    marks are cleared: a root is never marked. The tracked minimum is
	//    not maintained here — step 6 recomputes it wholesale.
	for _, c := range removed.children {
		child := h.arena.node(c)
		child.parent = noSlot
		child.marked = false
		h.roots = append(h.roots, c)
	}

	// 4) An empty forest needs no consolidation and has no minimum.
	if len(h.roots) == 0 {
		h.min = noSlot

		return removed.value, true
	}

	// 5) + 6) Restore the O(log n) root bound, then rescan for the
	//    minimum.
	h.consolidate()
	h.rescanMin()

	// 7) Hand the extracted value to the caller.
	return removed.value, true
}

// consolidate links equal-degree roots until every remaining root has a
// distinct degree.
//
// Roots are processed exactly once each, in root-set order, through a
// degree-indexed bucket table. A degree collision links the two trees:
// the root comparing smaller becomes parent (on equal keys the
// newly-processed root wins and becomes parent — applied consistently,
// this keeps the whole pass deterministic). Linking raises the survivor's
// degree by one, so its insertion is re-attempted under the new degree
// until it lands in an empty bucket. The loop is iterative on purpose:
// collision chains can reach the maximum degree, and the engine must not
// burn call stack proportional to heap size.
//
// Complexity: O(r + log n) where r is the root count before the pass.
func (h *Heap[T]) consolidate() {
	// buckets[d] holds the one root of degree d seen so far, or noSlot.
	// Degrees are bounded by O(log n), so the table stays small; it grows
	// on demand rather than pre-computing the Fibonacci bound.
	buckets := make([]int32, 0, 16)

	for _, slot := range h.roots {
		cur := slot
		for {
			d := h.arena.node(cur).degree()

			// Grow the table up to degree d.
			for len(buckets) <= d {
				buckets = append(buckets, noSlot)
			}

			// Empty bucket: park the root and move on.
			if buckets[d] == noSlot {
				buckets[d] = cur
				break
			}

			// Collision: link the resident and the incoming root, then
			// re-attempt insertion of the survivor at degree d+1.
			resident := buckets[d]
			buckets[d] = noSlot
			cur = h.link(resident, cur)
		}
	}

	// Rebuild the root set from the bucket table in ascending degree
	// order — a fixed order, so repeated runs of one operation sequence
	// produce identical forests.
	h.roots = h.roots[:0]
	for _, slot := range buckets {
		if slot != noSlot {
			h.roots = append(h.roots, slot)
		}
	}
}

// link merges two equal-degree roots into one tree and returns the slot
// of the surviving parent. The root comparing strictly smaller becomes
// parent; on equal keys the newly-processed root (incoming) becomes
// parent over the bucket resident. The demoted root keeps its subtree and
// joins the parent's children unmarked (it was a root, and roots are
// never marked). Complexity: O(1).
func (h *Heap[T]) link(resident, incoming int32) int32 {
	parent, child := incoming, resident
	if h.less(resident, incoming) {
		parent, child = resident, incoming
	}

	h.arena.node(parent).children = append(h.arena.node(parent).children, child)
	h.arena.node(child).parent = parent

	return parent
}

// rescanMin scans the whole root set and points the tracked minimum at
// the smallest root. Called after consolidation, which may have changed
// the identity of the minimum root. The heap must be non-empty.
// Complexity: O(len(roots)) = O(log n) after consolidation.
func (h *Heap[T]) rescanMin() {
	best := h.roots[0]
	for _, slot := range h.roots[1:] {
		if h.less(slot, best) {
			best = slot
		}
	}
	h.min = best
}
